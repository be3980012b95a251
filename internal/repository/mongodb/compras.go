package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sdiagne/ferreteria/internal/domain/models"
)

// CompraRepository defines purchase persistence operations.
type CompraRepository interface {
	Insert(ctx context.Context, compra models.Compra) error
	FindByID(ctx context.Context, id string) (*models.Compra, error)
	FindAll(ctx context.Context) ([]models.Compra, error)
	FindByProveedorID(ctx context.Context, proveedorID string) ([]models.Compra, error)
	Delete(ctx context.Context, id string) error
}

// MongoCompraRepository implements CompraRepository on the "compras"
// collection.
type MongoCompraRepository struct {
	coll *mongo.Collection
}

// NewCompraRepository builds a purchase repository backed by the given store.
func NewCompraRepository(store *Store) *MongoCompraRepository {
	return &MongoCompraRepository{coll: store.collection("compras")}
}

func (r *MongoCompraRepository) Insert(ctx context.Context, compra models.Compra) error {
	if _, err := r.coll.InsertOne(ctx, compra); err != nil {
		return fmt.Errorf("failed to insert compra: %w", err)
	}
	return nil
}

func (r *MongoCompraRepository) FindByID(ctx context.Context, id string) (*models.Compra, error) {
	var compra models.Compra
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&compra)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find compra %s: %w", id, err)
	}
	return &compra, nil
}

func (r *MongoCompraRepository) FindAll(ctx context.Context) ([]models.Compra, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoCompraRepository) FindByProveedorID(ctx context.Context, proveedorID string) ([]models.Compra, error) {
	return r.find(ctx, bson.M{"proveedor_id": proveedorID})
}

func (r *MongoCompraRepository) find(ctx context.Context, filter bson.M) ([]models.Compra, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list compras: %w", err)
	}

	compras := make([]models.Compra, 0)
	if err := cursor.All(ctx, &compras); err != nil {
		return nil, fmt.Errorf("failed to decode compras: %w", err)
	}
	return compras, nil
}

func (r *MongoCompraRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete compra %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
