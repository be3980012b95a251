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

// VentaRepository defines sale persistence operations. Sales are immutable
// once written; there is no update.
type VentaRepository interface {
	Insert(ctx context.Context, venta models.Venta) error
	FindByID(ctx context.Context, id string) (*models.Venta, error)
	FindAll(ctx context.Context) ([]models.Venta, error)
	FindByClienteID(ctx context.Context, clienteID string) ([]models.Venta, error)
	Delete(ctx context.Context, id string) error
}

// MongoVentaRepository implements VentaRepository on the "ventas" collection.
type MongoVentaRepository struct {
	coll *mongo.Collection
}

// NewVentaRepository builds a sale repository backed by the given store.
func NewVentaRepository(store *Store) *MongoVentaRepository {
	return &MongoVentaRepository{coll: store.collection("ventas")}
}

func (r *MongoVentaRepository) Insert(ctx context.Context, venta models.Venta) error {
	if _, err := r.coll.InsertOne(ctx, venta); err != nil {
		return fmt.Errorf("failed to insert venta: %w", err)
	}
	return nil
}

func (r *MongoVentaRepository) FindByID(ctx context.Context, id string) (*models.Venta, error) {
	var venta models.Venta
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&venta)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find venta %s: %w", id, err)
	}
	return &venta, nil
}

func (r *MongoVentaRepository) FindAll(ctx context.Context) ([]models.Venta, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoVentaRepository) FindByClienteID(ctx context.Context, clienteID string) ([]models.Venta, error) {
	return r.find(ctx, bson.M{"cliente_id": clienteID})
}

func (r *MongoVentaRepository) find(ctx context.Context, filter bson.M) ([]models.Venta, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list ventas: %w", err)
	}

	ventas := make([]models.Venta, 0)
	if err := cursor.All(ctx, &ventas); err != nil {
		return nil, fmt.Errorf("failed to decode ventas: %w", err)
	}
	return ventas, nil
}

func (r *MongoVentaRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete venta %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
