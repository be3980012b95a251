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

// ProductoRepository defines product persistence operations.
type ProductoRepository interface {
	Insert(ctx context.Context, producto models.Producto) error
	FindByID(ctx context.Context, id string) (*models.Producto, error)
	FindAll(ctx context.Context) ([]models.Producto, error)
	Update(ctx context.Context, id string, in models.ProductoCreate) (*models.Producto, error)
	Delete(ctx context.Context, id string) error
	IncStock(ctx context.Context, id string, delta int) error
}

// MongoProductoRepository implements ProductoRepository on the "productos"
// collection.
type MongoProductoRepository struct {
	coll *mongo.Collection
}

// NewProductoRepository builds a product repository backed by the given store.
func NewProductoRepository(store *Store) *MongoProductoRepository {
	return &MongoProductoRepository{coll: store.collection("productos")}
}

func (r *MongoProductoRepository) Insert(ctx context.Context, producto models.Producto) error {
	if _, err := r.coll.InsertOne(ctx, producto); err != nil {
		return fmt.Errorf("failed to insert producto: %w", err)
	}
	return nil
}

func (r *MongoProductoRepository) FindByID(ctx context.Context, id string) (*models.Producto, error) {
	var producto models.Producto
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&producto)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find producto %s: %w", id, err)
	}
	return &producto, nil
}

func (r *MongoProductoRepository) FindAll(ctx context.Context) ([]models.Producto, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list productos: %w", err)
	}

	productos := make([]models.Producto, 0)
	if err := cursor.All(ctx, &productos); err != nil {
		return nil, fmt.Errorf("failed to decode productos: %w", err)
	}
	return productos, nil
}

func (r *MongoProductoRepository) Update(ctx context.Context, id string, in models.ProductoCreate) (*models.Producto, error) {
	set := bson.M{
		"nombre":      in.Nombre,
		"descripcion": in.Descripcion,
		"categoria":   in.Categoria,
		"precio":      in.Precio,
		"stock":       in.Stock,
		"imagen_url":  in.ImagenURL,
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("failed to update producto %s: %w", id, err)
	}
	return r.FindByID(ctx, id)
}

func (r *MongoProductoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete producto %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncStock applies an atomic $inc to the stock quantity. There is no floor:
// stock goes negative when sales outrun inventory, and a missing product id is
// a silent no-op.
func (r *MongoProductoRepository) IncStock(ctx context.Context, id string, delta int) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"stock": delta}})
	if err != nil {
		return fmt.Errorf("failed to adjust stock for producto %s: %w", id, err)
	}
	return nil
}
