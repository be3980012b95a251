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

// ProveedorRepository defines supplier persistence operations.
type ProveedorRepository interface {
	Insert(ctx context.Context, proveedor models.Proveedor) error
	FindByID(ctx context.Context, id string) (*models.Proveedor, error)
	FindAll(ctx context.Context) ([]models.Proveedor, error)
	Update(ctx context.Context, id string, in models.ProveedorCreate) (*models.Proveedor, error)
	Delete(ctx context.Context, id string) error
	IncContadorCompras(ctx context.Context, id string, delta int) error
}

// MongoProveedorRepository implements ProveedorRepository on the "proveedores"
// collection.
type MongoProveedorRepository struct {
	coll *mongo.Collection
}

// NewProveedorRepository builds a supplier repository backed by the given store.
func NewProveedorRepository(store *Store) *MongoProveedorRepository {
	return &MongoProveedorRepository{coll: store.collection("proveedores")}
}

func (r *MongoProveedorRepository) Insert(ctx context.Context, proveedor models.Proveedor) error {
	if _, err := r.coll.InsertOne(ctx, proveedor); err != nil {
		return fmt.Errorf("failed to insert proveedor: %w", err)
	}
	return nil
}

func (r *MongoProveedorRepository) FindByID(ctx context.Context, id string) (*models.Proveedor, error) {
	var proveedor models.Proveedor
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&proveedor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find proveedor %s: %w", id, err)
	}
	return &proveedor, nil
}

func (r *MongoProveedorRepository) FindAll(ctx context.Context) ([]models.Proveedor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list proveedores: %w", err)
	}

	proveedores := make([]models.Proveedor, 0)
	if err := cursor.All(ctx, &proveedores); err != nil {
		return nil, fmt.Errorf("failed to decode proveedores: %w", err)
	}
	return proveedores, nil
}

func (r *MongoProveedorRepository) Update(ctx context.Context, id string, in models.ProveedorCreate) (*models.Proveedor, error) {
	set := bson.M{
		"nombre_completo": in.NombreCompleto,
		"ruc":             in.RUC,
		"direccion":       in.Direccion,
		"telefono":        in.Telefono,
		"email":           in.Email,
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("failed to update proveedor %s: %w", id, err)
	}
	return r.FindByID(ctx, id)
}

func (r *MongoProveedorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete proveedor %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncContadorCompras applies an atomic $inc to the purchases counter.
func (r *MongoProveedorRepository) IncContadorCompras(ctx context.Context, id string, delta int) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"contador_compras": delta}})
	if err != nil {
		return fmt.Errorf("failed to adjust contador_compras for proveedor %s: %w", id, err)
	}
	return nil
}
