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

// ClienteRepository defines client persistence operations.
type ClienteRepository interface {
	Insert(ctx context.Context, cliente models.Cliente) error
	FindByID(ctx context.Context, id string) (*models.Cliente, error)
	FindAll(ctx context.Context) ([]models.Cliente, error)
	Update(ctx context.Context, id string, in models.ClienteCreate) (*models.Cliente, error)
	Delete(ctx context.Context, id string) error
	IncContadorVentas(ctx context.Context, id string, delta int) error
}

// MongoClienteRepository implements ClienteRepository on the "clientes"
// collection.
type MongoClienteRepository struct {
	coll *mongo.Collection
}

// NewClienteRepository builds a client repository backed by the given store.
func NewClienteRepository(store *Store) *MongoClienteRepository {
	return &MongoClienteRepository{coll: store.collection("clientes")}
}

func (r *MongoClienteRepository) Insert(ctx context.Context, cliente models.Cliente) error {
	if _, err := r.coll.InsertOne(ctx, cliente); err != nil {
		return fmt.Errorf("failed to insert cliente: %w", err)
	}
	return nil
}

func (r *MongoClienteRepository) FindByID(ctx context.Context, id string) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cliente)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find cliente %s: %w", id, err)
	}
	return &cliente, nil
}

func (r *MongoClienteRepository) FindAll(ctx context.Context) ([]models.Cliente, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list clientes: %w", err)
	}

	clientes := make([]models.Cliente, 0)
	if err := cursor.All(ctx, &clientes); err != nil {
		return nil, fmt.Errorf("failed to decode clientes: %w", err)
	}
	return clientes, nil
}

// Update replaces the mutable fields, then re-reads the document. The counter
// and registration timestamp are never touched here.
func (r *MongoClienteRepository) Update(ctx context.Context, id string, in models.ClienteCreate) (*models.Cliente, error) {
	set := bson.M{
		"nombre_completo": in.NombreCompleto,
		"ruc":             in.RUC,
		"direccion":       in.Direccion,
		"telefono":        in.Telefono,
		"email":           in.Email,
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("failed to update cliente %s: %w", id, err)
	}
	return r.FindByID(ctx, id)
}

func (r *MongoClienteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete cliente %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncContadorVentas applies an atomic $inc to the sales counter. A missing id
// is a no-op, matching the lenient adjustment semantics of the transaction
// services.
func (r *MongoClienteRepository) IncContadorVentas(ctx context.Context, id string, delta int) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"contador_ventas": delta}})
	if err != nil {
		return fmt.Errorf("failed to adjust contador_ventas for cliente %s: %w", id, err)
	}
	return nil
}
