package catalogo

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/domain/models"
	"github.com/sdiagne/ferreteria/internal/repository/mongodb"
)

// ErrProductoNotFound signals that the referenced product does not exist.
var ErrProductoNotFound = errors.New("producto not found")

// ProductoService exposes product CRUD operations. Stock adjustments belong
// to the transaction services, not here.
type ProductoService struct {
	repo   mongodb.ProductoRepository
	logger *zap.Logger
}

// NewProductoService wires a product service instance.
func NewProductoService(repo mongodb.ProductoRepository, logger *zap.Logger) *ProductoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductoService{repo: repo, logger: logger}
}

// Create persists a new product with a generated id and creation timestamp.
func (s *ProductoService) Create(ctx context.Context, in models.ProductoCreate) (*models.Producto, error) {
	producto := models.NewProducto(in)
	if err := s.repo.Insert(ctx, producto); err != nil {
		return nil, fmt.Errorf("create producto: %w", err)
	}
	s.logger.Info("producto created", zap.String("id", producto.ID), zap.String("nombre", producto.Nombre))
	return &producto, nil
}

// Get fetches a product by id.
func (s *ProductoService) Get(ctx context.Context, id string) (*models.Producto, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, mongodb.ErrNotFound) {
		return nil, ErrProductoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return producto, nil
}

// List returns all products in store order, capped by the repository.
func (s *ProductoService) List(ctx context.Context) ([]models.Producto, error) {
	productos, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	return productos, nil
}

// Update replaces the mutable fields of an existing product, stock included.
func (s *ProductoService) Update(ctx context.Context, id string, in models.ProductoCreate) (*models.Producto, error) {
	producto, err := s.repo.Update(ctx, id, in)
	if errors.Is(err, mongodb.ErrNotFound) {
		return nil, ErrProductoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update producto: %w", err)
	}
	return producto, nil
}

// Delete removes a product. Existing sale and purchase lines keep their
// snapshot of it.
func (s *ProductoService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, mongodb.ErrNotFound) {
		return ErrProductoNotFound
	}
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	s.logger.Info("producto deleted", zap.String("id", id))
	return nil
}
