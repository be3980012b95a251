package catalogo

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/domain/models"
	"github.com/sdiagne/ferreteria/internal/repository/mongodb"
)

// ErrProveedorNotFound signals that the referenced supplier does not exist.
var ErrProveedorNotFound = errors.New("proveedor not found")

// ProveedorService exposes supplier CRUD operations.
type ProveedorService struct {
	repo   mongodb.ProveedorRepository
	logger *zap.Logger
}

// NewProveedorService wires a supplier service instance.
func NewProveedorService(repo mongodb.ProveedorRepository, logger *zap.Logger) *ProveedorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProveedorService{repo: repo, logger: logger}
}

// Create persists a new supplier with a generated id and zero purchases counter.
func (s *ProveedorService) Create(ctx context.Context, in models.ProveedorCreate) (*models.Proveedor, error) {
	proveedor := models.NewProveedor(in)
	if err := s.repo.Insert(ctx, proveedor); err != nil {
		return nil, fmt.Errorf("create proveedor: %w", err)
	}
	s.logger.Info("proveedor created", zap.String("id", proveedor.ID))
	return &proveedor, nil
}

// Get fetches a supplier by id.
func (s *ProveedorService) Get(ctx context.Context, id string) (*models.Proveedor, error) {
	proveedor, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, mongodb.ErrNotFound) {
		return nil, ErrProveedorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return proveedor, nil
}

// List returns all suppliers in store order, capped by the repository.
func (s *ProveedorService) List(ctx context.Context) ([]models.Proveedor, error) {
	proveedores, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	return proveedores, nil
}

// Update replaces the mutable fields of an existing supplier.
func (s *ProveedorService) Update(ctx context.Context, id string, in models.ProveedorCreate) (*models.Proveedor, error) {
	proveedor, err := s.repo.Update(ctx, id, in)
	if errors.Is(err, mongodb.ErrNotFound) {
		return nil, ErrProveedorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update proveedor: %w", err)
	}
	return proveedor, nil
}

// Delete removes a supplier. Purchases referencing it are left untouched.
func (s *ProveedorService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, mongodb.ErrNotFound) {
		return ErrProveedorNotFound
	}
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	s.logger.Info("proveedor deleted", zap.String("id", id))
	return nil
}
