package compras

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/domain/models"
	"github.com/sdiagne/ferreteria/internal/repository/mongodb"
)

// ErrCompraNotFound signals that the referenced purchase does not exist.
var ErrCompraNotFound = errors.New("compra not found")

// ErrProveedorNotFound signals that the purchase references a missing supplier.
var ErrProveedorNotFound = errors.New("proveedor not found")

// Service creates, lists and deletes purchases. It mirrors the sales service
// with the stock and counter signs reversed.
type Service struct {
	compras     mongodb.CompraRepository
	proveedores mongodb.ProveedorRepository
	productos   mongodb.ProductoRepository
	logger      *zap.Logger
}

// NewService wires a purchases service instance.
func NewService(compras mongodb.CompraRepository, proveedores mongodb.ProveedorRepository, productos mongodb.ProductoRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		compras:     compras,
		proveedores: proveedores,
		productos:   productos,
		logger:      logger,
	}
}

// Create records a purchase against an existing supplier, snapshotting its
// name, summing the supplied subtotals, then incrementing the supplier counter
// and each line product's stock. Writes are independent, as in sales.
func (s *Service) Create(ctx context.Context, in models.CompraCreate) (*models.Compra, error) {
	proveedor, err := s.proveedores.FindByID(ctx, in.ProveedorID)
	if errors.Is(err, mongodb.ErrNotFound) {
		return nil, ErrProveedorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve proveedor %s: %w", in.ProveedorID, err)
	}

	var total float64
	for _, linea := range in.Productos {
		total += linea.Subtotal
	}

	compra := models.Compra{
		ID:              uuid.NewString(),
		ProveedorID:     in.ProveedorID,
		ProveedorNombre: proveedor.NombreCompleto,
		Productos:       in.Productos,
		Total:           total,
		MetodoPago:      in.MetodoPago,
		Fecha:           time.Now().UTC(),
	}

	if err := s.compras.Insert(ctx, compra); err != nil {
		return nil, fmt.Errorf("persist compra: %w", err)
	}

	if err := s.proveedores.IncContadorCompras(ctx, in.ProveedorID, 1); err != nil {
		return nil, fmt.Errorf("increment contador_compras: %w", err)
	}

	for _, linea := range in.Productos {
		if err := s.productos.IncStock(ctx, linea.ProductoID, linea.Cantidad); err != nil {
			return nil, fmt.Errorf("increment stock for producto %s: %w", linea.ProductoID, err)
		}
	}

	s.logger.Info("compra created",
		zap.String("id", compra.ID),
		zap.String("proveedor_id", compra.ProveedorID),
		zap.Float64("total", compra.Total),
		zap.Int("lineas", len(compra.Productos)))

	return &compra, nil
}

// Delete removes a purchase and reverses its side effects: stock is reduced
// per line and the supplier counter is decremented.
func (s *Service) Delete(ctx context.Context, id string) error {
	compra, err := s.compras.FindByID(ctx, id)
	if errors.Is(err, mongodb.ErrNotFound) {
		return ErrCompraNotFound
	}
	if err != nil {
		return fmt.Errorf("resolve compra %s: %w", id, err)
	}

	for _, linea := range compra.Productos {
		if err := s.productos.IncStock(ctx, linea.ProductoID, -linea.Cantidad); err != nil {
			return fmt.Errorf("reverse stock for producto %s: %w", linea.ProductoID, err)
		}
	}

	if err := s.proveedores.IncContadorCompras(ctx, compra.ProveedorID, -1); err != nil {
		return fmt.Errorf("decrement contador_compras: %w", err)
	}

	if err := s.compras.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete compra %s: %w", id, err)
	}

	s.logger.Info("compra deleted", zap.String("id", id))
	return nil
}

// List returns all purchases in store order, capped by the repository.
func (s *Service) List(ctx context.Context) ([]models.Compra, error) {
	compras, err := s.compras.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	return compras, nil
}

// ListByProveedor returns the purchases recorded against one supplier.
func (s *Service) ListByProveedor(ctx context.Context, proveedorID string) ([]models.Compra, error) {
	compras, err := s.compras.FindByProveedorID(ctx, proveedorID)
	if err != nil {
		return nil, fmt.Errorf("list compras for proveedor %s: %w", proveedorID, err)
	}
	return compras, nil
}
