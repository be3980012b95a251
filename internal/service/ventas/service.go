package ventas

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

// ErrVentaNotFound signals that the referenced sale does not exist.
var ErrVentaNotFound = errors.New("venta not found")

// ErrClienteNotFound signals that the sale references a missing client.
var ErrClienteNotFound = errors.New("cliente not found")

// Service creates, lists and deletes sales. It is the only writer of the
// client sales counter and, together with the purchases service, of product
// stock.
type Service struct {
	ventas    mongodb.VentaRepository
	clientes  mongodb.ClienteRepository
	productos mongodb.ProductoRepository
	logger    *zap.Logger
}

// NewService wires a sales service instance.
func NewService(ventas mongodb.VentaRepository, clientes mongodb.ClienteRepository, productos mongodb.ProductoRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		ventas:    ventas,
		clientes:  clientes,
		productos: productos,
		logger:    logger,
	}
}

// Create records a sale. The client must exist; its current name is copied
// onto the sale as a point-in-time snapshot. The total is the sum of the
// caller-supplied line subtotals, taken as given. After the sale is persisted
// the client counter is incremented and each line's product stock is
// decremented by its quantity. The three writes are independent: each $inc is
// atomic on its own document, but there is no transaction across them and no
// rollback if a later step fails.
func (s *Service) Create(ctx context.Context, in models.VentaCreate) (*models.Venta, error) {
	cliente, err := s.clientes.FindByID(ctx, in.ClienteID)
	if errors.Is(err, mongodb.ErrNotFound) {
		return nil, ErrClienteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve cliente %s: %w", in.ClienteID, err)
	}

	var total float64
	for _, linea := range in.Productos {
		total += linea.Subtotal
	}

	venta := models.Venta{
		ID:            uuid.NewString(),
		ClienteID:     in.ClienteID,
		ClienteNombre: cliente.NombreCompleto,
		Productos:     in.Productos,
		Total:         total,
		MetodoPago:    in.MetodoPago,
		Fecha:         time.Now().UTC(),
	}

	if err := s.ventas.Insert(ctx, venta); err != nil {
		return nil, fmt.Errorf("persist venta: %w", err)
	}

	if err := s.clientes.IncContadorVentas(ctx, in.ClienteID, 1); err != nil {
		return nil, fmt.Errorf("increment contador_ventas: %w", err)
	}

	// No existence check on line products: an unknown producto_id is a no-op,
	// and stock may go negative.
	for _, linea := range in.Productos {
		if err := s.productos.IncStock(ctx, linea.ProductoID, -linea.Cantidad); err != nil {
			return nil, fmt.Errorf("decrement stock for producto %s: %w", linea.ProductoID, err)
		}
	}

	s.logger.Info("venta created",
		zap.String("id", venta.ID),
		zap.String("cliente_id", venta.ClienteID),
		zap.Float64("total", venta.Total),
		zap.Int("lineas", len(venta.Productos)))

	return &venta, nil
}

// Delete removes a sale and reverses its side effects: stock is restored per
// line and the client counter is decremented. Same non-atomicity as Create.
func (s *Service) Delete(ctx context.Context, id string) error {
	venta, err := s.ventas.FindByID(ctx, id)
	if errors.Is(err, mongodb.ErrNotFound) {
		return ErrVentaNotFound
	}
	if err != nil {
		return fmt.Errorf("resolve venta %s: %w", id, err)
	}

	for _, linea := range venta.Productos {
		if err := s.productos.IncStock(ctx, linea.ProductoID, linea.Cantidad); err != nil {
			return fmt.Errorf("restore stock for producto %s: %w", linea.ProductoID, err)
		}
	}

	if err := s.clientes.IncContadorVentas(ctx, venta.ClienteID, -1); err != nil {
		return fmt.Errorf("decrement contador_ventas: %w", err)
	}

	if err := s.ventas.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete venta %s: %w", id, err)
	}

	s.logger.Info("venta deleted", zap.String("id", id))
	return nil
}

// List returns all sales in store order, capped by the repository.
func (s *Service) List(ctx context.Context) ([]models.Venta, error) {
	ventas, err := s.ventas.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	return ventas, nil
}

// ListByCliente returns the sales recorded against one client.
func (s *Service) ListByCliente(ctx context.Context, clienteID string) ([]models.Venta, error) {
	ventas, err := s.ventas.FindByClienteID(ctx, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list ventas for cliente %s: %w", clienteID, err)
	}
	return ventas, nil
}
