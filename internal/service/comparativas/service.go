package comparativas

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/domain/models"
	"github.com/sdiagne/ferreteria/internal/repository/mongodb"
)

// Service computes the sales-vs-purchases financial summary. Pure read side:
// it never writes and holds no state of its own.
type Service struct {
	ventas  mongodb.VentaRepository
	compras mongodb.CompraRepository
	logger  *zap.Logger
}

// NewService wires a comparatives service instance.
func NewService(ventas mongodb.VentaRepository, compras mongodb.CompraRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{ventas: ventas, compras: compras, logger: logger}
}

// Get loads all sales and purchases (both reads carry the repository's result
// cap) and aggregates totals, net gain, per-method amounts and counts. Only
// USD and Transferencia appear in the breakdown; any other stored payment
// method still counts toward the totals.
func (s *Service) Get(ctx context.Context) (*models.Comparativa, error) {
	ventas, err := s.ventas.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ventas: %w", err)
	}

	compras, err := s.compras.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load compras: %w", err)
	}

	comparativa := models.Comparativa{
		CantidadVentas:  len(ventas),
		CantidadCompras: len(compras),
	}

	for _, venta := range ventas {
		comparativa.TotalVentas += venta.Total
		switch venta.MetodoPago {
		case models.MetodoPagoUSD:
			comparativa.VentasPorMetodo.USD += venta.Total
		case models.MetodoPagoTransferencia:
			comparativa.VentasPorMetodo.Transferencia += venta.Total
		}
	}

	for _, compra := range compras {
		comparativa.TotalCompras += compra.Total
		switch compra.MetodoPago {
		case models.MetodoPagoUSD:
			comparativa.ComprasPorMetodo.USD += compra.Total
		case models.MetodoPagoTransferencia:
			comparativa.ComprasPorMetodo.Transferencia += compra.Total
		}
	}

	comparativa.GananciaNeta = comparativa.TotalVentas - comparativa.TotalCompras

	s.logger.Debug("comparativa computed",
		zap.Int("ventas", comparativa.CantidadVentas),
		zap.Int("compras", comparativa.CantidadCompras))

	return &comparativa, nil
}
