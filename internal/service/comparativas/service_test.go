package comparativas

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdiagne/ferreteria/internal/domain/models"
	"github.com/sdiagne/ferreteria/internal/repository/mongodb"
)

type fakeVentaRepo struct {
	ventas []models.Venta
}

func (f *fakeVentaRepo) Insert(_ context.Context, v models.Venta) error {
	f.ventas = append(f.ventas, v)
	return nil
}

func (f *fakeVentaRepo) FindByID(_ context.Context, id string) (*models.Venta, error) {
	for _, v := range f.ventas {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (f *fakeVentaRepo) FindAll(_ context.Context) ([]models.Venta, error) {
	return append([]models.Venta(nil), f.ventas...), nil
}

func (f *fakeVentaRepo) FindByClienteID(_ context.Context, clienteID string) ([]models.Venta, error) {
	out := make([]models.Venta, 0)
	for _, v := range f.ventas {
		if v.ClienteID == clienteID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVentaRepo) Delete(_ context.Context, id string) error {
	for i, v := range f.ventas {
		if v.ID == id {
			f.ventas = append(f.ventas[:i], f.ventas[i+1:]...)
			return nil
		}
	}
	return mongodb.ErrNotFound
}

type fakeCompraRepo struct {
	compras []models.Compra
}

func (f *fakeCompraRepo) Insert(_ context.Context, c models.Compra) error {
	f.compras = append(f.compras, c)
	return nil
}

func (f *fakeCompraRepo) FindByID(_ context.Context, id string) (*models.Compra, error) {
	for _, c := range f.compras {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (f *fakeCompraRepo) FindAll(_ context.Context) ([]models.Compra, error) {
	return append([]models.Compra(nil), f.compras...), nil
}

func (f *fakeCompraRepo) FindByProveedorID(_ context.Context, proveedorID string) ([]models.Compra, error) {
	out := make([]models.Compra, 0)
	for _, c := range f.compras {
		if c.ProveedorID == proveedorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCompraRepo) Delete(_ context.Context, id string) error {
	for i, c := range f.compras {
		if c.ID == id {
			f.compras = append(f.compras[:i], f.compras[i+1:]...)
			return nil
		}
	}
	return mongodb.ErrNotFound
}

func venta(total float64, metodo string) models.Venta {
	return models.Venta{ID: "v", Total: total, MetodoPago: metodo}
}

func compra(total float64, metodo string) models.Compra {
	return models.Compra{ID: "c", Total: total, MetodoPago: metodo}
}

func TestGetEmptyStore(t *testing.T) {
	svc := NewService(&fakeVentaRepo{}, &fakeCompraRepo{}, nil)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.TotalVentas)
	assert.Zero(t, got.TotalCompras)
	assert.Zero(t, got.GananciaNeta)
	assert.Zero(t, got.CantidadVentas)
	assert.Zero(t, got.CantidadCompras)
}

func TestGetAggregatesTotalsAndBreakdown(t *testing.T) {
	ventasRepo := &fakeVentaRepo{ventas: []models.Venta{
		venta(100, models.MetodoPagoUSD),
		venta(50, models.MetodoPagoTransferencia),
		venta(25.5, models.MetodoPagoUSD),
	}}
	comprasRepo := &fakeCompraRepo{compras: []models.Compra{
		compra(40, models.MetodoPagoTransferencia),
		compra(10, models.MetodoPagoUSD),
	}}

	svc := NewService(ventasRepo, comprasRepo, nil)
	got, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 175.5, got.TotalVentas)
	assert.Equal(t, float64(50), got.TotalCompras)
	assert.Equal(t, 125.5, got.GananciaNeta)
	assert.Equal(t, 125.5, got.VentasPorMetodo.USD)
	assert.Equal(t, float64(50), got.VentasPorMetodo.Transferencia)
	assert.Equal(t, float64(10), got.ComprasPorMetodo.USD)
	assert.Equal(t, float64(40), got.ComprasPorMetodo.Transferencia)
	assert.Equal(t, 3, got.CantidadVentas)
	assert.Equal(t, 2, got.CantidadCompras)
}

func TestGetExcludesUnknownMethodsFromBreakdownOnly(t *testing.T) {
	// An unrecognized payment method still counts toward the totals and the
	// record counts; it just has no bucket in the breakdown.
	ventasRepo := &fakeVentaRepo{ventas: []models.Venta{
		venta(100, models.MetodoPagoUSD),
		venta(30, "Efectivo"),
	}}
	comprasRepo := &fakeCompraRepo{compras: []models.Compra{
		compra(20, "Cheque"),
	}}

	svc := NewService(ventasRepo, comprasRepo, nil)
	got, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(130), got.TotalVentas)
	assert.Equal(t, float64(100), got.VentasPorMetodo.USD)
	assert.Zero(t, got.VentasPorMetodo.Transferencia)
	assert.Equal(t, float64(20), got.TotalCompras)
	assert.Zero(t, got.ComprasPorMetodo.USD)
	assert.Zero(t, got.ComprasPorMetodo.Transferencia)
	assert.Equal(t, float64(110), got.GananciaNeta)
	assert.Equal(t, 2, got.CantidadVentas)
	assert.Equal(t, 1, got.CantidadCompras)
}
