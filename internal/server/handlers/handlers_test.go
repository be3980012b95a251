package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdiagne/ferreteria/internal/domain/models"
	"github.com/sdiagne/ferreteria/internal/repository/mongodb"
	"github.com/sdiagne/ferreteria/internal/server/handlers"
	"github.com/sdiagne/ferreteria/internal/server/router"
	"github.com/sdiagne/ferreteria/internal/service/catalogo"
	comparativassvc "github.com/sdiagne/ferreteria/internal/service/comparativas"
	comprassvc "github.com/sdiagne/ferreteria/internal/service/compras"
	ventassvc "github.com/sdiagne/ferreteria/internal/service/ventas"
)

type memClienteRepo struct{ byID map[string]models.Cliente }

func (f *memClienteRepo) Insert(_ context.Context, c models.Cliente) error {
	f.byID[c.ID] = c
	return nil
}

func (f *memClienteRepo) FindByID(_ context.Context, id string) (*models.Cliente, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	return &c, nil
}

func (f *memClienteRepo) FindAll(_ context.Context) ([]models.Cliente, error) {
	out := make([]models.Cliente, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *memClienteRepo) Update(_ context.Context, id string, in models.ClienteCreate) (*models.Cliente, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	c.NombreCompleto = in.NombreCompleto
	c.RUC = in.RUC
	c.Direccion = in.Direccion
	c.Telefono = in.Telefono
	c.Email = in.Email
	f.byID[id] = c
	return &c, nil
}

func (f *memClienteRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return mongodb.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *memClienteRepo) IncContadorVentas(_ context.Context, id string, delta int) error {
	if c, ok := f.byID[id]; ok {
		c.ContadorVentas += delta
		f.byID[id] = c
	}
	return nil
}

type memProveedorRepo struct{ byID map[string]models.Proveedor }

func (f *memProveedorRepo) Insert(_ context.Context, p models.Proveedor) error {
	f.byID[p.ID] = p
	return nil
}

func (f *memProveedorRepo) FindByID(_ context.Context, id string) (*models.Proveedor, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	return &p, nil
}

func (f *memProveedorRepo) FindAll(_ context.Context) ([]models.Proveedor, error) {
	out := make([]models.Proveedor, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *memProveedorRepo) Update(_ context.Context, id string, in models.ProveedorCreate) (*models.Proveedor, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	p.NombreCompleto = in.NombreCompleto
	f.byID[id] = p
	return &p, nil
}

func (f *memProveedorRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return mongodb.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *memProveedorRepo) IncContadorCompras(_ context.Context, id string, delta int) error {
	if p, ok := f.byID[id]; ok {
		p.ContadorCompras += delta
		f.byID[id] = p
	}
	return nil
}

type memProductoRepo struct{ byID map[string]models.Producto }

func (f *memProductoRepo) Insert(_ context.Context, p models.Producto) error {
	f.byID[p.ID] = p
	return nil
}

func (f *memProductoRepo) FindByID(_ context.Context, id string) (*models.Producto, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	return &p, nil
}

func (f *memProductoRepo) FindAll(_ context.Context) ([]models.Producto, error) {
	out := make([]models.Producto, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *memProductoRepo) Update(_ context.Context, id string, in models.ProductoCreate) (*models.Producto, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	p.Nombre = in.Nombre
	p.Stock = in.Stock
	f.byID[id] = p
	return &p, nil
}

func (f *memProductoRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return mongodb.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *memProductoRepo) IncStock(_ context.Context, id string, delta int) error {
	if p, ok := f.byID[id]; ok {
		p.Stock += delta
		f.byID[id] = p
	}
	return nil
}

type memVentaRepo struct{ byID map[string]models.Venta }

func (f *memVentaRepo) Insert(_ context.Context, v models.Venta) error {
	f.byID[v.ID] = v
	return nil
}

func (f *memVentaRepo) FindByID(_ context.Context, id string) (*models.Venta, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	return &v, nil
}

func (f *memVentaRepo) FindAll(_ context.Context) ([]models.Venta, error) {
	out := make([]models.Venta, 0, len(f.byID))
	for _, v := range f.byID {
		out = append(out, v)
	}
	return out, nil
}

func (f *memVentaRepo) FindByClienteID(_ context.Context, clienteID string) ([]models.Venta, error) {
	out := make([]models.Venta, 0)
	for _, v := range f.byID {
		if v.ClienteID == clienteID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *memVentaRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return mongodb.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type memCompraRepo struct{ byID map[string]models.Compra }

func (f *memCompraRepo) Insert(_ context.Context, c models.Compra) error {
	f.byID[c.ID] = c
	return nil
}

func (f *memCompraRepo) FindByID(_ context.Context, id string) (*models.Compra, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	return &c, nil
}

func (f *memCompraRepo) FindAll(_ context.Context) ([]models.Compra, error) {
	out := make([]models.Compra, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *memCompraRepo) FindByProveedorID(_ context.Context, proveedorID string) ([]models.Compra, error) {
	out := make([]models.Compra, 0)
	for _, c := range f.byID {
		if c.ProveedorID == proveedorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *memCompraRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return mongodb.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func newTestEngine() (*gin.Engine, *memProductoRepo, *memClienteRepo) {
	clienteRepo := &memClienteRepo{byID: make(map[string]models.Cliente)}
	proveedorRepo := &memProveedorRepo{byID: make(map[string]models.Proveedor)}
	productoRepo := &memProductoRepo{byID: make(map[string]models.Producto)}
	ventaRepo := &memVentaRepo{byID: make(map[string]models.Venta)}
	compraRepo := &memCompraRepo{byID: make(map[string]models.Compra)}

	clienteSvc := catalogo.NewClienteService(clienteRepo, nil)
	proveedorSvc := catalogo.NewProveedorService(proveedorRepo, nil)
	productoSvc := catalogo.NewProductoService(productoRepo, nil)
	ventaSvc := ventassvc.NewService(ventaRepo, clienteRepo, productoRepo, nil)
	compraSvc := comprassvc.NewService(compraRepo, proveedorRepo, productoRepo, nil)
	comparativaSvc := comparativassvc.NewService(ventaRepo, compraRepo, nil)

	engine := router.New(router.Handlers{
		Clientes:     handlers.NewClienteHandler(clienteSvc, nil),
		Proveedores:  handlers.NewProveedorHandler(proveedorSvc, nil),
		Productos:    handlers.NewProductoHandler(productoSvc, nil),
		Ventas:       handlers.NewVentaHandler(ventaSvc, nil),
		Compras:      handlers.NewCompraHandler(compraSvc, nil),
		Comparativas: handlers.NewComparativaHandler(comparativaSvc, nil),
	}, []string{"*"}, nil)

	return engine, productoRepo, clienteRepo
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRootEndpoint(t *testing.T) {
	engine, _, _ := newTestEngine()

	rec := doJSON(t, engine, http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Sistema de Gestión de Ferretería API", body["message"])
}

func TestCategoriasEndpoint(t *testing.T) {
	engine, _, _ := newTestEngine()

	rec := doJSON(t, engine, http.MethodGet, "/api/categorias", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var categorias []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categorias))
	assert.Len(t, categorias, 8)
	assert.Contains(t, categorias, "Plomería")
}

func TestClienteLifecycleOverHTTP(t *testing.T) {
	engine, _, _ := newTestEngine()

	rec := doJSON(t, engine, http.MethodPost, "/api/clientes", models.ClienteCreate{
		NombreCompleto: "Juan Pérez",
		RUC:            "12345678901",
		Direccion:      "Av. Central 100",
		Telefono:       "987654321",
		Email:          "juan@correo.test",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Cliente
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.ContadorVentas)

	rec = doJSON(t, engine, http.MethodGet, "/api/clientes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/clientes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var msg map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "Cliente eliminado correctamente", msg["message"])

	rec = doJSON(t, engine, http.MethodGet, "/api/clientes/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	var detail map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Cliente no encontrado", detail["detail"])
}

func TestVentaOverHTTPAdjustsStock(t *testing.T) {
	engine, productoRepo, clienteRepo := newTestEngine()
	ctx := context.Background()

	cliente := models.Cliente{ID: "cli-1", NombreCompleto: "Juan Pérez", FechaRegistro: time.Now().UTC()}
	require.NoError(t, clienteRepo.Insert(ctx, cliente))
	producto := models.Producto{ID: "prod-1", Nombre: "Martillo", Stock: 100, Precio: 15.5}
	require.NoError(t, productoRepo.Insert(ctx, producto))

	rec := doJSON(t, engine, http.MethodPost, "/api/ventas", models.VentaCreate{
		ClienteID: cliente.ID,
		Productos: []models.ProductoVenta{{
			ProductoID: producto.ID, Nombre: "Martillo", Cantidad: 5, PrecioUnitario: 15.5, Subtotal: 77.5,
		}},
		MetodoPago: models.MetodoPagoUSD,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var venta models.Venta
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &venta))
	assert.Equal(t, 77.5, venta.Total)
	assert.Equal(t, "Juan Pérez", venta.ClienteNombre)

	stored, err := productoRepo.FindByID(ctx, producto.ID)
	require.NoError(t, err)
	assert.Equal(t, 95, stored.Stock)

	rec = doJSON(t, engine, http.MethodDelete, "/api/ventas/"+venta.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err = productoRepo.FindByID(ctx, producto.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Stock)
}

func TestVentaUnknownClienteIs404(t *testing.T) {
	engine, _, _ := newTestEngine()

	rec := doJSON(t, engine, http.MethodPost, "/api/ventas", models.VentaCreate{
		ClienteID:  "no-such-cliente",
		MetodoPago: models.MetodoPagoUSD,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var detail map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Cliente no encontrado", detail["detail"])
}

func TestMalformedBodyIs400(t *testing.T) {
	engine, _, _ := newTestEngine()

	req := httptest.NewRequest(http.MethodPost, "/api/productos", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComparativasOverHTTP(t *testing.T) {
	engine, productoRepo, clienteRepo := newTestEngine()
	ctx := context.Background()

	require.NoError(t, clienteRepo.Insert(ctx, models.Cliente{ID: "cli-1", NombreCompleto: "Ana"}))
	require.NoError(t, productoRepo.Insert(ctx, models.Producto{ID: "prod-1", Nombre: "Sierra", Stock: 10}))

	rec := doJSON(t, engine, http.MethodPost, "/api/ventas", models.VentaCreate{
		ClienteID: "cli-1",
		Productos: []models.ProductoVenta{{
			ProductoID: "prod-1", Nombre: "Sierra", Cantidad: 1, PrecioUnitario: 30, Subtotal: 30,
		}},
		MetodoPago: models.MetodoPagoUSD,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/comparativas", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var comparativa models.Comparativa
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comparativa))
	assert.Equal(t, float64(30), comparativa.TotalVentas)
	assert.Equal(t, float64(30), comparativa.GananciaNeta)
	assert.Equal(t, float64(30), comparativa.VentasPorMetodo.USD)
	assert.Equal(t, 1, comparativa.CantidadVentas)
}
