// Command smoketest drives a running ferreteria instance through the full API
// surface: entity CRUD, the sale and purchase stock round-trips, and the
// comparatives report. It exits non-zero when any check fails.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sdiagne/ferreteria/internal/domain/models"
)

type tester struct {
	client *resty.Client
	run    int
	passed int
}

func newTester(baseURL string) *tester {
	client := resty.New().
		SetBaseURL(baseURL+"/api").
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	return &tester{client: client}
}

func (t *tester) check(name string, ok bool, detail string) bool {
	t.run++
	if ok {
		t.passed++
		fmt.Printf("ok   %s\n", name)
	} else {
		fmt.Printf("FAIL %s: %s\n", name, detail)
	}
	return ok
}

func (t *tester) expectStatus(name string, resp *resty.Response, err error, want int) bool {
	if err != nil {
		return t.check(name, false, err.Error())
	}
	return t.check(name, resp.StatusCode() == want,
		fmt.Sprintf("expected status %d, got %d (%s)", want, resp.StatusCode(), resp.String()))
}

func (t *tester) rootAndCategorias() {
	resp, err := t.client.R().Get("/")
	t.expectStatus("root endpoint", resp, err, http.StatusOK)

	var categorias []string
	resp, err = t.client.R().SetResult(&categorias).Get("/categorias")
	if t.expectStatus("categorias", resp, err, http.StatusOK) {
		t.check("categorias non-empty", len(categorias) > 0, "empty category list")
	}
}

func (t *tester) clienteCRUD() string {
	var cliente models.Cliente
	resp, err := t.client.R().
		SetBody(models.ClienteCreate{
			NombreCompleto: "Juan Pérez Test",
			RUC:            "12345678901",
			Direccion:      "Av. Test 123",
			Telefono:       "987654321",
			Email:          "juan.test@email.com",
		}).
		SetResult(&cliente).
		Post("/clientes")
	if !t.expectStatus("create cliente", resp, err, http.StatusOK) {
		return ""
	}
	t.check("cliente id assigned", cliente.ID != "", "missing id")
	t.check("cliente counter starts at zero", cliente.ContadorVentas == 0,
		fmt.Sprintf("contador_ventas=%d", cliente.ContadorVentas))

	var fetched models.Cliente
	resp, err = t.client.R().SetResult(&fetched).Get("/clientes/" + cliente.ID)
	if t.expectStatus("get cliente", resp, err, http.StatusOK) {
		t.check("cliente round-trips", fetched.NombreCompleto == cliente.NombreCompleto, "name mismatch")
	}

	resp, err = t.client.R().
		SetBody(models.ClienteCreate{
			NombreCompleto: "Juan Pérez Test",
			RUC:            "12345678901",
			Direccion:      "Av. Test 123",
			Telefono:       "999888777",
			Email:          "juan.test@email.com",
		}).
		SetResult(&fetched).
		Put("/clientes/" + cliente.ID)
	if t.expectStatus("update cliente", resp, err, http.StatusOK) {
		t.check("cliente update applied", fetched.Telefono == "999888777", "telefono not updated")
	}

	resp, err = t.client.R().Get("/clientes/no-such-id")
	t.expectStatus("get missing cliente is 404", resp, err, http.StatusNotFound)

	return cliente.ID
}

func (t *tester) productoCRUD(stock int) string {
	var producto models.Producto
	resp, err := t.client.R().
		SetBody(models.ProductoCreate{
			Nombre:      "Martillo",
			Descripcion: "Martillo de carpintero",
			Categoria:   "Herramientas manuales",
			Precio:      15.5,
			Stock:       stock,
		}).
		SetResult(&producto).
		Post("/productos")
	if !t.expectStatus("create producto", resp, err, http.StatusOK) {
		return ""
	}
	t.check("producto stock as supplied", producto.Stock == stock,
		fmt.Sprintf("stock=%d", producto.Stock))
	return producto.ID
}

func (t *tester) productoStock(id string) (int, bool) {
	var producto models.Producto
	resp, err := t.client.R().SetResult(&producto).Get("/productos/" + id)
	if err != nil || resp.StatusCode() != http.StatusOK {
		return 0, false
	}
	return producto.Stock, true
}

func (t *tester) ventaRoundTrip(clienteID, productoID string) {
	var venta models.Venta
	resp, err := t.client.R().
		SetBody(models.VentaCreate{
			ClienteID: clienteID,
			Productos: []models.ProductoVenta{{
				ProductoID:     productoID,
				Nombre:         "Martillo",
				Cantidad:       5,
				PrecioUnitario: 15.5,
				Subtotal:       77.5,
			}},
			MetodoPago: models.MetodoPagoUSD,
		}).
		SetResult(&venta).
		Post("/ventas")
	if !t.expectStatus("create venta", resp, err, http.StatusOK) {
		return
	}
	t.check("venta total summed", venta.Total == 77.5, fmt.Sprintf("total=%v", venta.Total))
	t.check("venta snapshots cliente name", venta.ClienteNombre != "", "missing cliente_nombre")

	if stock, ok := t.productoStock(productoID); ok {
		t.check("stock decremented by sale", stock == 95, fmt.Sprintf("stock=%d", stock))
	}

	var cliente models.Cliente
	resp, err = t.client.R().SetResult(&cliente).Get("/clientes/" + clienteID)
	if t.expectStatus("get cliente after venta", resp, err, http.StatusOK) {
		t.check("contador_ventas incremented", cliente.ContadorVentas == 1,
			fmt.Sprintf("contador_ventas=%d", cliente.ContadorVentas))
	}

	var ventasCliente []models.Venta
	resp, err = t.client.R().SetResult(&ventasCliente).Get("/ventas/cliente/" + clienteID)
	if t.expectStatus("list ventas by cliente", resp, err, http.StatusOK) {
		t.check("venta listed for cliente", len(ventasCliente) == 1,
			fmt.Sprintf("got %d ventas", len(ventasCliente)))
	}

	resp, err = t.client.R().Delete("/ventas/" + venta.ID)
	t.expectStatus("delete venta", resp, err, http.StatusOK)

	if stock, ok := t.productoStock(productoID); ok {
		t.check("stock restored after delete", stock == 100, fmt.Sprintf("stock=%d", stock))
	}
	resp, err = t.client.R().SetResult(&cliente).Get("/clientes/" + clienteID)
	if t.expectStatus("get cliente after delete", resp, err, http.StatusOK) {
		t.check("contador_ventas restored", cliente.ContadorVentas == 0,
			fmt.Sprintf("contador_ventas=%d", cliente.ContadorVentas))
	}
}

func (t *tester) compraRoundTrip(productoID string) {
	var proveedor models.Proveedor
	resp, err := t.client.R().
		SetBody(models.ProveedorCreate{
			NombreCompleto: "Distribuidora Central",
			RUC:            "20987654321",
			Direccion:      "Jr. Industrial 456",
			Telefono:       "912345678",
			Email:          "ventas@distribuidora.test",
		}).
		SetResult(&proveedor).
		Post("/proveedores")
	if !t.expectStatus("create proveedor", resp, err, http.StatusOK) {
		return
	}

	var compra models.Compra
	resp, err = t.client.R().
		SetBody(models.CompraCreate{
			ProveedorID: proveedor.ID,
			Productos: []models.ProductoCompra{{
				ProductoID:     productoID,
				Nombre:         "Martillo",
				Cantidad:       20,
				PrecioUnitario: 10,
				Subtotal:       200,
			}},
			MetodoPago: models.MetodoPagoTransferencia,
		}).
		SetResult(&compra).
		Post("/compras")
	if !t.expectStatus("create compra", resp, err, http.StatusOK) {
		return
	}

	if stock, ok := t.productoStock(productoID); ok {
		t.check("stock incremented by purchase", stock == 120, fmt.Sprintf("stock=%d", stock))
	}

	resp, err = t.client.R().SetResult(&proveedor).Get("/proveedores/" + proveedor.ID)
	if t.expectStatus("get proveedor after compra", resp, err, http.StatusOK) {
		t.check("contador_compras incremented", proveedor.ContadorCompras == 1,
			fmt.Sprintf("contador_compras=%d", proveedor.ContadorCompras))
	}

	resp, err = t.client.R().Delete("/compras/" + compra.ID)
	t.expectStatus("delete compra", resp, err, http.StatusOK)

	if stock, ok := t.productoStock(productoID); ok {
		t.check("stock restored after compra delete", stock == 100, fmt.Sprintf("stock=%d", stock))
	}
}

func (t *tester) comparativas() {
	var comparativa models.Comparativa
	resp, err := t.client.R().SetResult(&comparativa).Get("/comparativas")
	if t.expectStatus("comparativas", resp, err, http.StatusOK) {
		t.check("ganancia_neta consistent",
			comparativa.GananciaNeta == comparativa.TotalVentas-comparativa.TotalCompras,
			fmt.Sprintf("ventas=%v compras=%v neta=%v",
				comparativa.TotalVentas, comparativa.TotalCompras, comparativa.GananciaNeta))
	}
}

func (t *tester) notFoundProbes() {
	resp, err := t.client.R().Delete("/ventas/no-such-id")
	t.expectStatus("delete missing venta is 404", resp, err, http.StatusNotFound)

	resp, err = t.client.R().
		SetBody(models.VentaCreate{ClienteID: "no-such-cliente", MetodoPago: models.MetodoPagoUSD}).
		Post("/ventas")
	t.expectStatus("venta against missing cliente is 404", resp, err, http.StatusNotFound)
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of the running API")
	flag.Parse()

	t := newTester(*baseURL)

	t.rootAndCategorias()
	clienteID := t.clienteCRUD()
	productoID := t.productoCRUD(100)

	if clienteID != "" && productoID != "" {
		t.ventaRoundTrip(clienteID, productoID)
		t.compraRoundTrip(productoID)
	}

	t.comparativas()
	t.notFoundProbes()

	fmt.Printf("\n%d/%d checks passed\n", t.passed, t.run)
	if t.passed != t.run {
		os.Exit(1)
	}
}
