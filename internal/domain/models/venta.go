package models

import "time"

// Payment methods broken out in the comparatives report. Other values are
// stored as-is and only excluded from the per-method breakdown.
const (
	MetodoPagoUSD           = "USD"
	MetodoPagoTransferencia = "Transferencia"
)

// ProductoVenta is a line item embedded in a sale. Subtotal is trusted as
// supplied by the caller and never recomputed from Cantidad and PrecioUnitario.
type ProductoVenta struct {
	ProductoID     string  `bson:"producto_id" json:"producto_id"`
	Nombre         string  `bson:"nombre" json:"nombre"`
	Cantidad       int     `bson:"cantidad" json:"cantidad"`
	PrecioUnitario float64 `bson:"precio_unitario" json:"precio_unitario"`
	Subtotal       float64 `bson:"subtotal" json:"subtotal"`
}

// Venta is a sale record. ClienteNombre is a point-in-time copy of the
// client's name at creation and is never refreshed afterwards.
type Venta struct {
	ID            string          `bson:"id" json:"id"`
	ClienteID     string          `bson:"cliente_id" json:"cliente_id"`
	ClienteNombre string          `bson:"cliente_nombre" json:"cliente_nombre"`
	Productos     []ProductoVenta `bson:"productos" json:"productos"`
	Total         float64         `bson:"total" json:"total"`
	MetodoPago    string          `bson:"metodo_pago" json:"metodo_pago"`
	Fecha         time.Time       `bson:"fecha" json:"fecha"`
}

// VentaCreate is the sale creation payload.
type VentaCreate struct {
	ClienteID  string          `json:"cliente_id"`
	Productos  []ProductoVenta `json:"productos"`
	MetodoPago string          `json:"metodo_pago"`
}
