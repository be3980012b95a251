package models

import "time"

// ProductoCompra is a line item embedded in a purchase.
type ProductoCompra struct {
	ProductoID     string  `bson:"producto_id" json:"producto_id"`
	Nombre         string  `bson:"nombre" json:"nombre"`
	Cantidad       int     `bson:"cantidad" json:"cantidad"`
	PrecioUnitario float64 `bson:"precio_unitario" json:"precio_unitario"`
	Subtotal       float64 `bson:"subtotal" json:"subtotal"`
}

// Compra is a purchase record, the supplier-side mirror of Venta.
// ProveedorNombre is a creation-time snapshot.
type Compra struct {
	ID              string           `bson:"id" json:"id"`
	ProveedorID     string           `bson:"proveedor_id" json:"proveedor_id"`
	ProveedorNombre string           `bson:"proveedor_nombre" json:"proveedor_nombre"`
	Productos       []ProductoCompra `bson:"productos" json:"productos"`
	Total           float64          `bson:"total" json:"total"`
	MetodoPago      string           `bson:"metodo_pago" json:"metodo_pago"`
	Fecha           time.Time        `bson:"fecha" json:"fecha"`
}

// CompraCreate is the purchase creation payload.
type CompraCreate struct {
	ProveedorID string           `json:"proveedor_id"`
	Productos   []ProductoCompra `json:"productos"`
	MetodoPago  string           `json:"metodo_pago"`
}
