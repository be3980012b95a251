package models

// MontosPorMetodo breaks an amount down by the two reported payment methods.
type MontosPorMetodo struct {
	USD           float64 `json:"USD"`
	Transferencia float64 `json:"Transferencia"`
}

// Comparativa is the derived sales-vs-purchases financial summary.
type Comparativa struct {
	TotalVentas      float64         `json:"total_ventas"`
	TotalCompras     float64         `json:"total_compras"`
	GananciaNeta     float64         `json:"ganancia_neta"`
	VentasPorMetodo  MontosPorMetodo `json:"ventas_por_metodo"`
	ComprasPorMetodo MontosPorMetodo `json:"compras_por_metodo"`
	CantidadVentas   int             `json:"cantidad_ventas"`
	CantidadCompras  int             `json:"cantidad_compras"`
}
