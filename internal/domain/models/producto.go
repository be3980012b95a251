package models

import (
	"time"

	"github.com/google/uuid"
)

// Producto is an inventory item. Stock is adjusted exclusively by sale and
// purchase create/delete; no floor is enforced, so it may go negative.
type Producto struct {
	ID            string    `bson:"id" json:"id"`
	Nombre        string    `bson:"nombre" json:"nombre"`
	Descripcion   string    `bson:"descripcion" json:"descripcion"`
	Categoria     string    `bson:"categoria" json:"categoria"`
	Precio        float64   `bson:"precio" json:"precio"`
	Stock         int       `bson:"stock" json:"stock"`
	ImagenURL     string    `bson:"imagen_url" json:"imagen_url"`
	FechaCreacion time.Time `bson:"fecha_creacion" json:"fecha_creacion"`
}

// ProductoCreate carries the caller-supplied product fields.
type ProductoCreate struct {
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Categoria   string  `json:"categoria"`
	Precio      float64 `json:"precio"`
	Stock       int     `json:"stock"`
	ImagenURL   string  `json:"imagen_url"`
}

// NewProducto materializes a Producto from its creation payload.
func NewProducto(in ProductoCreate) Producto {
	return Producto{
		ID:            uuid.NewString(),
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		Categoria:     in.Categoria,
		Precio:        in.Precio,
		Stock:         in.Stock,
		ImagenURL:     in.ImagenURL,
		FechaCreacion: time.Now().UTC(),
	}
}
