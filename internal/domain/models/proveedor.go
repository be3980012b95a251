package models

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor is a purchase counterparty, the supplier-side mirror of Cliente.
type Proveedor struct {
	ID              string    `bson:"id" json:"id"`
	NombreCompleto  string    `bson:"nombre_completo" json:"nombre_completo"`
	RUC             string    `bson:"ruc" json:"ruc"`
	Direccion       string    `bson:"direccion" json:"direccion"`
	Telefono        string    `bson:"telefono" json:"telefono"`
	Email           string    `bson:"email" json:"email"`
	ContadorCompras int       `bson:"contador_compras" json:"contador_compras"`
	FechaRegistro   time.Time `bson:"fecha_registro" json:"fecha_registro"`
}

// ProveedorCreate carries the caller-supplied supplier fields.
type ProveedorCreate struct {
	NombreCompleto string `json:"nombre_completo"`
	RUC            string `json:"ruc"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
}

// NewProveedor materializes a Proveedor from its creation payload.
func NewProveedor(in ProveedorCreate) Proveedor {
	return Proveedor{
		ID:             uuid.NewString(),
		NombreCompleto: in.NombreCompleto,
		RUC:            in.RUC,
		Direccion:      in.Direccion,
		Telefono:       in.Telefono,
		Email:          in.Email,
		FechaRegistro:  time.Now().UTC(),
	}
}
