package models

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a sales counterparty. ContadorVentas only moves through sale
// creation and deletion.
type Cliente struct {
	ID             string    `bson:"id" json:"id"`
	NombreCompleto string    `bson:"nombre_completo" json:"nombre_completo"`
	RUC            string    `bson:"ruc" json:"ruc"`
	Direccion      string    `bson:"direccion" json:"direccion"`
	Telefono       string    `bson:"telefono" json:"telefono"`
	Email          string    `bson:"email" json:"email"`
	ContadorVentas int       `bson:"contador_ventas" json:"contador_ventas"`
	FechaRegistro  time.Time `bson:"fecha_registro" json:"fecha_registro"`
}

// ClienteCreate carries the caller-supplied fields for creating or replacing a
// client. Id, counter and timestamp are server-assigned.
type ClienteCreate struct {
	NombreCompleto string `json:"nombre_completo"`
	RUC            string `json:"ruc"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
}

// NewCliente materializes a Cliente from its creation payload.
func NewCliente(in ClienteCreate) Cliente {
	return Cliente{
		ID:             uuid.NewString(),
		NombreCompleto: in.NombreCompleto,
		RUC:            in.RUC,
		Direccion:      in.Direccion,
		Telefono:       in.Telefono,
		Email:          in.Email,
		FechaRegistro:  time.Now().UTC(),
	}
}
