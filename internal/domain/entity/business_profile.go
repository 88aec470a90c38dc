package entity

import "time"

// BusinessProfile son los datos del negocio que encabezan reportes y tickets.
// Hay un único registro.
type BusinessProfile struct {
	Name      string
	Address   string
	Phone     string
	RTN       string // Registro Tributario Nacional (Honduras)
	UpdatedAt time.Time
}
