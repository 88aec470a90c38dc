package dto

import "time"

// BusinessProfileRequest datos del negocio para encabezados.
type BusinessProfileRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"max=300"`
	Phone   string `json:"phone" validate:"max=50"`
	RTN     string `json:"rtn" validate:"max=30"`
}

// BusinessProfileResponse datos del negocio.
type BusinessProfileResponse struct {
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	RTN       string    `json:"rtn"`
	UpdatedAt time.Time `json:"updated_at"`
}
