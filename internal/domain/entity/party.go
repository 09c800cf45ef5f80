package entity

// Party contraparte de un documento (cliente, proveedor o destino de envío).
// Todos los campos son opcionales: el PDF sustituye los vacíos por "N/A".
type Party struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	TaxID         string `json:"ntn,omitempty"` // NTN / STRN
}

// IsZero indica si la contraparte no trae ningún dato.
func (p Party) IsZero() bool {
	return p == Party{}
}
