package entity

import "github.com/shopspring/decimal"

// LineItem una fila de la tabla de ítems.
// Description puede ser texto plano o un HTML restringido (<p>, <strong>/<b>, <ul>/<ol>/<li>).
type LineItem struct {
	SNo         int             `json:"sNo"`
	Description string          `json:"item"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Tax         decimal.Decimal `json:"tax"` // impuesto por ítem (monto), solo facturas
}

// Amount cantidad × precio unitario.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// AmountWithTax cantidad × precio unitario + impuesto del ítem.
func (li LineItem) AmountWithTax() decimal.Decimal {
	return li.Amount().Add(li.Tax)
}
