package entity

import "github.com/shopspring/decimal"

// PurchaseOrder orden de compra a un proveedor.
// GrandTotal = SubTotal + SubTotal × TaxRate (calculado aguas arriba).
type PurchaseOrder struct {
	ID            string          `json:"id,omitempty"`
	PONumber      string          `json:"poNumber"`
	Date          string          `json:"date"`
	DeliveryDate  string          `json:"deliveryDate,omitempty"`
	TenderNumber  string          `json:"tenderNumber,omitempty"`
	Vendor        Party           `json:"vendor"`
	ShipTo        Party           `json:"shipTo"`
	Items         []LineItem      `json:"items"`
	SubTotal      decimal.Decimal `json:"subTotal"`
	TaxRate       decimal.Decimal `json:"tax"` // fracción: 0.17 = 17%
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	CurrencyUnit  string          `json:"currencyUnit,omitempty"`
	PaymentTerms  string          `json:"paymentTerms,omitempty"`
	DeliveryTerms string          `json:"deliveryTerms,omitempty"`
	Warranty      string          `json:"warranty,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// TaxAmount monto de impuesto a mostrar.
func (po *PurchaseOrder) TaxAmount() decimal.Decimal {
	return po.SubTotal.Mul(po.TaxRate).Round(2)
}

// PDFFilename <poNumber>.pdf
func (po *PurchaseOrder) PDFFilename() string {
	return safeFilePart(po.PONumber, "PurchaseOrder") + ".pdf"
}
