package entity

import "github.com/shopspring/decimal"

// DocumentKind tipo de documento exportable.
type DocumentKind string

const (
	KindInvoice       DocumentKind = "invoices"
	KindPurchaseOrder DocumentKind = "purchase-orders"
	KindQuotation     DocumentKind = "quotations"
	KindTender        DocumentKind = "tenders"
)

// Title encabezado legible del tipo.
func (k DocumentKind) Title() string {
	switch k {
	case KindInvoice:
		return "Invoices"
	case KindPurchaseOrder:
		return "Purchase Orders"
	case KindQuotation:
		return "Quotations"
	case KindTender:
		return "Tenders"
	default:
		return string(k)
	}
}

// Valid indica si el tipo es conocido.
func (k DocumentKind) Valid() bool {
	switch k {
	case KindInvoice, KindPurchaseOrder, KindQuotation, KindTender:
		return true
	}
	return false
}

// DocumentSummary fila de un listado (registro exportable).
type DocumentSummary struct {
	ID           string
	Number       string
	Date         string
	Counterparty string
	Status       string
	CurrencyUnit string
	GrandTotal   decimal.Decimal
}

// RenderedPDF resultado de un render: bytes listos para descargar.
type RenderedPDF struct {
	Filename string
	Content  []byte
	Pages    int
	Cached   bool
}
