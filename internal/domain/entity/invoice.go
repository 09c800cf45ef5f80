package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Invoice factura emitida a un cliente. Los totales vienen calculados del backend:
// GrandTotal = SubTotal + Σ impuestos por ítem. El PDF solo los muestra.
type Invoice struct {
	ID            string              `json:"id,omitempty"`
	InvoiceNumber string              `json:"invoiceNumber"`
	Date          string              `json:"date"`
	DueDate       string              `json:"dueDate,omitempty"`
	PONumber      string              `json:"poNumber,omitempty"`
	Customer      Party               `json:"customer"`
	ShipTo        Party               `json:"shipTo"`
	Items         []LineItem          `json:"items"`
	SubTotal      decimal.Decimal     `json:"subTotal"`
	TaxAmount     decimal.NullDecimal `json:"taxAmount"`
	GrandTotal    decimal.Decimal     `json:"grandTotal"`
	CurrencyUnit  string              `json:"currencyUnit,omitempty"`
	PaymentTerms  string              `json:"paymentTerms,omitempty"`
	BankDetails   string              `json:"bankDetails,omitempty"`
	Notes         string              `json:"notes,omitempty"`
}

// ItemTaxTotal suma de impuestos por ítem; se usa si el backend no envió TaxAmount.
func (inv *Invoice) ItemTaxTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range inv.Items {
		total = total.Add(it.Tax)
	}
	return total
}

// DisplayTax impuesto a mostrar en el bloque de totales. Un TaxAmount enviado
// se respeta aunque sea 0; ausente o null se suman los impuestos por ítem.
func (inv *Invoice) DisplayTax() decimal.Decimal {
	if inv.TaxAmount.Valid {
		return inv.TaxAmount.Decimal
	}
	return inv.ItemTaxTotal()
}

// PDFFilename Invoice_<number>.pdf
func (inv *Invoice) PDFFilename() string {
	return "Invoice_" + safeFilePart(inv.InvoiceNumber, "draft") + ".pdf"
}

// safeFilePart limpia separadores de ruta de un número de documento.
func safeFilePart(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return strings.NewReplacer("/", "-", "\\", "-", "\"", "").Replace(s)
}
