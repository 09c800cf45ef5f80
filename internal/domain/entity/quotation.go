package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/paktech/tender-docs/internal/domain"
)

// Template plantilla impresa de cotización, elegida por el campo forCompany.
type Template int

const (
	TemplatePaktech Template = iota + 1
	TemplateTechno
)

// String devuelve el valor de forCompany correspondiente.
func (t Template) String() string {
	switch t {
	case TemplatePaktech:
		return "Paktech"
	case TemplateTechno:
		return "Techno"
	default:
		return fmt.Sprintf("Template(%d)", int(t))
	}
}

// ParseTemplate traduce forCompany. Cualquier otro valor es un error de configuración.
func ParseTemplate(forCompany string) (Template, error) {
	switch forCompany {
	case "Paktech":
		return TemplatePaktech, nil
	case "Techno":
		return TemplateTechno, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTemplate, forCompany)
	}
}

// Quotation cotización enviada a un cliente en respuesta a una licitación.
// GrandTotal = SubTotal + SubTotal × Tax (calculado aguas arriba).
type Quotation struct {
	ID            string          `json:"id,omitempty"`
	QuoteNo       string          `json:"quoteNo"`
	Date          string          `json:"date"`
	ForCompany    string          `json:"forCompany"`
	TenderNumber  string          `json:"tenderNumber,omitempty"`
	Subject       string          `json:"subject,omitempty"`
	Customer      Party           `json:"customer"`
	Items         []LineItem      `json:"items"`
	Tax           decimal.Decimal `json:"tax"` // fracción: 0.1 = 10%
	SubTotal      decimal.Decimal `json:"subTotal"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	CurrencyUnit  string          `json:"currencyUnit,omitempty"`
	Validity      string          `json:"validity,omitempty"`
	DeliveryTerms string          `json:"deliveryTerms,omitempty"`
	PaymentTerms  string          `json:"paymentTerms,omitempty"`
	Warranty      string          `json:"warranty,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// TaxAmount SubTotal × Tax redondeado a 2 decimales.
func (q *Quotation) TaxAmount() decimal.Decimal {
	return q.SubTotal.Mul(q.Tax).Round(2)
}

// PDFFilename Quotation_<quoteNo>.pdf; sin número usa el de la licitación o "draft".
func (q *Quotation) PDFFilename() string {
	fallback := strings.TrimSpace(q.TenderNumber)
	if fallback == "" {
		fallback = "draft"
	}
	return "Quotation_" + safeFilePart(q.QuoteNo, fallback) + ".pdf"
}
