package pdf

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	notAvailable    = "N/A"
	defaultCurrency = "PKR"
	dateLayout      = "02/01/2006"
)

var inputDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// Formatter formato de montos y fechas según el locale configurado.
type Formatter struct {
	p        *message.Printer
	currency string
}

// NewFormatter locale BCP 47 ("en-PK", "en"); un locale inválido cae en inglés.
func NewFormatter(locale, currency string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	if strings.TrimSpace(currency) == "" {
		currency = defaultCurrency
	}
	return Formatter{p: message.NewPrinter(tag), currency: currency}
}

// Amount monto con separador de miles y 2 decimales.
func (f Formatter) Amount(d decimal.Decimal) string {
	return f.p.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Currency "PKR 1,234.50". unit vacío usa la moneda por defecto.
func (f Formatter) Currency(unit string, d decimal.Decimal) string {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = f.currency
	}
	return unit + " " + f.Amount(d)
}

// Percent fracción → porcentaje: 0.1 → "10%", 0.175 → "17.5%".
func (f Formatter) Percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).Round(2).String() + "%"
}

// Date dd/mm/yyyy. Vacío → "N/A"; formato desconocido se muestra tal cual.
func (f Formatter) Date(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return notAvailable
	}
	if t, ok := parseDate(s); ok {
		return t.Format(dateLayout)
	}
	return s
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range inputDateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// documentDate fecha para los metadatos del PDF; nunca depende del reloj.
func documentDate(s string) time.Time {
	if t, ok := parseDate(s); ok {
		return t.UTC()
	}
	return time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// orNA sustituye campos ausentes por "N/A".
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return strings.TrimSpace(s)
}
