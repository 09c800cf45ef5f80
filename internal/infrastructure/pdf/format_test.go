package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Currency(t *testing.T) {
	f := NewFormatter("en", "")
	tests := []struct {
		name string
		unit string
		in   decimal.Decimal
		want string
	}{
		{"subtotal", "PKR", decimal.NewFromInt(200), "PKR 200.00"},
		{"impuesto", "PKR", decimal.RequireFromString("20"), "PKR 20.00"},
		{"moneda por defecto", "", decimal.RequireFromString("220"), "PKR 220.00"},
		{"miles", "USD", decimal.RequireFromString("1234.5"), "USD 1,234.50"},
		{"redondeo", "PKR", decimal.RequireFromString("0.005"), "PKR 0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Currency(tt.unit, tt.in))
		})
	}
}

func TestFormatter_LocaleInvalidoCaeEnIngles(t *testing.T) {
	f := NewFormatter("??", "USD")
	assert.Equal(t, "USD 5.00", f.Currency("", decimal.NewFromInt(5)))
}

func TestFormatter_Percent(t *testing.T) {
	f := NewFormatter("en", "")
	assert.Equal(t, "10%", f.Percent(decimal.RequireFromString("0.1")))
	assert.Equal(t, "17.5%", f.Percent(decimal.RequireFromString("0.175")))
	assert.Equal(t, "0%", f.Percent(decimal.Zero))
}

func TestFormatter_Date(t *testing.T) {
	f := NewFormatter("en", "")
	assert.Equal(t, "05/03/2024", f.Date("2024-03-05"))
	assert.Equal(t, "05/03/2024", f.Date("2024-03-05T10:00:00Z"))
	assert.Equal(t, "N/A", f.Date("  "))
	assert.Equal(t, "next week", f.Date("next week"))
}

func TestDocumentDate_Determinista(t *testing.T) {
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), documentDate("2024-03-05"))
	assert.Equal(t, documentDate(""), documentDate("garbage"))
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "N/A", orNA("   "))
	assert.Equal(t, "Lahore", orNA(" Lahore "))
}
