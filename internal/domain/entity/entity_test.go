package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paktech/tender-docs/internal/domain"
	"github.com/paktech/tender-docs/internal/domain/entity"
)

func TestParseTemplate(t *testing.T) {
	tpl, err := entity.ParseTemplate("Paktech")
	require.NoError(t, err)
	assert.Equal(t, entity.TemplatePaktech, tpl)

	tpl, err = entity.ParseTemplate("Techno")
	require.NoError(t, err)
	assert.Equal(t, entity.TemplateTechno, tpl)
	assert.Equal(t, "Techno", tpl.String())

	for _, bad := range []string{"", "techno", "Acme"} {
		_, err := entity.ParseTemplate(bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidTemplate)
		assert.Contains(t, err.Error(), "Invalid forCompany value")
	}
}

func TestPDFFilenames(t *testing.T) {
	inv := &entity.Invoice{InvoiceNumber: "INV-001"}
	assert.Equal(t, "Invoice_INV-001.pdf", inv.PDFFilename())

	po := &entity.PurchaseOrder{PONumber: "PO/2024/7"}
	assert.Equal(t, "PO-2024-7.pdf", po.PDFFilename())
	assert.Equal(t, "PurchaseOrder.pdf", (&entity.PurchaseOrder{}).PDFFilename())

	assert.Equal(t, "Quotation_Q-9.pdf", (&entity.Quotation{QuoteNo: "Q-9"}).PDFFilename())
	assert.Equal(t, "Quotation_T-55.pdf", (&entity.Quotation{TenderNumber: "T-55"}).PDFFilename())
	assert.Equal(t, "Quotation_draft.pdf", (&entity.Quotation{}).PDFFilename())
}

func TestTaxAmounts(t *testing.T) {
	q := &entity.Quotation{SubTotal: decimal.NewFromInt(200), Tax: decimal.RequireFromString("0.1")}
	assert.True(t, decimal.NewFromInt(20).Equal(q.TaxAmount()))

	inv := &entity.Invoice{Items: []entity.LineItem{
		{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(10), Tax: decimal.NewFromInt(3)},
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5), Tax: decimal.NewFromInt(1)},
	}}
	assert.True(t, decimal.NewFromInt(4).Equal(inv.DisplayTax()), "sin TaxAmount se suman los impuestos por ítem")
	assert.True(t, decimal.NewFromInt(23).Equal(inv.Items[0].AmountWithTax()))

	inv.TaxAmount = decimal.NewNullDecimal(decimal.NewFromInt(9))
	assert.True(t, decimal.NewFromInt(9).Equal(inv.DisplayTax()))
}

func TestInvoice_TaxAmountCeroExplícito(t *testing.T) {
	items := `"items":[{"qty":"1","unitPrice":"100","tax":"18"}]`

	var exento entity.Invoice
	require.NoError(t, json.Unmarshal([]byte(`{"taxAmount":0,`+items+`}`), &exento))
	assert.True(t, exento.TaxAmount.Valid)
	assert.True(t, exento.DisplayTax().IsZero(), "un 0 enviado no se reemplaza por la suma de ítems")

	var nulo entity.Invoice
	require.NoError(t, json.Unmarshal([]byte(`{"taxAmount":null,`+items+`}`), &nulo))
	assert.True(t, decimal.NewFromInt(18).Equal(nulo.DisplayTax()))

	var ausente entity.Invoice
	require.NoError(t, json.Unmarshal([]byte(`{`+items+`}`), &ausente))
	assert.False(t, ausente.TaxAmount.Valid)
	assert.True(t, decimal.NewFromInt(18).Equal(ausente.DisplayTax()))
}
