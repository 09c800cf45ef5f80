package pdf

import "github.com/paktech/tender-docs/internal/domain/entity"

const invoiceTitle = "INVOICE"

// renderInvoice factura: encabezado, datos, Bill To / Ship To, ítems con impuesto,
// totales, condiciones y firma.
func renderInvoice(j *job, inv *entity.Invoice, issuer entity.Party) {
	j.drawTitleHeader(invoiceTitle, issuer, assetLogo)

	j.drawInfoTable([]infoPair{
		{"Invoice No.", inv.InvoiceNumber},
		{"Date", j.f.Date(inv.Date)},
		{"Due Date", j.f.Date(inv.DueDate)},
		{"PO Number", inv.PONumber},
	})

	shipTo := inv.ShipTo
	if shipTo.IsZero() {
		shipTo = inv.Customer
	}
	j.drawPartyBoxes(
		partyBox{Title: "Bill To", Party: inv.Customer},
		partyBox{Title: "Ship To", Party: shipTo},
	)

	f := j.f
	j.drawItems(inv.Items, []itemField{
		sNoField(34),
		descriptionField("Description", 201.28),
		qtyField(f, 50),
		priceField(f, "Unit Price", 75),
		taxField(f, 65),
		totalField(f, "Total", 90, true),
	})

	j.drawTotals([]totalLine{
		{"Subtotal", f.Currency(inv.CurrencyUnit, inv.SubTotal)},
		{"Tax Amount", f.Currency(inv.CurrencyUnit, inv.DisplayTax())},
	}, totalLine{"Grand Total", f.Currency(inv.CurrencyUnit, inv.GrandTotal)})

	j.drawTerms("Payment Details", []term{
		{"Payment Terms:", inv.PaymentTerms},
		{"Bank Details:", inv.BankDetails},
		{"Notes:", inv.Notes},
	})

	j.drawSignature(issuer.Name)
}
