package pdf

import "github.com/paktech/tender-docs/internal/domain/entity"

const (
	technoHeader = "TECHNO ENGINEERING & TRADING"
	technoTitle  = "QUOTATION"
)

// renderTechno cotización formato ficha: encabezado con logo, tabla de datos,
// cuadros cliente/emisor, ítems con total por línea y términos.
func renderTechno(j *job, q *entity.Quotation, issuer entity.Party) {
	l := j.cur.Layout()
	f := j.f

	top := j.cur.Y
	j.cv.SetFont("B", 16)
	j.cv.SetTextColor(j.theme.primary)
	j.cv.Text(l.MarginLeft, top+14, technoHeader)
	j.cv.SetFont("", 8)
	j.cv.SetTextColor(colorGray)
	y := top + 28
	for _, s := range issuerLines(issuer) {
		j.cv.Text(l.MarginLeft, y, s)
		y += 10
	}
	j.cv.SetTextColor(colorBlack)
	j.logo(assetTechnoLogo, technoHeader, top)

	j.cur.Y = max(y, top+60)
	j.cv.SetFillColor(j.theme.primary)
	j.cv.Rect(l.MarginLeft, j.cur.Y, l.PrintableWidth(), 20, "F")
	j.cv.SetFont("B", 12)
	j.cv.SetTextColor(colorWhite)
	j.cv.TextCenter(l.PageWidth/2, j.cur.Y+14, technoTitle)
	j.cv.SetTextColor(colorBlack)
	j.gap(20 + sectionGap)

	j.drawInfoTable([]infoPair{
		{"Quote No.", q.QuoteNo},
		{"Date", f.Date(q.Date)},
		{"Tender No.", q.TenderNumber},
		{"Valid Until", q.Validity},
		{"Subject", q.Subject},
		{"Currency", q.CurrencyUnit},
	})

	from := issuer
	if from.Name == "" {
		from.Name = technoHeader
	}
	j.drawPartyBoxes(
		partyBox{Title: "Quotation For", Party: q.Customer},
		partyBox{Title: "Quotation From", Party: from},
	)

	j.drawItems(q.Items, []itemField{
		sNoField(34),
		descriptionField("Description", 241.28),
		qtyField(f, 50),
		priceField(f, "Unit Price", 90),
		totalField(f, "Total", 100, false),
	})

	j.drawTotals([]totalLine{
		{"Subtotal", f.Currency(q.CurrencyUnit, q.SubTotal)},
		{"Tax (" + f.Percent(q.Tax) + ")", f.Currency(q.CurrencyUnit, q.TaxAmount())},
	}, totalLine{"Grand Total", f.Currency(q.CurrencyUnit, q.GrandTotal)})

	j.drawTerms("Terms & Conditions", []term{
		{"Validity:", q.Validity},
		{"Delivery Terms:", q.DeliveryTerms},
		{"Payment Terms:", q.PaymentTerms},
		{"Warranty:", q.Warranty},
		{"Notes:", q.Notes},
	})

	j.drawSignature(from.Name)
}
