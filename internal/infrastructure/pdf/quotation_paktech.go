package pdf

import (
	"strings"

	"github.com/paktech/tender-docs/internal/domain/entity"
)

const (
	paktechHeader  = "PAKTECH ENGINEERING SERVICES"
	paktechSubhead = "QUOTATION"
	paktechBandH   = 76.0
)

// renderPaktech cotización formato carta: banda de color con la razón social,
// referencia y fecha, destinatario "Messrs.", asunto, tabla y condiciones comerciales.
func renderPaktech(j *job, q *entity.Quotation, issuer entity.Party) {
	l := j.cur.Layout()
	f := j.f

	// Banda superior a todo el ancho.
	j.cv.SetFillColor(j.theme.primary)
	j.cv.Rect(0, 0, l.PageWidth, paktechBandH, "F")
	j.cv.SetFont("B", 17)
	j.cv.SetTextColor(colorWhite)
	j.cv.Text(l.MarginLeft, j.cur.Y+12, paktechHeader)
	j.cv.SetFont("", 8)
	if lines := issuerLines(issuer); len(lines) > 0 {
		j.cv.Text(l.MarginLeft, j.cur.Y+26, strings.Join(lines, "  |  "))
	}
	j.cv.SetTextColor(colorBlack)
	j.logo(assetPaktechLogo, "", 10)
	j.cur.Y = paktechBandH + 24

	j.cv.SetFont("B", 13)
	j.cv.SetTextColor(j.theme.primary)
	j.cv.TextCenter(l.PageWidth/2, j.cur.Y, paktechSubhead)
	j.cv.SetTextColor(colorBlack)
	j.gap(bodyLine)

	j.cv.SetFont("", bodyFont)
	j.cv.Text(l.MarginLeft, j.cur.Y+bodyLine*0.8, "Ref: "+orNA(q.QuoteNo))
	j.cv.TextRight(l.Right(), j.cur.Y+bodyLine*0.8, "Date: "+f.Date(q.Date))
	j.gap(bodyLine)
	if q.TenderNumber != "" {
		j.textLine("Tender No: " + q.TenderNumber)
	}
	j.gap(bodyLine / 2)

	// Destinatario en formato carta.
	j.cv.SetFont("B", bodyFont)
	j.textLine("Messrs.")
	c := q.Customer
	for i, s := range []string{orNA(c.Name), orNA(c.Address), orNA(c.City), "Attn: " + orNA(c.ContactPerson)} {
		style := ""
		if i == 0 {
			style = "B"
		}
		j.cv.SetFont(style, bodyFont)
		for _, w := range j.cv.Wrap(s, l.PrintableWidth()/2) {
			j.textLine(w)
		}
	}
	j.gap(bodyLine / 2)

	j.cv.SetFont("B", bodyFont)
	for _, w := range j.cv.Wrap("Subject: "+orNA(q.Subject), l.PrintableWidth()) {
		j.textLine(w)
	}
	j.gap(bodyLine / 2)

	j.cv.SetFont("", bodyFont)
	intro := "Dear Sir, with reference to your above mentioned enquiry, we are pleased to quote our most competitive rates as under:"
	for _, w := range j.cv.Wrap(intro, l.PrintableWidth()) {
		j.textLine(w)
	}
	j.gap(bodyLine / 2)

	j.drawItems(q.Items, []itemField{
		sNoField(34),
		descriptionField("Item Description", 226.28),
		unitField(45),
		qtyField(f, 45),
		priceField(f, "Rate", 75),
		totalField(f, "Amount", 90, false),
	})

	lines := []totalLine{{"Sub Total", f.Currency(q.CurrencyUnit, q.SubTotal)}}
	if !q.Tax.IsZero() {
		lines = append(lines, totalLine{"GST @ " + f.Percent(q.Tax), f.Currency(q.CurrencyUnit, q.TaxAmount())})
	}
	j.drawTotals(lines, totalLine{"Total Amount", f.Currency(q.CurrencyUnit, q.GrandTotal)})

	j.drawTerms("Commercial Terms", []term{
		{"Validity:", q.Validity},
		{"Delivery:", q.DeliveryTerms},
		{"Payment:", q.PaymentTerms},
		{"Warranty:", q.Warranty},
		{"Remarks:", q.Notes},
	})

	j.cv.SetFont("", bodyFont)
	j.textLine("For " + paktechHeader)
	j.gap(4)
	j.drawSignature(issuer.ContactPerson)
}
