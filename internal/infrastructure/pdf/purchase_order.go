package pdf

import "github.com/paktech/tender-docs/internal/domain/entity"

const purchaseOrderTitle = "PURCHASE ORDER"

// renderPurchaseOrder orden de compra: el destino por defecto es el propio emisor.
func renderPurchaseOrder(j *job, po *entity.PurchaseOrder, issuer entity.Party) {
	j.drawTitleHeader(purchaseOrderTitle, issuer, assetLogo)

	j.drawInfoTable([]infoPair{
		{"PO Number", po.PONumber},
		{"Date", j.f.Date(po.Date)},
		{"Delivery Date", j.f.Date(po.DeliveryDate)},
		{"Tender No.", po.TenderNumber},
	})

	shipTo := po.ShipTo
	if shipTo.IsZero() {
		shipTo = issuer
	}
	j.drawPartyBoxes(
		partyBox{Title: "Vendor", Party: po.Vendor},
		partyBox{Title: "Ship To", Party: shipTo},
	)

	f := j.f
	j.drawItems(po.Items, []itemField{
		sNoField(34),
		descriptionField("Description", 211.28),
		unitField(50),
		qtyField(f, 50),
		priceField(f, "Unit Price", 75),
		totalField(f, "Amount", 95, false),
	})

	lines := []totalLine{{"Subtotal", f.Currency(po.CurrencyUnit, po.SubTotal)}}
	if !po.TaxRate.IsZero() {
		lines = append(lines, totalLine{
			"Tax (" + f.Percent(po.TaxRate) + ")",
			f.Currency(po.CurrencyUnit, po.TaxAmount()),
		})
	}
	j.drawTotals(lines, totalLine{"Grand Total", f.Currency(po.CurrencyUnit, po.GrandTotal)})

	j.drawTerms("Terms & Conditions", []term{
		{"Payment Terms:", po.PaymentTerms},
		{"Delivery Terms:", po.DeliveryTerms},
		{"Warranty:", po.Warranty},
		{"Notes:", po.Notes},
	})

	j.drawSignature(issuer.Name)
}
