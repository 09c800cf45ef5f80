package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/paktech/tender-docs/internal/domain"
	"github.com/paktech/tender-docs/internal/domain/entity"
	"github.com/paktech/tender-docs/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo lecturas de facturas, órdenes de compra, cotizaciones y licitaciones.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// GetInvoice obtiene una factura completa por ID.
func (r *DocumentRepo) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	const query = `
		SELECT id::TEXT, invoice_number, date, due_date, po_number,
		       customer, ship_to, items,
		       sub_total, tax_amount, grand_total, currency_unit,
		       payment_terms, bank_details, notes
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	var date, due *time.Time
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.InvoiceNumber, &date, &due, &inv.PONumber,
		&inv.Customer, &inv.ShipTo, &inv.Items,
		&inv.SubTotal, &inv.TaxAmount, &inv.GrandTotal, &inv.CurrencyUnit,
		&inv.PaymentTerms, &inv.BankDetails, &inv.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.Date, inv.DueDate = formatDate(date), formatDate(due)
	return &inv, nil
}

// GetPurchaseOrder obtiene una orden de compra por ID.
func (r *DocumentRepo) GetPurchaseOrder(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	const query = `
		SELECT id::TEXT, po_number, date, delivery_date, tender_number,
		       vendor, ship_to, items,
		       sub_total, tax, grand_total, currency_unit,
		       payment_terms, delivery_terms, warranty, notes
		FROM purchase_orders WHERE id = $1`
	var po entity.PurchaseOrder
	var date, delivery *time.Time
	err := r.q.QueryRow(ctx, query, id).Scan(
		&po.ID, &po.PONumber, &date, &delivery, &po.TenderNumber,
		&po.Vendor, &po.ShipTo, &po.Items,
		&po.SubTotal, &po.TaxRate, &po.GrandTotal, &po.CurrencyUnit,
		&po.PaymentTerms, &po.DeliveryTerms, &po.Warranty, &po.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	po.Date, po.DeliveryDate = formatDate(date), formatDate(delivery)
	return &po, nil
}

// GetQuotation obtiene una cotización por ID.
func (r *DocumentRepo) GetQuotation(ctx context.Context, id string) (*entity.Quotation, error) {
	const query = `
		SELECT id::TEXT, quote_no, date, for_company, tender_number, subject,
		       customer, items,
		       tax, sub_total, grand_total, currency_unit,
		       validity, delivery_terms, payment_terms, warranty, notes
		FROM quotations WHERE id = $1`
	var q entity.Quotation
	var date *time.Time
	err := r.q.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.QuoteNo, &date, &q.ForCompany, &q.TenderNumber, &q.Subject,
		&q.Customer, &q.Items,
		&q.Tax, &q.SubTotal, &q.GrandTotal, &q.CurrencyUnit,
		&q.Validity, &q.DeliveryTerms, &q.PaymentTerms, &q.Warranty, &q.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	q.Date = formatDate(date)
	return &q, nil
}

// summaryQueries columnas comunes del listado por tipo de documento:
// id, número, fecha, contraparte, estado, moneda, total.
var summaryQueries = map[entity.DocumentKind]string{
	entity.KindInvoice: `
		SELECT id::TEXT, invoice_number, date, COALESCE(customer->>'name', ''), status, currency_unit, grand_total
		FROM invoices ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
	entity.KindPurchaseOrder: `
		SELECT id::TEXT, po_number, date, COALESCE(vendor->>'name', ''), status, currency_unit, grand_total
		FROM purchase_orders ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
	entity.KindQuotation: `
		SELECT id::TEXT, quote_no, date, COALESCE(customer->>'name', ''), status, currency_unit, grand_total
		FROM quotations ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
	entity.KindTender: `
		SELECT id::TEXT, tender_number, date, organization, status, currency_unit, estimated_value
		FROM tenders ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
}

// ListSummaries filas del listado de kind, paginadas.
func (r *DocumentRepo) ListSummaries(ctx context.Context, kind entity.DocumentKind, limit, offset int) ([]entity.DocumentSummary, error) {
	query, ok := summaryQueries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, kind)
	}
	limit, offset = pageBounds(limit, offset)

	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	var out []entity.DocumentSummary
	for rows.Next() {
		var s entity.DocumentSummary
		var date *time.Time
		if err := rows.Scan(&s.ID, &s.Number, &date, &s.Counterparty, &s.Status, &s.CurrencyUnit, &s.GrandTotal); err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		s.Date = formatDate(date)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return out, nil
}
