package repository

import (
	"context"

	"github.com/paktech/tender-docs/internal/domain/entity"
)

// DocumentRepository puerto de lectura de documentos ya calculados por el backend.
// Los Get devuelven (nil, nil) si el documento no existe.
type DocumentRepository interface {
	GetInvoice(ctx context.Context, id string) (*entity.Invoice, error)
	GetPurchaseOrder(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	GetQuotation(ctx context.Context, id string) (*entity.Quotation, error)
	// ListSummaries filas del listado de kind, más recientes primero.
	ListSummaries(ctx context.Context, kind entity.DocumentKind, limit, offset int) ([]entity.DocumentSummary, error)
}
