package documents

import (
	"context"

	"github.com/paktech/tender-docs/internal/domain/entity"
)

// Renderer genera el PDF de cada tipo de documento. Lo implementa *pdf.Generator.
type Renderer interface {
	RenderInvoice(ctx context.Context, inv *entity.Invoice) (*entity.RenderedPDF, error)
	RenderPurchaseOrder(ctx context.Context, po *entity.PurchaseOrder) (*entity.RenderedPDF, error)
	RenderQuotation(ctx context.Context, q *entity.Quotation) (*entity.RenderedPDF, error)
}

// RegisterRenderer genera el listado tabular de un tipo de documento.
type RegisterRenderer interface {
	Render(ctx context.Context, kind entity.DocumentKind, rows []entity.DocumentSummary) (*entity.RenderedPDF, error)
}

// Cache almacén de PDFs ya renderizados. Get devuelve found=false si no hay entrada.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, content []byte) error
}

// Archiver guarda una copia del PDF y devuelve su ubicación.
type Archiver interface {
	Archive(ctx context.Context, kind entity.DocumentKind, filename string, content []byte) (string, error)
}
