package documents

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/paktech/tender-docs/internal/domain"
	"github.com/paktech/tender-docs/internal/domain/entity"
	"github.com/paktech/tender-docs/internal/domain/repository"
	"github.com/paktech/tender-docs/pkg/logger"
)

// ErrArchive el PDF se generó pero no pudo archivarse.
var ErrArchive = errors.New("archivo del PDF falló")

var errNoRepository = errors.New("documents: repositorio no configurado")

// PDFUseCase renderiza facturas, órdenes de compra y cotizaciones.
// Cache y archivo son opcionales: nil los desactiva.
type PDFUseCase struct {
	repo     repository.DocumentRepository
	renderer Renderer
	cache    Cache
	archiver Archiver
	settings string
	log      *logger.Logger
}

// NewPDFUseCase construye el caso de uso. settings identifica la configuración de
// maquetación (márgenes, locale, emisor) y forma parte de la clave de caché.
func NewPDFUseCase(
	repo repository.DocumentRepository,
	renderer Renderer,
	cache Cache,
	archiver Archiver,
	settings string,
	log *logger.Logger,
) *PDFUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PDFUseCase{
		repo:     repo,
		renderer: renderer,
		cache:    cache,
		archiver: archiver,
		settings: settings,
		log:      log.Named("documents"),
	}
}

// ── Render desde el cuerpo ───────────────────────────────────────────────────

// RenderInvoice genera el PDF de una factura recibida completa.
func (uc *PDFUseCase) RenderInvoice(ctx context.Context, inv *entity.Invoice) (*entity.RenderedPDF, error) {
	return uc.render(ctx, entity.KindInvoice, inv, inv.PDFFilename(), func(ctx context.Context) (*entity.RenderedPDF, error) {
		return uc.renderer.RenderInvoice(ctx, inv)
	})
}

// RenderPurchaseOrder genera el PDF de una orden de compra.
func (uc *PDFUseCase) RenderPurchaseOrder(ctx context.Context, po *entity.PurchaseOrder) (*entity.RenderedPDF, error) {
	return uc.render(ctx, entity.KindPurchaseOrder, po, po.PDFFilename(), func(ctx context.Context) (*entity.RenderedPDF, error) {
		return uc.renderer.RenderPurchaseOrder(ctx, po)
	})
}

// RenderQuotation genera el PDF de una cotización con la plantilla de q.ForCompany.
func (uc *PDFUseCase) RenderQuotation(ctx context.Context, q *entity.Quotation) (*entity.RenderedPDF, error) {
	return uc.render(ctx, entity.KindQuotation, q, q.PDFFilename(), func(ctx context.Context) (*entity.RenderedPDF, error) {
		return uc.renderer.RenderQuotation(ctx, q)
	})
}

// ── Render por ID ────────────────────────────────────────────────────────────

// InvoicePDF carga la factura y la renderiza. domain.ErrNotFound si no existe.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, id string) (*entity.RenderedPDF, error) {
	if uc.repo == nil {
		return nil, errNoRepository
	}
	inv, err := uc.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.RenderInvoice(ctx, inv)
}

// PurchaseOrderPDF carga la orden de compra y la renderiza.
func (uc *PDFUseCase) PurchaseOrderPDF(ctx context.Context, id string) (*entity.RenderedPDF, error) {
	if uc.repo == nil {
		return nil, errNoRepository
	}
	po, err := uc.repo.GetPurchaseOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener orden de compra: %w", err)
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	return uc.RenderPurchaseOrder(ctx, po)
}

// QuotationPDF carga la cotización y la renderiza.
func (uc *PDFUseCase) QuotationPDF(ctx context.Context, id string) (*entity.RenderedPDF, error) {
	if uc.repo == nil {
		return nil, errNoRepository
	}
	q, err := uc.repo.GetQuotation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener cotización: %w", err)
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return uc.RenderQuotation(ctx, q)
}

// ── Flujo común ──────────────────────────────────────────────────────────────

// cachedPDF forma serializada en la caché.
type cachedPDF struct {
	Filename string `json:"filename"`
	Pages    int    `json:"pages"`
	Content  []byte `json:"content"`
}

// render caché → render → archivo → caché. Los errores de la caché solo se registran;
// un documento que no se pudo archivar no se cachea.
func (uc *PDFUseCase) render(
	ctx context.Context,
	kind entity.DocumentKind,
	doc any,
	filename string,
	fn func(ctx context.Context) (*entity.RenderedPDF, error),
) (*entity.RenderedPDF, error) {
	start := time.Now()

	key, err := cacheKey(kind, doc, uc.settings)
	if err != nil {
		return nil, fmt.Errorf("pdf: clave de caché: %w", err)
	}
	if hit := uc.lookup(ctx, key, filename); hit != nil {
		uc.log.Info().
			Str("kind", string(kind)).
			Str("filename", hit.Filename).
			Int("pages", hit.Pages).
			Bool("cached", true).
			Dur("duration", time.Since(start)).
			Msg("pdf servido desde caché")
		return hit, nil
	}

	res, err := fn(ctx)
	if err != nil {
		return nil, fmt.Errorf("pdf: generación fallida: %w", err)
	}

	if uc.archiver != nil {
		uri, err := uc.archiver.Archive(ctx, kind, res.Filename, res.Content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrArchive, res.Filename, err)
		}
		uc.log.Debug().Str("uri", uri).Msg("pdf archivado")
	}

	uc.store(ctx, key, res)

	uc.log.Info().
		Str("kind", string(kind)).
		Str("filename", res.Filename).
		Int("pages", res.Pages).
		Bool("cached", false).
		Dur("duration", time.Since(start)).
		Msg("pdf renderizado")
	return res, nil
}

func (uc *PDFUseCase) lookup(ctx context.Context, key, filename string) *entity.RenderedPDF {
	if uc.cache == nil {
		return nil
	}
	raw, found, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.log.Warn().Err(err).Msg("caché de PDF no disponible")
		return nil
	}
	if !found {
		return nil
	}
	var c cachedPDF
	if err := json.Unmarshal(raw, &c); err != nil || len(c.Content) == 0 {
		uc.log.Warn().Err(err).Str("filename", filename).Msg("entrada de caché corrupta, se regenera")
		return nil
	}
	return &entity.RenderedPDF{Filename: c.Filename, Content: c.Content, Pages: c.Pages, Cached: true}
}

func (uc *PDFUseCase) store(ctx context.Context, key string, res *entity.RenderedPDF) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(cachedPDF{Filename: res.Filename, Pages: res.Pages, Content: res.Content})
	if err == nil {
		err = uc.cache.Set(ctx, key, raw)
	}
	if err != nil {
		uc.log.Warn().Err(err).Str("filename", res.Filename).Msg("no se pudo cachear el PDF")
	}
}

// cacheKey SHA-256 del tipo, la configuración y el JSON del documento.
// encoding/json serializa los campos de un struct siempre en el mismo orden.
func cacheKey(kind entity.DocumentKind, doc any, settings string) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write([]byte(kind))
	h.Write([]byte{0})
	h.Write([]byte(settings))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil)), nil
}
