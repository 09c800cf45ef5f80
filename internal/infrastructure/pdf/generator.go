// Package pdf dibuja facturas, órdenes de compra y cotizaciones sobre go-pdf/fpdf
// con coordenadas explícitas y un cursor que decide los cortes de página.
//
// Layout común (A4, puntos):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título / razón social            │  logo           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: número, fecha, referencias (rejilla 2 × n)          │
//	│  CONTRAPARTES: Bill To / Vendor   │   Ship To               │
//	│  TABLA: S.No | Descripción | Qty | Precio | ... | Total     │
//	│                                   TOTALES: Subtotal/Tax/Total│
//	│  CONDICIONES (con "(cont.)" si corta página)                │
//	│  FIRMA (imagen o línea de firma)                            │
//	│                                        Page i of n  (pie)   │
//	└─────────────────────────────────────────────────────────────┘
//
// Las cotizaciones tienen dos plantillas independientes (Paktech y Techno)
// elegidas por el campo forCompany.
package pdf

import (
	"context"
	"fmt"

	"github.com/paktech/tender-docs/internal/domain/entity"
	"github.com/paktech/tender-docs/pkg/config"
	"github.com/paktech/tender-docs/pkg/logger"
)

// Options configuración del generador.
type Options struct {
	Locale   string
	Currency string  // moneda si el documento no trae currencyUnit
	Margins  Margins // márgenes inferiores por plantilla
	Compress bool
	Issuer   entity.Party // empresa emisora: encabezados y firma
}

// OptionsFromConfig opciones a partir de PDF_* y COMPANY_*.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Locale: cfg.PDF.Locale,
		Margins: Margins{
			Invoice:       cfg.PDF.BottomMarginInvoice,
			PurchaseOrder: cfg.PDF.BottomMarginPO,
			Paktech:       cfg.PDF.BottomMarginPaktech,
			Techno:        cfg.PDF.BottomMarginTechno,
		},
		Issuer: entity.Party{
			Name:    cfg.Company.Name,
			Address: cfg.Company.Address,
			City:    cfg.Company.City,
			Phone:   cfg.Company.Phone,
			Email:   cfg.Company.Email,
			TaxID:   cfg.Company.NTN,
		},
	}
}

// Generator renderiza documentos a PDF. Es seguro para uso concurrente:
// cada llamada construye su propio lienzo y cursor.
type Generator struct {
	assets *AssetLoader
	opts   Options
	f      Formatter
	log    *logger.Logger
}

// NewGenerator construye el generador. assets nil deja todas las imágenes en su texto alternativo.
func NewGenerator(assets *AssetLoader, opts Options, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	opts.Margins = opts.Margins.orDefault(DefaultMargins())
	return &Generator{
		assets: assets,
		opts:   opts,
		f:      NewFormatter(opts.Locale, opts.Currency),
		log:    log.Named("pdf"),
	}
}

// RenderInvoice genera el PDF de una factura.
func (g *Generator) RenderInvoice(ctx context.Context, inv *entity.Invoice) (*entity.RenderedPDF, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	j := g.newJob(g.opts.Margins.Invoice, "Invoice "+inv.InvoiceNumber, inv.Date, invoiceTheme)
	renderInvoice(j, inv, g.opts.Issuer)
	return g.finish(j, inv.PDFFilename())
}

// RenderPurchaseOrder genera el PDF de una orden de compra.
func (g *Generator) RenderPurchaseOrder(ctx context.Context, po *entity.PurchaseOrder) (*entity.RenderedPDF, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	j := g.newJob(g.opts.Margins.PurchaseOrder, "Purchase Order "+po.PONumber, po.Date, poTheme)
	renderPurchaseOrder(j, po, g.opts.Issuer)
	return g.finish(j, po.PDFFilename())
}

// RenderQuotation genera la cotización con la plantilla indicada por forCompany.
// Un forCompany desconocido devuelve domain.ErrInvalidTemplate sin dibujar nada.
func (g *Generator) RenderQuotation(ctx context.Context, q *entity.Quotation) (*entity.RenderedPDF, error) {
	tpl, r, err := selectQuotationTemplate(q.ForCompany)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	j := g.newJob(r.margin(g.opts.Margins), "Quotation "+q.QuoteNo, q.Date, r.theme)
	r.draw(j, q, g.opts.Issuer)
	g.log.Debug().Str("template", tpl.String()).Str("quote_no", q.QuoteNo).Msg("cotización dibujada")
	return g.finish(j, q.PDFFilename())
}

func (g *Generator) newJob(bottom float64, title, date string, th theme) *job {
	m := meta{
		Title:    title,
		Author:   g.opts.Issuer.Name,
		Date:     documentDate(date),
		Compress: g.opts.Compress,
	}
	return newJob(NewLayout(bottom), m, g.f, g.assets, g.log, th)
}

func (g *Generator) finish(j *job, filename string) (*entity.RenderedPDF, error) {
	pages := j.cv.PageCount()
	content, err := j.cv.Output()
	if err != nil {
		return nil, fmt.Errorf("pdf: %s: %w", filename, err)
	}
	return &entity.RenderedPDF{Filename: filename, Content: content, Pages: pages}, nil
}
