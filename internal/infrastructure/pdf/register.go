package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/paktech/tender-docs/internal/domain/entity"
)

// ── Paleta del registro ───────────────────────────────────────────────────────

var (
	registerPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	registerGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	registerWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	registerStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// RegisterRenderer listado tabular de documentos (vista de lista exportada) con Maroto v2.
// A diferencia de los documentos, es una rejilla sin posicionamiento manual.
type RegisterRenderer struct {
	f      Formatter
	issuer string
}

// NewRegisterRenderer construye el renderer del registro.
func NewRegisterRenderer(opts Options) *RegisterRenderer {
	return &RegisterRenderer{f: NewFormatter(opts.Locale, opts.Currency), issuer: opts.Issuer.Name}
}

// Render genera el registro de kind con las filas recibidas, en su orden.
func (r *RegisterRenderer) Render(_ context.Context, kind entity.DocumentKind, rows []entity.DocumentSummary) (*entity.RenderedPDF, error) {
	title := kind.Title() + " Register"
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(r.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(registerHeaderRow(title, r.issuer, len(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: registerPrimary, Thickness: 0.5}))
	m.AddRows(registerColumnsRow())
	for i, s := range rows {
		m.AddRows(r.registerRow(i, s))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: registerPrimary, Thickness: 0.3}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar registro: %w", err)
	}
	return &entity.RenderedPDF{
		Filename: string(kind) + "_register.pdf",
		Content:  doc.GetBytes(),
		Pages:    countPages(doc.GetBytes()),
	}, nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func registerHeaderRow(title, issuer string, count int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: registerPrimary, Top: 1,
			}),
			text.New(nonEmpty(issuer, "-"), props.Text{
				Size: 8, Top: 9, Color: registerGray,
			}),
		),
		col.New(4).Add(
			text.New(strconv.Itoa(count)+" documents", props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: registerGray,
			}),
		),
	)
}

// registerColumnsRow cabecera de la rejilla con fondo del color principal.
func registerColumnsRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: registerWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Number", 2, align.Left),
		h("Date", 2, align.Center),
		h("Counterparty", 4, align.Left),
		h("Status", 1, align.Center),
		h("Grand Total", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: registerPrimary})
}

func (r *RegisterRenderer) registerRow(i int, s entity.DocumentSummary) core.Row {
	cell := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{
			Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	rw := row.New(7).Add(
		cell(strconv.Itoa(i+1), 1, align.Center),
		cell(nonEmpty(s.Number, notAvailable), 2, align.Left),
		cell(r.f.Date(s.Date), 2, align.Center),
		cell(nonEmpty(s.Counterparty, notAvailable), 4, align.Left),
		cell(nonEmpty(s.Status, "-"), 1, align.Center),
		cell(r.f.Currency(s.CurrencyUnit, s.GrandTotal), 2, align.Right),
	)
	if i%2 == 1 {
		rw.WithStyle(&props.Cell{BackgroundColor: registerStripe})
	}
	return rw
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// countPages cuenta los objetos /Page del documento; los diccionarios de página no van comprimidos.
func countPages(content []byte) int {
	return bytes.Count(content, []byte("/Type /Page\n"))
}
