package pdf

import (
	"strconv"
	"strings"

	"github.com/paktech/tender-docs/internal/domain/entity"
	"github.com/paktech/tender-docs/internal/infrastructure/pdf/richtext"
)

// Align alineación horizontal de una columna.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Column definición de columna: cabecera, ancho y alineación.
type Column struct {
	Header string
	Width  float64
	Align  Align
}

// TableStyle tipografía y colores de la tabla.
type TableStyle struct {
	FontSize   float64
	LineHeight float64
	Padding    float64
	HeaderFill rgb
	HeaderText rgb
	Border     rgb
}

func defaultTableStyle(header rgb) TableStyle {
	return TableStyle{
		FontSize:   8.5,
		LineHeight: 11,
		Padding:    4,
		HeaderFill: header,
		HeaderText: colorWhite,
		Border:     colorRule,
	}
}

// Table tabla con paginación propia: si una fila no cabe, se corta página,
// se repite la cabecera y sigue el cuerpo.
type Table struct {
	Columns []Column
	Rows    [][]string
	Style   TableStyle
	// OnPage se invoca al terminar cada página de la tabla con la Y final de esa página.
	OnPage func(page int, y float64)
}

// TableResult métricas del dibujo, útiles para las secciones posteriores.
type TableResult struct {
	BodyRows   int
	HeaderRows int
	Pages      int
	FinalY     float64
}

type cellLine struct {
	text string
	bold bool
}

// Draw dibuja la tabla desde cur.Y. No valida filas: una fila vacía se dibuja vacía.
// Una fila más alta que una página completa se reparte por líneas entre páginas,
// con la cabecera repetida en cada una.
func (t *Table) Draw(cv *Canvas, cur *Cursor) TableResult {
	var res TableResult
	headerH := t.Style.LineHeight + 2*t.Style.Padding
	lay := cur.Layout()
	freshAvail := lay.ContentMaxY() - lay.TopMargin - headerH

	prepared := make([][][]cellLine, len(t.Rows))
	heights := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		prepared[i], heights[i] = t.prepareRow(cv, row)
	}

	first := t.Style.LineHeight + 2*t.Style.Padding
	if len(heights) > 0 && heights[0] <= freshAvail+epsilon {
		first = heights[0]
	}
	cur.Reserve(headerH + first)
	startPage := cur.Page()
	t.drawHeader(cv, cur, headerH)
	res.HeaderRows++

	for i, cells := range prepared {
		h := heights[i]
		switch {
		case h > freshAvail+epsilon:
			res.HeaderRows += t.drawSplitRow(cv, cur, cells, headerH)
		default:
			if !cur.Fits(h) {
				t.breakPage(cv, cur, headerH)
				res.HeaderRows++
			}
			t.drawRow(cv, cur.Y, h, cells)
			cur.Advance(h)
		}
		res.BodyRows++
	}
	t.pageDone(cur)

	res.Pages = cur.Page() - startPage + 1
	res.FinalY = cur.Y
	return res
}

// drawSplitRow dibuja la fila en tramos de las líneas que caben en cada página.
// Devuelve cuántas cabeceras añadió.
func (t *Table) drawSplitRow(cv *Canvas, cur *Cursor, cells [][]cellLine, headerH float64) int {
	st := t.Style
	fresh := cur.Layout().TopMargin + headerH
	headers := 0
	total := rowLines(cells)
	for from := 0; from < total; {
		fit := int((cur.Remaining() - 2*st.Padding + epsilon) / st.LineHeight)
		if fit < 1 {
			if cur.Y > fresh+epsilon {
				t.breakPage(cv, cur, headerH)
				headers++
				continue
			}
			fit = 1
		}
		to := min(from+fit, total)
		h := float64(to-from)*st.LineHeight + 2*st.Padding
		t.drawRow(cv, cur.Y, h, sliceLines(cells, from, to))
		cur.Advance(h)
		from = to
		if from < total {
			t.breakPage(cv, cur, headerH)
			headers++
		}
	}
	return headers
}

// breakPage cierra la página actual y abre otra con la cabecera.
func (t *Table) breakPage(cv *Canvas, cur *Cursor, headerH float64) {
	t.pageDone(cur)
	cur.NewPage()
	t.drawHeader(cv, cur, headerH)
}

func rowLines(cells [][]cellLine) int {
	n := 1
	for _, c := range cells {
		n = max(n, len(c))
	}
	return n
}

// sliceLines tramo [from, to) de cada celda; las celdas más cortas quedan vacías.
func sliceLines(cells [][]cellLine, from, to int) [][]cellLine {
	out := make([][]cellLine, len(cells))
	for ci, c := range cells {
		if from < len(c) {
			out[ci] = c[from:min(to, len(c))]
		}
	}
	return out
}

func (t *Table) pageDone(cur *Cursor) {
	if t.OnPage != nil {
		t.OnPage(cur.Page(), cur.Y)
	}
}

func (t *Table) drawHeader(cv *Canvas, cur *Cursor, h float64) {
	st := t.Style
	cv.SetFont("B", st.FontSize)
	cv.SetFillColor(st.HeaderFill)
	cv.SetDrawColor(st.Border)
	x := cur.Layout().MarginLeft
	for _, col := range t.Columns {
		cv.Rect(x, cur.Y, col.Width, h, "FD")
		cv.SetTextColor(st.HeaderText)
		t.alignedText(cv, col, x, cur.Y+st.Padding+st.LineHeight*0.8, col.Header)
		x += col.Width
	}
	cv.SetTextColor(colorBlack)
	cur.Advance(h)
}

// prepareRow parte cada celda en líneas (respetando "\n" y los marcadores **) y calcula el alto.
func (t *Table) prepareRow(cv *Canvas, row []string) ([][]cellLine, float64) {
	st := t.Style
	cells := make([][]cellLine, len(t.Columns))
	maxLines := 1
	for ci, col := range t.Columns {
		if ci >= len(row) {
			continue
		}
		inner := col.Width - 2*st.Padding
		for _, raw := range strings.Split(row[ci], "\n") {
			text, bold := richtext.Bold(raw)
			style := ""
			if bold {
				style = "B"
			}
			cv.SetFont(style, st.FontSize)
			for _, l := range cv.Wrap(text, inner) {
				cells[ci] = append(cells[ci], cellLine{text: l, bold: bold})
			}
		}
		if len(cells[ci]) > maxLines {
			maxLines = len(cells[ci])
		}
	}
	cv.SetFont("", st.FontSize)
	return cells, float64(maxLines)*st.LineHeight + 2*st.Padding
}

func (t *Table) drawRow(cv *Canvas, y, h float64, cells [][]cellLine) {
	st := t.Style
	cv.SetDrawColor(st.Border)
	cv.SetTextColor(colorBlack)
	x := cv.layout.MarginLeft
	for ci, col := range t.Columns {
		cv.Rect(x, y, col.Width, h, "D")
		for li, line := range cells[ci] {
			style := ""
			if line.bold {
				style = "B"
			}
			cv.SetFont(style, st.FontSize)
			baseline := y + st.Padding + float64(li)*st.LineHeight + st.LineHeight*0.8
			t.alignedText(cv, col, x, baseline, line.text)
		}
		x += col.Width
	}
	cv.SetFont("", st.FontSize)
}

func (t *Table) alignedText(cv *Canvas, col Column, x, baseline float64, s string) {
	pad := t.Style.Padding
	switch col.Align {
	case AlignRight:
		cv.TextRight(x+col.Width-pad, baseline, s)
	case AlignCenter:
		cv.TextCenter(x+col.Width/2, baseline, s)
	default:
		cv.Text(x+pad, baseline, s)
	}
}

// ── Tabla de ítems ────────────────────────────────────────────────────────────

// itemField una columna de la tabla de ítems: su definición y cómo obtener el valor.
type itemField struct {
	Column
	value func(entity.LineItem) string
}

func sNoField(width float64) itemField {
	return itemField{Column{"S.No", width, AlignCenter}, func(it entity.LineItem) string {
		return strconv.Itoa(it.SNo)
	}}
}

func descriptionField(header string, width float64) itemField {
	return itemField{Column{header, width, AlignLeft}, func(it entity.LineItem) string {
		return richtext.Flatten(it.Description)
	}}
}

func unitField(width float64) itemField {
	return itemField{Column{"Unit", width, AlignCenter}, func(it entity.LineItem) string {
		return it.Unit
	}}
}

func qtyField(f Formatter, width float64) itemField {
	return itemField{Column{"Qty", width, AlignCenter}, func(it entity.LineItem) string {
		return f.Amount(it.Quantity)
	}}
}

func priceField(f Formatter, header string, width float64) itemField {
	return itemField{Column{header, width, AlignRight}, func(it entity.LineItem) string {
		return f.Amount(it.UnitPrice)
	}}
}

func taxField(f Formatter, width float64) itemField {
	return itemField{Column{"Tax", width, AlignRight}, func(it entity.LineItem) string {
		return f.Amount(it.Tax)
	}}
}

func totalField(f Formatter, header string, width float64, withTax bool) itemField {
	return itemField{Column{header, width, AlignRight}, func(it entity.LineItem) string {
		if withTax {
			return f.Amount(it.AmountWithTax())
		}
		return f.Amount(it.Amount())
	}}
}

// lineItemTable arma la tabla: una fila por ítem, en el orden recibido.
func lineItemTable(items []entity.LineItem, fields []itemField, style TableStyle) *Table {
	t := &Table{Style: style}
	for _, f := range fields {
		t.Columns = append(t.Columns, f.Column)
	}
	t.Rows = make([][]string, 0, len(items))
	for _, it := range items {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = f.value(it)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
