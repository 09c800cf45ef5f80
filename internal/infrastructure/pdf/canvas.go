package pdf

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

type rgb struct{ r, g, b int }

var (
	colorBlack = rgb{0, 0, 0}
	colorWhite = rgb{255, 255, 255}
	colorGray  = rgb{100, 100, 100}
	colorLight = rgb{235, 238, 242}
	colorRule  = rgb{180, 180, 180}
)

// meta metadatos del PDF. Date fija CreationDate/ModDate para que dos renders
// del mismo documento produzcan los mismos bytes.
type meta struct {
	Title    string
	Author   string
	Date     time.Time
	Compress bool
}

// Canvas lienzo de coordenadas explícitas sobre go-pdf/fpdf.
// Recibe texto UTF-8 y lo traduce a cp1252 para las fuentes core.
type Canvas struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	layout Layout
	size   float64
	style  string
}

func newCanvas(layout Layout, m meta) *Canvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetMargins(layout.MarginLeft, layout.TopMargin, layout.MarginRight)
	pdf.SetAutoPageBreak(false, layout.BottomMargin)
	pdf.SetCompression(m.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(m.Date)
	pdf.SetModificationDate(m.Date)
	pdf.SetTitle(m.Title, true)
	pdf.SetAuthor(m.Author, true)
	pdf.SetCreator("tender-docs", false)
	pdf.AliasNbPages("{nb}")

	c := &Canvas{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		layout: layout,
	}
	pdf.SetFooterFunc(c.footer)
	pdf.AddPage()
	c.SetFont("", 9)
	return c
}

// footer numeración dentro del margen inferior reservado.
func (c *Canvas) footer() {
	c.pdf.SetFont(fontFamily, "", 7.5)
	c.pdf.SetTextColor(colorGray.r, colorGray.g, colorGray.b)
	label := fmt.Sprintf("Page %d of {nb}", c.pdf.PageNo())
	y := c.layout.PageHeight - c.layout.BottomMargin/2
	c.pdf.Text(c.layout.Right()-c.pdf.GetStringWidth(label), y, label)
}

// AddPage nueva página con la fuente activa restaurada.
func (c *Canvas) AddPage() {
	c.pdf.AddPage()
	c.pdf.SetFont(fontFamily, c.style, c.size)
}

// PageNo página activa.
func (c *Canvas) PageNo() int { return c.pdf.PageNo() }

// PageCount total de páginas.
func (c *Canvas) PageCount() int { return c.pdf.PageCount() }

// SetFont cambia estilo ("", "B", "I") y tamaño.
func (c *Canvas) SetFont(style string, size float64) {
	c.style, c.size = style, size
	c.pdf.SetFont(fontFamily, style, size)
}

// FontSize tamaño activo.
func (c *Canvas) FontSize() float64 { return c.size }

func (c *Canvas) SetTextColor(col rgb) { c.pdf.SetTextColor(col.r, col.g, col.b) }
func (c *Canvas) SetFillColor(col rgb) { c.pdf.SetFillColor(col.r, col.g, col.b) }
func (c *Canvas) SetDrawColor(col rgb) { c.pdf.SetDrawColor(col.r, col.g, col.b) }

// Text escribe s con la línea base en (x, y).
func (c *Canvas) Text(x, y float64, s string) {
	if s == "" {
		return
	}
	c.pdf.Text(x, y, c.tr(s))
}

// TextRight alinea el final de s en xRight.
func (c *Canvas) TextRight(xRight, y float64, s string) {
	c.Text(xRight-c.Width(s), y, s)
}

// TextCenter centra s en xCenter.
func (c *Canvas) TextCenter(xCenter, y float64, s string) {
	c.Text(xCenter-c.Width(s)/2, y, s)
}

// Width ancho de s con la fuente activa.
func (c *Canvas) Width(s string) float64 {
	return c.pdf.GetStringWidth(c.tr(s))
}

// Rect style: "D" borde, "F" relleno, "FD" ambos.
func (c *Canvas) Rect(x, y, w, h float64, style string) {
	c.pdf.Rect(x, y, w, h, style)
}

// Line segmento con el color de trazo activo.
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

// Wrap parte s en líneas que caben en width con la fuente activa usando
// SplitLines de fpdf sobre el texto ya traducido a cp1252.
// Respeta los saltos de línea explícitos; una palabra más ancha que width se corta por caracteres.
func (c *Canvas) Wrap(s string, width float64) []string {
	runes := []rune(strings.ReplaceAll(s, "\r", ""))
	encoded := []byte(c.tr(string(runes)))
	// SplitLines descuenta el margen de celda y redondea hacia arriba el ancho útil.
	units := math.Floor(width * 1000 / c.size)
	split := c.pdf.SplitLines(encoded, (units-0.5)*c.size/1000+2*c.pdf.GetCellMargin())

	// cp1252 usa un byte por runa: el desplazamiento en bytes es el índice de runa.
	lines := make([]string, 0, len(split))
	pos := 0
	for _, line := range split {
		if !bytes.HasPrefix(encoded[pos:], line) && pos > 0 && bytes.HasPrefix(encoded[pos-1:], line) {
			pos--
		}
		lines = append(lines, string(runes[pos:pos+len(line)]))
		pos += len(line)
		if pos < len(encoded) && isBreak(encoded[pos]) {
			pos++
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

func isBreak(b byte) bool { return b == ' ' || b == '\t' || b == '\n' }

// DrawImage registra y dibuja img con ancho w; devuelve el alto dibujado.
// Un PNG que la librería no acepta se reporta como error y el documento sigue usable.
func (c *Canvas) DrawImage(img *Image, x, y, w float64) (float64, error) {
	if img == nil || img.Width == 0 || img.Height == 0 {
		return 0, fmt.Errorf("pdf: imagen vacía")
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.RegisterImageOptionsReader(img.Name, opts, bytes.NewReader(img.Data))
	if !c.pdf.Ok() {
		err := c.pdf.Error()
		c.pdf.ClearError()
		return 0, fmt.Errorf("pdf: registrar imagen %s: %w", img.Name, err)
	}
	h := w * float64(img.Height) / float64(img.Width)
	c.pdf.ImageOptions(img.Name, x, y, w, h, false, opts, 0, "")
	return h, nil
}

// Output cierra el documento y devuelve los bytes.
func (c *Canvas) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return buf.Bytes(), nil
}
