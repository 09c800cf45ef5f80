package pdf

import (
	"strings"

	"github.com/paktech/tender-docs/internal/domain/entity"
	"github.com/paktech/tender-docs/pkg/logger"
)

const (
	signatureFallback = "Authorized Signature: ___________________"
	contSuffix        = " (cont.)"

	bodyFont    = 9.0
	bodyLine    = 12.0
	sectionGap  = 12.0
	boxPadding  = 6.0
	boxGap      = 12.0
	totalsWidth = 230.0
	totalsRowH  = 16.0
	signatureW  = 110.0
)

// theme colores de una plantilla impresa.
type theme struct {
	primary rgb
	soft    rgb
}

var (
	invoiceTheme = theme{primary: rgb{0, 70, 127}, soft: rgb{232, 240, 248}}
	poTheme      = theme{primary: rgb{33, 87, 50}, soft: rgb{233, 243, 236}}
	paktechTheme = theme{primary: rgb{0, 82, 155}, soft: rgb{230, 238, 247}}
	technoTheme  = theme{primary: rgb{160, 30, 35}, soft: rgb{248, 234, 234}}
)

// job estado de un render: lienzo, cursor y dependencias. Vive lo que dura una llamada.
type job struct {
	cv     *Canvas
	cur    *Cursor
	f      Formatter
	assets *AssetLoader
	log    *logger.Logger
	theme  theme
}

func newJob(layout Layout, m meta, f Formatter, assets *AssetLoader, log *logger.Logger, th theme) *job {
	cv := newCanvas(layout, m)
	return &job{
		cv:     cv,
		cur:    NewCursor(layout, cv),
		f:      f,
		assets: assets,
		log:    log,
		theme:  th,
	}
}

func (j *job) gap(h float64) { j.cur.Advance(h) }

// textLine una línea de cuerpo en el margen izquierdo; corta página si no cabe.
func (j *job) textLine(s string) {
	j.cur.Reserve(bodyLine)
	j.cv.Text(j.cur.Layout().MarginLeft, j.cur.Y+bodyLine*0.8, s)
	j.gap(bodyLine)
}

// ── Imágenes ──────────────────────────────────────────────────────────────────

// image dibuja el asset name con ancho w. Si no se puede cargar devuelve false
// y el llamador dibuja su texto alternativo.
func (j *job) image(name string, x, y, w float64) (float64, bool) {
	img, err := j.assets.Load(name)
	if err == nil {
		var h float64
		if h, err = j.cv.DrawImage(img, x, y, w); err == nil {
			return h, true
		}
	}
	j.log.Warn().Err(err).Str("asset", name).Msg("imagen no disponible, se usa texto alternativo")
	return 0, false
}

// logo dibuja el logo a la derecha del encabezado; sin imagen escribe el nombre.
func (j *job) logo(name, fallback string, y float64) {
	const w = 90.0
	l := j.cur.Layout()
	if _, ok := j.image(name, l.Right()-w, y, w); ok {
		return
	}
	j.cv.SetFont("B", 11)
	j.cv.SetTextColor(j.theme.primary)
	j.cv.TextRight(l.Right(), y+12, fallback)
	j.cv.SetTextColor(colorBlack)
}

// ── Encabezado ────────────────────────────────────────────────────────────────

// drawTitleHeader título a la izquierda, datos del emisor debajo y logo a la derecha.
// El título es el primer texto de la página.
func (j *job) drawTitleHeader(title string, issuer entity.Party, logo string) {
	l := j.cur.Layout()
	top := j.cur.Y

	j.cv.SetFont("B", 18)
	j.cv.SetTextColor(j.theme.primary)
	j.cv.Text(l.MarginLeft, top+16, title)

	y := top + 32
	j.cv.SetTextColor(colorGray)
	if issuer.Name != "" {
		j.cv.SetFont("B", bodyFont)
		j.cv.Text(l.MarginLeft, y, issuer.Name)
		y += bodyLine
	}
	j.cv.SetFont("", 8)
	for _, s := range issuerLines(issuer) {
		j.cv.Text(l.MarginLeft, y, s)
		y += 10
	}
	j.cv.SetTextColor(colorBlack)

	j.logo(logo, issuer.Name, top)

	bottom := max(y, top+64)
	j.cv.SetDrawColor(j.theme.primary)
	j.cv.Line(l.MarginLeft, bottom, l.Right(), bottom)
	j.cur.Y = bottom + sectionGap
}

// issuerLines dirección y contacto del emisor; omite lo que no esté configurado.
func issuerLines(p entity.Party) []string {
	var out []string
	addr := strings.TrimSpace(strings.Join(nonBlank(p.Address, p.City), ", "))
	if addr != "" {
		out = append(out, addr)
	}
	contact := strings.Join(nonBlank(prefixed("Tel: ", p.Phone), prefixed("Email: ", p.Email)), "   ")
	if contact != "" {
		out = append(out, contact)
	}
	if p.TaxID != "" {
		out = append(out, "NTN: "+p.TaxID)
	}
	return out
}

func prefixed(prefix, s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return prefix + strings.TrimSpace(s)
}

func nonBlank(ss ...string) []string {
	var out []string
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

// ── Cuadros de contraparte ────────────────────────────────────────────────────

// partyBox título + contraparte de uno de los dos cuadros.
type partyBox struct {
	Title string
	Party entity.Party
}

// partyLines líneas del cuadro; todo campo ausente se muestra como "N/A".
func partyLines(p entity.Party) []string {
	return []string{
		orNA(p.Name),
		"Contact: " + orNA(p.ContactPerson),
		"Address: " + orNA(p.Address),
		"City: " + orNA(p.City),
		"Phone: " + orNA(p.Phone),
		"Email: " + orNA(p.Email),
		"NTN: " + orNA(p.TaxID),
	}
}

// drawPartyBoxes dos cuadros lado a lado desde el mismo Y, cada uno con su propio alto.
// El cursor queda bajo el más alto.
func (j *job) drawPartyBoxes(left, right partyBox) {
	l := j.cur.Layout()
	w := (l.PrintableWidth() - boxGap) / 2
	titleH := bodyLine + 4

	wrapped := [2][]string{}
	heights := [2]float64{}
	nameLines := [2]int{}
	for i, b := range []partyBox{left, right} {
		for li, s := range partyLines(b.Party) {
			style := ""
			if li == 0 {
				style = "B"
			}
			j.cv.SetFont(style, bodyFont)
			wrapped[i] = append(wrapped[i], j.cv.Wrap(s, w-2*boxPadding)...)
			if li == 0 {
				nameLines[i] = len(wrapped[i])
			}
		}
		heights[i] = titleH + float64(len(wrapped[i]))*bodyLine + 2*boxPadding
	}

	j.cur.Reserve(max(heights[0], heights[1]))
	top := j.cur.Y
	for i, b := range []partyBox{left, right} {
		x := l.MarginLeft + float64(i)*(w+boxGap)
		j.cv.SetFillColor(j.theme.primary)
		j.cv.Rect(x, top, w, titleH, "F")
		j.cv.SetFont("B", bodyFont)
		j.cv.SetTextColor(colorWhite)
		j.cv.Text(x+boxPadding, top+titleH-4.5, b.Title)
		j.cv.SetTextColor(colorBlack)

		j.cv.SetDrawColor(colorRule)
		j.cv.Rect(x, top, w, heights[i], "D")
		y := top + titleH + boxPadding
		for li, s := range wrapped[i] {
			style := ""
			if li < nameLines[i] {
				style = "B"
			}
			j.cv.SetFont(style, bodyFont)
			j.cv.Text(x+boxPadding, y+bodyLine*0.8, s)
			y += bodyLine
		}
	}
	j.cv.SetFont("", bodyFont)
	j.cur.Y = top + max(heights[0], heights[1]) + sectionGap
}

// ── Tabla de datos del documento ──────────────────────────────────────────────

// infoPair una celda etiqueta/valor de la tabla de datos.
type infoPair struct {
	Label string
	Value string
}

// drawInfoTable rejilla de dos pares por fila: etiqueta sombreada y valor.
func (j *job) drawInfoTable(pairs []infoPair) {
	l := j.cur.Layout()
	pairW := l.PrintableWidth() / 2
	labelW := pairW * 0.4
	valueW := pairW - labelW
	const pad = 4.0

	for i := 0; i < len(pairs); i += 2 {
		row := pairs[i:min(i+2, len(pairs))]
		lines := make([][]string, len(row))
		h := bodyLine + 2*pad
		for k, p := range row {
			j.cv.SetFont("", bodyFont)
			lines[k] = j.cv.Wrap(orNA(p.Value), valueW-2*pad)
			h = max(h, float64(len(lines[k]))*bodyLine+2*pad)
		}
		j.cur.Reserve(h)
		for k, p := range row {
			x := l.MarginLeft + float64(k)*pairW
			j.cv.SetFillColor(j.theme.soft)
			j.cv.SetDrawColor(colorRule)
			j.cv.Rect(x, j.cur.Y, labelW, h, "FD")
			j.cv.Rect(x+labelW, j.cur.Y, valueW, h, "D")
			j.cv.SetFont("B", bodyFont)
			j.cv.Text(x+pad, j.cur.Y+pad+bodyLine*0.8, p.Label)
			j.cv.SetFont("", bodyFont)
			for li, s := range lines[k] {
				j.cv.Text(x+labelW+pad, j.cur.Y+pad+float64(li)*bodyLine+bodyLine*0.8, s)
			}
		}
		j.cur.Advance(h)
	}
	j.gap(sectionGap)
}

// ── Ítems ─────────────────────────────────────────────────────────────────────

// drawItems tabla de ítems; el cursor continúa donde terminó la última página de la tabla.
func (j *job) drawItems(items []entity.LineItem, fields []itemField) TableResult {
	t := lineItemTable(items, fields, defaultTableStyle(j.theme.primary))
	lastY := j.cur.Y
	t.OnPage = func(_ int, y float64) { lastY = y }
	res := t.Draw(j.cv, j.cur)
	j.cur.Y = lastY + sectionGap
	return res
}

// ── Totales ───────────────────────────────────────────────────────────────────

// totalLine una fila del bloque de totales.
type totalLine struct {
	Label string
	Value string
}

// drawTotals Subtotal, impuesto (si aplica) y Total; alineados al margen derecho.
// El bloque no se parte entre páginas.
func (j *job) drawTotals(lines []totalLine, grand totalLine) {
	l := j.cur.Layout()
	x := l.Right() - totalsWidth
	const pad = 6.0

	j.cur.Reserve(float64(len(lines)+1) * totalsRowH)
	j.cv.SetDrawColor(colorRule)
	for _, tl := range lines {
		j.cv.Rect(x, j.cur.Y, totalsWidth, totalsRowH, "D")
		j.cv.SetFont("B", bodyFont)
		j.cv.Text(x+pad, j.cur.Y+11, tl.Label)
		j.cv.SetFont("", bodyFont)
		j.cv.TextRight(l.Right()-pad, j.cur.Y+11, tl.Value)
		j.cur.Advance(totalsRowH)
	}

	j.cv.SetFillColor(j.theme.primary)
	j.cv.Rect(x, j.cur.Y, totalsWidth, totalsRowH, "F")
	j.cv.SetFont("B", 10)
	j.cv.SetTextColor(colorWhite)
	j.cv.Text(x+pad, j.cur.Y+11.5, grand.Label)
	j.cv.TextRight(l.Right()-pad, j.cur.Y+11.5, grand.Value)
	j.cv.SetTextColor(colorBlack)
	j.cv.SetFont("", bodyFont)
	j.cur.Advance(totalsRowH)
	j.gap(sectionGap)
}

// ── Términos ──────────────────────────────────────────────────────────────────

// term par etiqueta/valor de un bloque de condiciones.
type term struct {
	Label string
	Value string
}

const termsHeadingH = 16.0

// termLines cada par "etiqueta valor" partido al ancho imprimible.
func (j *job) termLines(terms []term) []string {
	width := j.cur.Layout().PrintableWidth()
	j.cv.SetFont("", bodyFont)
	var out []string
	for _, t := range terms {
		out = append(out, j.cv.Wrap(t.Label+" "+orNA(t.Value), width)...)
	}
	return out
}

// termsHeight alto total del bloque sin cortes: encabezado + líneas.
func (j *job) termsHeight(terms []term) float64 {
	return termsHeadingH + float64(len(j.termLines(terms)))*bodyLine
}

// drawTerms encabezado y líneas de condiciones con control de página por línea.
// Tras un corte se repite el encabezado con "(cont.)".
func (j *job) drawTerms(heading string, terms []term) {
	lines := j.termLines(terms)
	j.cur.Reserve(termsHeadingH + bodyLine)
	j.termsHeading(heading)

	j.cv.SetFont("", bodyFont)
	for _, s := range lines {
		if !j.cur.Fits(bodyLine) {
			j.cur.NewPage()
			j.termsHeading(heading + contSuffix)
			j.cv.SetFont("", bodyFont)
		}
		j.cv.Text(j.cur.Layout().MarginLeft, j.cur.Y+bodyLine*0.8, s)
		j.cur.Advance(bodyLine)
	}
	j.gap(sectionGap)
}

func (j *job) termsHeading(s string) {
	j.cv.SetFont("B", 10)
	j.cv.SetTextColor(j.theme.primary)
	j.cv.Text(j.cur.Layout().MarginLeft, j.cur.Y+11, s)
	j.cv.SetTextColor(colorBlack)
	j.cur.Advance(termsHeadingH)
}

// ── Firma ─────────────────────────────────────────────────────────────────────

// drawSignature imagen de firma con el nombre debajo; si la imagen no carga
// se escribe la línea de firma en texto en la misma posición.
func (j *job) drawSignature(signer string) {
	l := j.cur.Layout()
	j.cur.Reserve(70)
	x, y := l.MarginLeft, j.cur.Y

	h, ok := j.image(assetSignature, x, y, signatureW)
	if !ok {
		j.cv.SetFont("", bodyFont)
		j.cv.Text(x, y+bodyLine, signatureFallback)
		h = bodyLine + 4
	}
	y += h + 4
	if signer != "" {
		j.cv.SetFont("B", bodyFont)
		j.cv.Text(x, y+bodyLine*0.8, signer)
		y += bodyLine
	}
	j.cv.SetFont("", bodyFont)
	j.cur.Y = y + sectionGap
}
