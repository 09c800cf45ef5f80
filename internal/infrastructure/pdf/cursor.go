package pdf

// pager lo mínimo que el cursor necesita del lienzo para cortar página.
type pager interface {
	AddPage()
	PageNo() int
}

// Cursor posición vertical de escritura sobre la página activa.
// La librería de dibujo no hace flujo automático: cada bloque se coloca en
// coordenadas explícitas y el corte de página lo decide el cursor.
type Cursor struct {
	Y      float64
	layout Layout
	pages  pager
}

// NewCursor cursor al inicio del área útil de la página actual.
func NewCursor(layout Layout, pages pager) *Cursor {
	return &Cursor{Y: layout.TopMargin, layout: layout, pages: pages}
}

// Layout geometría asociada.
func (c *Cursor) Layout() Layout { return c.layout }

// Page índice 1-based de la página activa.
func (c *Cursor) Page() int { return c.pages.PageNo() }

// Remaining alto disponible antes del margen inferior.
func (c *Cursor) Remaining() float64 { return c.layout.ContentMaxY() - c.Y }

// Fits indica si un bloque de alto h cabe en la página actual (y + h <= ContentMaxY).
func (c *Cursor) Fits(h float64) bool {
	return c.Y+h <= c.layout.ContentMaxY()+epsilon
}

// NewPage agrega una página y vuelve al margen superior.
func (c *Cursor) NewPage() {
	c.pages.AddPage()
	c.Y = c.layout.TopMargin
}

// Reserve garantiza espacio para h; si no cabe corta página. Devuelve true si cortó.
func (c *Cursor) Reserve(h float64) bool {
	if c.Fits(h) {
		return false
	}
	c.NewPage()
	return true
}

// Advance mueve el cursor h puntos hacia abajo.
func (c *Cursor) Advance(h float64) { c.Y += h }
