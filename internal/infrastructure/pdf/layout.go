package pdf

// Medidas en puntos (1/72"). A4 vertical.
const (
	a4Width  = 595.28
	a4Height = 841.89

	sideMargin = 40.0
	topMargin  = 40.0

	// epsilon tolerancia al comparar contra el límite de página: un bloque que
	// llena exactamente el espacio restante no debe saltar de página.
	epsilon = 1e-6
)

// Layout geometría de página de una plantilla.
type Layout struct {
	PageWidth    float64
	PageHeight   float64
	MarginLeft   float64
	MarginRight  float64
	TopMargin    float64
	BottomMargin float64 // reservado para el pie; distinto por plantilla
}

// NewLayout A4 con márgenes laterales y superior comunes y el inferior indicado.
func NewLayout(bottomMargin float64) Layout {
	return Layout{
		PageWidth:    a4Width,
		PageHeight:   a4Height,
		MarginLeft:   sideMargin,
		MarginRight:  sideMargin,
		TopMargin:    topMargin,
		BottomMargin: bottomMargin,
	}
}

// ContentMaxY última coordenada Y utilizable antes del pie.
func (l Layout) ContentMaxY() float64 { return l.PageHeight - l.BottomMargin }

// PrintableWidth ancho entre márgenes laterales.
func (l Layout) PrintableWidth() float64 { return l.PageWidth - l.MarginLeft - l.MarginRight }

// Right coordenada X del margen derecho.
func (l Layout) Right() float64 { return l.PageWidth - l.MarginRight }

// Margins márgenes inferiores por plantilla.
type Margins struct {
	Invoice       float64
	PurchaseOrder float64
	Paktech       float64
	Techno        float64
}

// DefaultMargins valores con los que se diseñaron los documentos impresos.
func DefaultMargins() Margins {
	return Margins{
		Invoice:       50,
		PurchaseOrder: 50,
		Paktech:       40,
		Techno:        45.72,
	}
}

// orDefault reemplaza valores no positivos por los de def.
func (m Margins) orDefault(def Margins) Margins {
	if m.Invoice <= 0 {
		m.Invoice = def.Invoice
	}
	if m.PurchaseOrder <= 0 {
		m.PurchaseOrder = def.PurchaseOrder
	}
	if m.Paktech <= 0 {
		m.Paktech = def.Paktech
	}
	if m.Techno <= 0 {
		m.Techno = def.Techno
	}
	return m
}
