package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePager struct{ pages int }

func (f *fakePager) AddPage()    { f.pages++ }
func (f *fakePager) PageNo() int { return f.pages }

func TestCursor_LimiteExacto(t *testing.T) {
	layout := NewLayout(45.72)
	p := &fakePager{pages: 1}
	cur := NewCursor(layout, p)
	cur.Y = 700

	exact := layout.ContentMaxY() - cur.Y
	assert.True(t, cur.Fits(exact), "un bloque que llena exactamente el espacio cabe")
	assert.False(t, cur.Reserve(exact))
	assert.Equal(t, 1, cur.Page())

	assert.False(t, cur.Fits(exact+1), "una unidad más no cabe")
	assert.True(t, cur.Reserve(exact+1))
	assert.Equal(t, 2, cur.Page())
	assert.Equal(t, layout.TopMargin, cur.Y)
}

func TestCursor_AdvanceYRemaining(t *testing.T) {
	layout := NewLayout(50)
	cur := NewCursor(layout, &fakePager{pages: 1})
	cur.Advance(100)
	assert.Equal(t, topMargin+100, cur.Y)
	assert.InDelta(t, a4Height-50-topMargin-100, cur.Remaining(), 1e-9)
}

func TestMargins_OrDefault(t *testing.T) {
	m := Margins{Techno: 30}.orDefault(DefaultMargins())
	assert.Equal(t, 30.0, m.Techno)
	assert.Equal(t, 50.0, m.Invoice)
	assert.Equal(t, 40.0, m.Paktech)
}

func TestLayout(t *testing.T) {
	l := NewLayout(45.72)
	assert.InDelta(t, 841.89-45.72, l.ContentMaxY(), 1e-9)
	assert.InDelta(t, 515.28, l.PrintableWidth(), 1e-9)
	assert.InDelta(t, 555.28, l.Right(), 1e-9)
}
