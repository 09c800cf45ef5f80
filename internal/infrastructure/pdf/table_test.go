package pdf

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paktech/tender-docs/internal/domain/entity"
	"github.com/paktech/tender-docs/pkg/logger"
)

func testJob(t *testing.T, bottom float64, assets *AssetLoader) *job {
	t.Helper()
	m := meta{Title: "test", Date: documentDate("2024-03-05")}
	return newJob(NewLayout(bottom), m, NewFormatter("en", ""), assets, logger.Nop(), invoiceTheme)
}

func testItems(n int) []entity.LineItem {
	items := make([]entity.LineItem, n)
	for i := range items {
		items[i] = entity.LineItem{
			SNo:         i + 1,
			Description: "<p>Gate valve</p>",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(10),
		}
	}
	return items
}

func testFields(f Formatter) []itemField {
	return []itemField{
		sNoField(34),
		descriptionField("Description", 266.28),
		qtyField(f, 50),
		priceField(f, "Unit Price", 75),
		totalField(f, "Total", 90, false),
	}
}

func TestTable_FilasYCabeceraPorPagina(t *testing.T) {
	j := testJob(t, 50, nil)
	tbl := lineItemTable(testItems(80), testFields(j.f), defaultTableStyle(colorBlack))

	var pages []int
	tbl.OnPage = func(page int, y float64) {
		pages = append(pages, page)
		assert.LessOrEqual(t, y, j.cur.Layout().ContentMaxY()+epsilon)
	}
	res := tbl.Draw(j.cv, j.cur)

	assert.Equal(t, 80, res.BodyRows)
	assert.Greater(t, res.Pages, 1)
	assert.Equal(t, res.Pages, res.HeaderRows, "una cabecera por página")
	assert.Equal(t, res.Pages, j.cv.PageCount())
	require.Len(t, pages, res.Pages)
	for i, p := range pages {
		assert.Equal(t, i+1, p)
	}
	assert.Equal(t, j.cur.Y, res.FinalY)
}

func bulletDescription(n int) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "<li>Spare part %d</li>", i+1)
	}
	b.WriteString("</ul>")
	return b.String()
}

func TestTable_FilaMasAltaQueLaPaginaSeReparte(t *testing.T) {
	j := testJob(t, 50, nil)
	items := testItems(3)
	items[1].Description = bulletDescription(90)
	tbl := lineItemTable(items, testFields(j.f), defaultTableStyle(colorBlack))

	lay := j.cur.Layout()
	headerH := tbl.Style.LineHeight + 2*tbl.Style.Padding
	_, tall := tbl.prepareRow(j.cv, tbl.Rows[1])
	require.Greater(t, tall, lay.ContentMaxY()-lay.TopMargin, "la fila no cabe en una página")

	var ends []float64
	tbl.OnPage = func(page int, y float64) {
		ends = append(ends, y)
		assert.LessOrEqual(t, y, lay.ContentMaxY()+epsilon, "página %d", page)
		assert.Greater(t, y, lay.TopMargin+headerH+epsilon, "página %d solo con cabecera", page)
	}
	res := tbl.Draw(j.cv, j.cur)

	assert.Equal(t, 3, res.BodyRows)
	assert.GreaterOrEqual(t, res.Pages, 2)
	assert.Equal(t, res.Pages, res.HeaderRows, "una cabecera por página")
	assert.Equal(t, res.Pages, j.cv.PageCount())
	assert.Len(t, ends, res.Pages)

	out, err := j.cv.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "(\x95 Spare part 1) Tj")
	assert.Contains(t, string(out), "(\x95 Spare part 90) Tj")
}

func TestTable_FilaPartidaConCeldasDesiguales(t *testing.T) {
	cells := [][]cellLine{
		{{text: "1"}},
		{{text: "a"}, {text: "b"}, {text: "c"}},
	}
	assert.Equal(t, 3, rowLines(cells))

	part := sliceLines(cells, 1, 3)
	assert.Empty(t, part[0])
	assert.Equal(t, []cellLine{{text: "b"}, {text: "c"}}, part[1])
	assert.Equal(t, 1, rowLines([][]cellLine{nil, nil}))
}

func TestTable_UnaPagina(t *testing.T) {
	j := testJob(t, 50, nil)
	tbl := lineItemTable(testItems(3), testFields(j.f), defaultTableStyle(colorBlack))
	res := tbl.Draw(j.cv, j.cur)

	assert.Equal(t, 3, res.BodyRows)
	assert.Equal(t, 1, res.HeaderRows)
	assert.Equal(t, 1, res.Pages)
}

func TestTable_FilaVaciaSeDibuja(t *testing.T) {
	j := testJob(t, 50, nil)
	tbl := lineItemTable([]entity.LineItem{{}}, testFields(j.f), defaultTableStyle(colorBlack))
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"0", "", "0.00", "0.00", "0.00"}, tbl.Rows[0])

	res := tbl.Draw(j.cv, j.cur)
	assert.Equal(t, 1, res.BodyRows)
}

func TestTable_LineasEnNegrita(t *testing.T) {
	j := testJob(t, 50, nil)
	tbl := lineItemTable(nil, testFields(j.f), defaultTableStyle(colorBlack))

	cells, h := tbl.prepareRow(j.cv, []string{"1", "**Scope**\n• DN50", "1.00", "10.00", "10.00"})
	require.Len(t, cells[1], 2)
	assert.Equal(t, cellLine{text: "Scope", bold: true}, cells[1][0])
	assert.Equal(t, cellLine{text: "• DN50", bold: false}, cells[1][1])
	assert.InDelta(t, 2*tbl.Style.LineHeight+2*tbl.Style.Padding, h, 1e-9)
}

func TestTable_ColumnasNumericas(t *testing.T) {
	f := NewFormatter("en", "")
	items := []entity.LineItem{{
		SNo:         1,
		Description: "<ul><li>A</li></ul>",
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.RequireFromString("1250.5"),
		Tax:         decimal.NewFromInt(10),
	}}
	tbl := lineItemTable(items, []itemField{
		sNoField(30), descriptionField("Description", 200), qtyField(f, 40),
		priceField(f, "Unit Price", 60), taxField(f, 60), totalField(f, "Total", 80, true),
	}, defaultTableStyle(colorBlack))

	assert.Equal(t, []string{"1", "• A", "2.00", "1,250.50", "10.00", "2,511.00"}, tbl.Rows[0])
	assert.Equal(t, AlignRight, tbl.Columns[5].Align)
	assert.Equal(t, AlignLeft, tbl.Columns[1].Align)
}

func TestCanvas_WrapCabeEnAncho(t *testing.T) {
	j := testJob(t, 50, nil)
	j.cv.SetFont("", bodyFont)
	width := 120.0

	long := "Payment Terms: 50% advance with purchase order, balance within thirty days of delivery and inspection"
	lines := j.cv.Wrap(long, width)
	assert.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, j.cv.Width(l), width, l)
	}

	word := "Supercalifragilisticexpialidocious-Supercalifragilisticexpialidocious"
	lines = j.cv.Wrap(word, width)
	assert.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, j.cv.Width(l), width, l)
	}

	assert.Equal(t, []string{""}, j.cv.Wrap("", width))
}

func TestCanvas_WrapConservaTextoUnicode(t *testing.T) {
	j := testJob(t, 50, nil)
	j.cv.SetFont("", bodyFont)

	text := "Válvula de compuerta con brida, presión nominal PN16, acero inoxidable, señal 4–20 mA"
	lines := j.cv.Wrap(text, 90)
	assert.Greater(t, len(lines), 1)
	assert.Equal(t, text, strings.Join(lines, " "))
	for _, l := range lines {
		assert.LessOrEqual(t, j.cv.Width(l), 90.0, l)
	}

	assert.Equal(t, []string{"a", "", "b"}, j.cv.Wrap("a\n\nb", 90))
}
