// Package richtext aplana el HTML restringido de las descripciones de ítems
// (<p>, <strong>/<b>, <ul>/<ol>/<li>) en líneas de texto plano para celdas de tabla.
//
// Convenciones de salida:
//   - "• " al inicio de cada ítem de lista.
//   - "**texto**" para negritas; la tabla lo dibuja en bold y quita los marcadores.
package richtext

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// Bullet prefijo de los ítems de lista.
	Bullet     = "• "
	boldMarker = "**"
)

var (
	policy = newPolicy()

	entities = strings.NewReplacer("\u00a0", " ", "&nbsp;", " ", "&amp;", "&")

	bodyContext = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "strong", "b", "ul", "ol", "li", "br", "em", "i", "u", "span", "div")
	return p
}

// Flatten devuelve las líneas unidas por "\n". Entrada vacía o HTML sin texto → "".
func Flatten(src string) string {
	return strings.Join(Lines(src), "\n")
}

// Lines aplana src en líneas. Nunca falla: lo que no se pueda interpretar no produce salida.
func Lines(src string) []string {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	nodes, err := html.ParseFragment(strings.NewReader(policy.Sanitize(src)), bodyContext)
	if err != nil {
		return nil
	}
	var out []string
	walkNodes(nodes, &out)
	return out
}

// Bold indica si la línea viene marcada como negrita y devuelve el texto sin marcadores.
func Bold(line string) (string, bool) {
	if len(line) > 2*len(boldMarker) && strings.HasPrefix(line, boldMarker) && strings.HasSuffix(line, boldMarker) {
		return line[len(boldMarker) : len(line)-len(boldMarker)], true
	}
	return line, false
}

// walkNodes recorre hermanos: el texto suelto y los elementos inline consecutivos
// forman una sola línea; los bloques la cortan.
func walkNodes(nodes []*html.Node, out *[]string) {
	var run strings.Builder
	flush := func() {
		emit(out, "", normalize(run.String()), "")
		run.Reset()
	}
	for _, n := range nodes {
		if inline(n) {
			collectText(n, &run)
			continue
		}
		flush()
		walk(n, out)
	}
	flush()
}

func walk(n *html.Node, out *[]string) {
	if n.Type != html.ElementNode {
		walkChildren(n, out)
		return
	}

	switch n.DataAtom {
	case atom.P:
		emit(out, "", textContent(n), "")
	case atom.Strong, atom.B:
		emit(out, boldMarker, textContent(n), boldMarker)
	case atom.Ul, atom.Ol:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Li {
				emit(out, Bullet, textContent(c), "")
			}
		}
	case atom.Br:
	default:
		walkChildren(n, out)
	}
}

func walkChildren(n *html.Node, out *[]string) {
	var kids []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		kids = append(kids, c)
	}
	walkNodes(kids, out)
}

// inline texto, comentarios y elementos que no abren línea propia (em, i, u, span).
func inline(n *html.Node) bool {
	switch n.Type {
	case html.TextNode, html.CommentNode:
		return true
	case html.ElementNode:
		switch n.DataAtom {
		case atom.P, atom.Strong, atom.B, atom.Ul, atom.Ol, atom.Li, atom.Br, atom.Div:
			return false
		}
		return true
	}
	return false
}

func emit(out *[]string, prefix, text, suffix string) {
	if text == "" {
		return
	}
	*out = append(*out, prefix+text+suffix)
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return normalize(sb.String())
}

// collectText texto de n sin normalizar; <br> cuenta como espacio.
func collectText(n *html.Node, sb *strings.Builder) {
	switch {
	case n.Type == html.TextNode:
		sb.WriteString(n.Data)
		return
	case n.Type == html.ElementNode && n.DataAtom == atom.Br:
		sb.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// normalize decodifica &nbsp;/&amp; residuales y colapsa espacios.
func normalize(s string) string {
	return strings.Join(strings.Fields(entities.Replace(s)), " ")
}
