package pdf

import "github.com/paktech/tender-docs/internal/domain/entity"

// quotationRenderer una plantilla completa de cotización.
type quotationRenderer struct {
	theme  theme
	margin func(Margins) float64
	draw   func(*job, *entity.Quotation, entity.Party)
}

// quotationTemplates despacho por plantilla; cada rama es independiente.
var quotationTemplates = map[entity.Template]quotationRenderer{
	entity.TemplatePaktech: {
		theme:  paktechTheme,
		margin: func(m Margins) float64 { return m.Paktech },
		draw:   renderPaktech,
	},
	entity.TemplateTechno: {
		theme:  technoTheme,
		margin: func(m Margins) float64 { return m.Techno },
		draw:   renderTechno,
	},
}

// selectQuotationTemplate resuelve forCompany antes de dibujar nada.
func selectQuotationTemplate(forCompany string) (entity.Template, quotationRenderer, error) {
	tpl, err := entity.ParseTemplate(forCompany)
	if err != nil {
		return 0, quotationRenderer{}, err
	}
	return tpl, quotationTemplates[tpl], nil
}
