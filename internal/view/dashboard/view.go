// Package dashboard renderiza o painel de vendas da heladería a partir de um domain.Dashboard.
//
// A renderização é uma função pura dos dados: a mesma entrada produz sempre o mesmo HTML,
// sem datas, IDs aleatórios ou iteração sobre mapas na saída.
package dashboard

import (
	"bytes"
	"html/template"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/vfg2006/heladeria-dashboard/internal/domain"
)

// Renderer é a interface consumida pelos handlers HTTP
type Renderer interface {
	Build(d domain.Dashboard) Page
	Render(w io.Writer, d domain.Dashboard) error
}

// View compila o template uma única vez e pode ser usada concorrentemente
type View struct {
	tmpl   *template.Template
	layout ChartLayout
	format formatter
}

type Option func(v *View)

// WithChartLayout substitui as dimensões padrão do gráfico
func WithChartLayout(layout ChartLayout) Option {
	return func(v *View) {
		v.layout = layout
	}
}

// WithLocale define o idioma usado nos separadores de milhar
func WithLocale(tag language.Tag) Option {
	return func(v *View) {
		v.format = newFormatter(tag)
	}
}

func New(opts ...Option) (*View, error) {
	view := &View{
		layout: DefaultChartLayout(),
		format: newFormatter(language.MustParse("es-CL")),
	}

	for _, opt := range opts {
		opt(view)
	}

	tmpl, err := template.New("dashboard").Funcs(template.FuncMap{
		"coord": coord,
		"sub":   func(a, b float64) float64 { return a - b },
	}).Parse(pageTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: erro ao compilar template")
	}

	view.tmpl = tmpl
	return view, nil
}

// Build monta o modelo da página preservando a ordem de todas as listas recebidas
func (v *View) Build(d domain.Dashboard) Page {
	page := Page{
		Cards:         make([]Card, 0, len(d.Metrics)),
		CardSpan:      cardSpan(len(d.Metrics)),
		RevenueTitle:  d.RevenueTitle,
		Chart:         buildChart(d.Revenue, v.layout, v.format),
		ProductsTitle: d.ProductsTitle,
		Products:      make([]ProductRow, 0, len(d.Products)),
		Orders:        d.Orders,
		QuickFacts:    d.QuickFacts,
	}

	for _, metric := range d.Metrics {
		pct := percent(metric.ChangePercent)
		page.Cards = append(page.Cards, Card{
			Title:       metric.Title,
			Value:       v.format.metricValue(metric),
			Direction:   metric.Direction(),
			Percent:     pct,
			PercentLine: pct + "% " + d.PeriodLabel,
		})
	}

	for i, product := range d.Products {
		page.Products = append(page.Products, ProductRow{
			Position:  i + 1,
			Name:      product.Name,
			UnitsSold: product.UnitsSold,
		})
	}

	return page
}

// Render escreve o HTML do painel em w. Nada é escrito se a execução do template falhar.
func (v *View) Render(w io.Writer, d domain.Dashboard) error {
	var buf bytes.Buffer
	if err := v.tmpl.Execute(&buf, v.Build(d)); err != nil {
		return errors.Wrap(err, "dashboard: erro ao executar template")
	}

	if _, err := io.Copy(w, &buf); err != nil {
		return errors.Wrap(err, "dashboard: erro ao escrever resposta")
	}

	return nil
}
