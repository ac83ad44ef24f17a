package dashboard

import "github.com/vfg2006/heladeria-dashboard/internal/domain"

const gridColumns = 12

// Page é o modelo completo renderizado pela view, de cima para baixo
type Page struct {
	Cards         []Card               `json:"cards"`
	CardSpan      int                  `json:"card_span"`
	RevenueTitle  string               `json:"revenue_title"`
	Chart         Chart                `json:"chart"`
	ProductsTitle string               `json:"products_title"`
	Products      []ProductRow         `json:"products"`
	Orders        domain.OrdersSummary `json:"orders"`
	QuickFacts    domain.QuickFacts    `json:"quick_facts"`
}

// Card é um card de métrica já formatado
type Card struct {
	Title       string           `json:"title"`
	Value       string           `json:"value"`
	Direction   domain.Direction `json:"direction"`
	Percent     string           `json:"percent"`
	PercentLine string           `json:"percent_line"`
}

// ProductRow é uma linha do ranking de produtos
type ProductRow struct {
	Position  int    `json:"position"`
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
}

// IsUp é usado pelo template para escolher cor e seta
func (c Card) IsUp() bool {
	return c.Direction == domain.DirectionUp
}

// cardSpan distribui os cards em um grid de 12 colunas
func cardSpan(count int) int {
	switch count {
	case 1, 2, 3, 4, 6:
		return gridColumns / count
	default:
		return 3
	}
}
