// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Direction indica o sentido da variação de uma métrica
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Dashboard é o objeto de configuração consumido pela view do painel de vendas
type Dashboard struct {
	Metrics       []MetricCard     `json:"metrics" mapstructure:"metrics" validate:"dive"`
	Revenue       []RevenuePoint   `json:"revenue" mapstructure:"revenue" validate:"dive"`
	Products      []ProductRanking `json:"products" mapstructure:"products" validate:"dive"`
	Orders        OrdersSummary    `json:"orders" mapstructure:"orders"`
	QuickFacts    QuickFacts       `json:"quick_facts" mapstructure:"quick_facts"`
	PeriodLabel   string           `json:"period_label" mapstructure:"period_label"`
	RevenueTitle  string           `json:"revenue_title" mapstructure:"revenue_title"`
	ProductsTitle string           `json:"products_title" mapstructure:"products_title"`
}

// MetricCard representa um indicador resumido com tendência
type MetricCard struct {
	Title         string      `json:"title" mapstructure:"title" validate:"required"`
	Value         MetricValue `json:"value" mapstructure:"value"`
	ChangePercent float64     `json:"change_percent" mapstructure:"change_percent"`
	Currency      bool        `json:"currency,omitempty" mapstructure:"currency"`
}

// Direction retorna "up" para variação não negativa e "down" caso contrário
func (m MetricCard) Direction() Direction {
	if m.ChangePercent >= 0 {
		return DirectionUp
	}
	return DirectionDown
}

// RevenuePoint é o faturamento agregado de um mês
type RevenuePoint struct {
	Month string          `json:"month" mapstructure:"month" validate:"required"`
	Total decimal.Decimal `json:"total" mapstructure:"total" validate:"gte=0"`
}

// MarshalJSON serializa o total como número, não como string
func (p RevenuePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Month string      `json:"month"`
		Total json.Number `json:"total"`
	}{
		Month: p.Month,
		Total: json.Number(p.Total.String()),
	})
}

// ProductRanking é a posição de um produto no ranking de unidades vendidas.
// A ordem do ranking é a ordem da lista.
type ProductRanking struct {
	Name      string `json:"name" mapstructure:"name" validate:"required"`
	UnitsSold int    `json:"units_sold" mapstructure:"units_sold" validate:"gte=0"`
}

// OrdersSummary são os valores literais do card de pedidos
type OrdersSummary struct {
	Title   string `json:"title" mapstructure:"title"`
	Total   string `json:"total" mapstructure:"total"`
	Caption string `json:"caption" mapstructure:"caption"`
}

// QuickFacts são os valores literais do card de resumo rápido
type QuickFacts struct {
	Title          string `json:"title" mapstructure:"title"`
	AverageTicket  string `json:"average_ticket" mapstructure:"average_ticket"`
	MostProfitable string `json:"most_profitable" mapstructure:"most_profitable"`
	PeakHours      string `json:"peak_hours" mapstructure:"peak_hours"`
}
