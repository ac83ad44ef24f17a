package domain

import "github.com/shopspring/decimal"

const (
	DefaultPeriodLabel   = "última semana"
	DefaultRevenueTitle  = "Ganancias últimos 12 meses"
	DefaultProductsTitle = "Top 3 productos (último mes)"
)

// DefaultDashboard retorna os dados de referência do painel da heladería.
// Cada chamada devolve uma cópia nova.
func DefaultDashboard() Dashboard {
	return Dashboard{
		Metrics: []MetricCard{
			{Title: "Unidades Vendidas", Value: NumberValue(1248), ChangePercent: 8.4},
			{Title: "Órdenes Realizadas", Value: NumberValue(312), ChangePercent: 4.1},
			{Title: "Dinero Recibido", Value: TextValue("$2.450.000"), ChangePercent: -1.2},
			{Title: "Clientes Activos", Value: NumberValue(198), ChangePercent: 6.9},
		},
		Revenue: []RevenuePoint{
			{Month: "Ene", Total: decimal.NewFromInt(120000)},
			{Month: "Feb", Total: decimal.NewFromInt(98000)},
			{Month: "Mar", Total: decimal.NewFromInt(135000)},
			{Month: "Abr", Total: decimal.NewFromInt(160000)},
			{Month: "May", Total: decimal.NewFromInt(175000)},
			{Month: "Jun", Total: decimal.NewFromInt(190000)},
			{Month: "Jul", Total: decimal.NewFromInt(210000)},
			{Month: "Ago", Total: decimal.NewFromInt(205000)},
			{Month: "Sep", Total: decimal.NewFromInt(225000)},
			{Month: "Oct", Total: decimal.NewFromInt(240000)},
			{Month: "Nov", Total: decimal.NewFromInt(260000)},
			{Month: "Dic", Total: decimal.NewFromInt(280000)},
		},
		Products: []ProductRanking{
			{Name: "Helado Chocolate", UnitsSold: 420},
			{Name: "Helado Vainilla", UnitsSold: 390},
			{Name: "Helado Frutilla", UnitsSold: 355},
		},
		Orders:        DefaultOrdersSummary(),
		QuickFacts:    DefaultQuickFacts(),
		PeriodLabel:   DefaultPeriodLabel,
		RevenueTitle:  DefaultRevenueTitle,
		ProductsTitle: DefaultProductsTitle,
	}
}

func DefaultOrdersSummary() OrdersSummary {
	return OrdersSummary{
		Title:   "Órdenes últimos 12 meses",
		Total:   "4.863",
		Caption: "+12% vs año anterior",
	}
}

func DefaultQuickFacts() QuickFacts {
	return QuickFacts{
		Title:          "Resumen rápido",
		AverageTicket:  "$8.450",
		MostProfitable: "Chocolate",
		PeakHours:      "18:00 – 20:00",
	}
}
