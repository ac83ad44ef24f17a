package dashboard

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/vfg2006/heladeria-dashboard/internal/domain"
)

func TestNiceStep(t *testing.T) {
	tests := []struct {
		highest string
		want    string
	}{
		{highest: "0", want: "0"},
		{highest: "-10", want: "0"},
		{highest: "8", want: "2"},
		{highest: "280000", want: "75000"},
		{highest: "400000", want: "100000"},
		{highest: "90", want: "25"},
		{highest: "1", want: "0.25"},
		{highest: "0.003", want: "0.00075"},
		{highest: "10000000000000000000", want: "2500000000000000000"},
	}

	for _, tt := range tests {
		got := niceStep(decimal.RequireFromString(tt.highest))
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "highest=%s got=%s", tt.highest, got)
	}
}

func TestBuildChart_DefaultRevenue(t *testing.T) {
	f := newFormatter(language.MustParse("es-CL"))
	chart := buildChart(domain.DefaultDashboard().Revenue, DefaultChartLayout(), f)

	require.Len(t, chart.Bars, 12)
	assert.Equal(t, "300.000", chart.AxisMax)

	labels := make([]string, 0, len(chart.Ticks))
	for _, tick := range chart.Ticks {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"0", "75.000", "150.000", "225.000", "300.000"}, labels)
	assert.InDelta(t, 232.0, chart.Ticks[0].Y, 0.001)
	assert.InDelta(t, 8.0, chart.Ticks[4].Y, 0.001)

	first := chart.Bars[0]
	assert.Equal(t, "Ene", first.Label)
	assert.Equal(t, "120.000", first.Total)
	assert.Equal(t, "Ene: 120.000", first.Tooltip)
	assert.InDelta(t, 69.4, first.X, 0.001)
	assert.InDelta(t, 43.2, first.Width, 0.001)
	assert.InDelta(t, 89.6, first.Height, 0.001)
	assert.InDelta(t, 142.4, first.Y, 0.001)

	last := chart.Bars[11]
	assert.Equal(t, "Dic", last.Label)
	assert.InDelta(t, 209.07, last.Height, 0.001)
	assert.InDelta(t, 22.93, last.Y, 0.001)
}

func TestBuildChart_NoPositiveTotals(t *testing.T) {
	f := newFormatter(language.MustParse("es-CL"))
	points := []domain.RevenuePoint{
		{Month: "Ene", Total: decimal.Zero},
		{Month: "Feb", Total: decimal.Zero},
	}

	chart := buildChart(points, DefaultChartLayout(), f)

	require.Len(t, chart.Bars, 2)
	assert.Equal(t, 0.0, chart.Bars[0].Height)
	assert.Equal(t, 0.0, chart.Bars[1].Height)
	assert.Equal(t, "0", chart.AxisMax)
	require.Len(t, chart.Ticks, 1)
	assert.Equal(t, "0", chart.Ticks[0].Label)
}

func TestBuildChart_FractionalTotals(t *testing.T) {
	f := newFormatter(language.MustParse("es-CL"))
	points := []domain.RevenuePoint{
		{Month: "Ene", Total: decimal.RequireFromString("12345.67")},
		{Month: "Feb", Total: decimal.RequireFromString("0.4")},
	}

	chart := buildChart(points, DefaultChartLayout(), f)

	require.Len(t, chart.Bars, 2)
	assert.Equal(t, "12.345,67", chart.Bars[0].Total)
	assert.Equal(t, "Ene: 12.345,67", chart.Bars[0].Tooltip)
	assert.Equal(t, "0,4", chart.Bars[1].Total)
	assert.Equal(t, "Feb: 0,4", chart.Bars[1].Tooltip)
	assert.Equal(t, "16.000", chart.AxisMax)
}

func TestBuildChart_SmallSeriesKeepDistinctTicks(t *testing.T) {
	f := newFormatter(language.MustParse("es-CL"))
	points := []domain.RevenuePoint{{Month: "Ene", Total: decimal.RequireFromString("0.003")}}

	chart := buildChart(points, DefaultChartLayout(), f)

	labels := make([]string, 0, len(chart.Ticks))
	for _, tick := range chart.Ticks {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"0,00000", "0,00075", "0,00150", "0,00225", "0,00300"}, labels)
	assert.Equal(t, "0,00300", chart.AxisMax)
	assert.Equal(t, "Ene: 0,003", chart.Bars[0].Tooltip)
	assert.InDelta(t, 224.0, chart.Bars[0].Height, 0.001)
}

func TestBuildChart_HugeTotals(t *testing.T) {
	f := newFormatter(language.MustParse("es-CL"))
	points := []domain.RevenuePoint{
		{Month: "Ene", Total: decimal.RequireFromString("10000000000000000000")},
		{Month: "Feb", Total: decimal.RequireFromString("5000000000000000000")},
	}

	chart := buildChart(points, DefaultChartLayout(), f)

	assert.Equal(t, "10.000.000.000.000.000.000", chart.Bars[0].Total)
	assert.Equal(t, "5.000.000.000.000.000.000", chart.Bars[1].Total)
	assert.Equal(t, "10.000.000.000.000.000.000", chart.AxisMax)
	assert.InDelta(t, 224.0, chart.Bars[0].Height, 0.001)
	assert.InDelta(t, 112.0, chart.Bars[1].Height, 0.001)
}

func TestBuildChart_BeyondFloatRange(t *testing.T) {
	f := newFormatter(language.MustParse("es-CL"))
	points := []domain.RevenuePoint{{Month: "Ene", Total: decimal.New(1, 400)}}

	var chart Chart
	require.NotPanics(t, func() {
		chart = buildChart(points, DefaultChartLayout(), f)
	})

	require.Len(t, chart.Bars, 1)
	assert.True(t, strings.HasPrefix(chart.Bars[0].Tooltip, "Ene: 10.000.000"))
	assert.InDelta(t, 224.0, chart.Bars[0].Height, 0.001)
	assert.Len(t, chart.Ticks, tickCount)
}

func TestRoundedTopPath(t *testing.T) {
	assert.Equal(t,
		"M10.00,120.00 L10.00,28.00 Q10.00,20.00 18.00,20.00 L32.00,20.00 Q40.00,20.00 40.00,28.00 L40.00,120.00 Z",
		roundedTopPath(10, 20, 30, 100),
	)

	// barras baixas limitam o raio à altura
	assert.Equal(t,
		"M0.00,10.00 L0.00,10.00 Q0.00,5.00 5.00,5.00 L15.00,5.00 Q20.00,5.00 20.00,10.00 L20.00,10.00 Z",
		roundedTopPath(0, 5, 20, 5),
	)
}

func TestFormatter(t *testing.T) {
	f := newFormatter(language.MustParse("es-CL"))

	assert.Equal(t, "$2.450.000", f.currency(2450000))
	assert.Equal(t, "$1.234.567", f.currency(1234567.89))
	assert.Equal(t, "280.000", f.decimal(decimal.NewFromInt(280000)))
	assert.Equal(t, "98.000,5", f.decimal(decimal.RequireFromString("98000.50")))
	assert.Equal(t, "0,4", f.decimal(decimal.RequireFromString("0.4")))
	assert.Equal(t, "$10.000.000.000.000.000.000", f.currency(1e19))
	assert.Equal(t, "8.4", percent(-8.4))
	assert.Equal(t, "12", percent(12))

	text := domain.MetricCard{Value: domain.TextValue("$2.450.000"), Currency: true}
	assert.Equal(t, "$2.450.000", f.metricValue(text))

	plain := domain.MetricCard{Value: domain.NumberValue(1248)}
	assert.Equal(t, "1248", f.metricValue(plain))
}
