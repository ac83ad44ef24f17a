package dashboard

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/heladeria-dashboard/internal/domain"
)

const (
	tickCount = 5
	barRadius = 8.0
	barFill   = 0.8
)

var niceMultipliers = []decimal.Decimal{
	decimal.NewFromInt(1),
	decimal.RequireFromString("1.5"),
	decimal.NewFromInt(2),
	decimal.RequireFromString("2.5"),
	decimal.NewFromInt(3),
	decimal.NewFromInt(4),
	decimal.NewFromInt(5),
	decimal.RequireFromString("7.5"),
	decimal.NewFromInt(10),
}

// ChartLayout define as dimensões do gráfico de barras em pixels
type ChartLayout struct {
	Width        float64
	Height       float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
}

// DefaultChartLayout equivale a um container de 16rem de altura
func DefaultChartLayout() ChartLayout {
	return ChartLayout{
		Width:        720,
		Height:       256,
		MarginTop:    8,
		MarginRight:  8,
		MarginBottom: 24,
		MarginLeft:   64,
	}
}

func (l ChartLayout) plotWidth() float64 {
	return math.Max(l.Width-l.MarginLeft-l.MarginRight, 0)
}

func (l ChartLayout) plotHeight() float64 {
	return math.Max(l.Height-l.MarginTop-l.MarginBottom, 0)
}

func (l ChartLayout) baseline() float64 {
	return l.MarginTop + l.plotHeight()
}

// Chart é o modelo do gráfico de faturamento mensal
type Chart struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	AxisX    float64 `json:"axis_x"`
	Baseline float64 `json:"baseline"`
	AxisMax  string  `json:"axis_max"`
	Bars     []Bar   `json:"bars"`
	Ticks    []Tick  `json:"ticks"`
}

// Bar é uma barra do gráfico, uma por mês, na ordem recebida
type Bar struct {
	Label   string  `json:"label"`
	Total   string  `json:"total"`
	Tooltip string  `json:"tooltip"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	LabelX  float64 `json:"label_x"`
	Path    string  `json:"path"`
}

// Tick é uma marca do eixo Y
type Tick struct {
	Label string  `json:"label"`
	Y     float64 `json:"y"`
}

func buildChart(points []domain.RevenuePoint, layout ChartLayout, f formatter) Chart {
	chart := Chart{
		Width:    layout.Width,
		Height:   layout.Height,
		AxisX:    layout.MarginLeft,
		Baseline: layout.baseline(),
		Bars:     make([]Bar, 0, len(points)),
	}

	highest := decimal.Zero
	for _, p := range points {
		if p.Total.GreaterThan(highest) {
			highest = p.Total
		}
	}

	step := niceStep(highest)
	places := decimalPlaces(step)
	axisMax := step.Mul(decimal.NewFromInt(tickCount - 1))
	chart.AxisMax = f.fixed(axisMax, places)
	chart.Ticks = buildTicks(step, places, layout, f)

	if len(points) == 0 {
		return chart
	}

	plotHeight := decimal.NewFromFloat(layout.plotHeight())
	slot := layout.plotWidth() / float64(len(points))
	width := round2(slot * barFill)

	for i, p := range points {
		height := 0.0
		if axisMax.IsPositive() && p.Total.IsPositive() {
			height, _ = p.Total.Div(axisMax).Mul(plotHeight).Round(2).Float64()
		}

		x := round2(layout.MarginLeft + slot*float64(i) + (slot-width)/2)
		y := round2(chart.Baseline - height)
		total := f.decimal(p.Total)

		chart.Bars = append(chart.Bars, Bar{
			Label:   p.Month,
			Total:   total,
			Tooltip: p.Month + ": " + total,
			X:       x,
			Y:       y,
			Width:   width,
			Height:  height,
			LabelX:  round2(x + width/2),
			Path:    roundedTopPath(x, y, width, height),
		})
	}

	return chart
}

// niceStep escolhe um intervalo "redondo" para as marcas do eixo Y.
// A magnitude sai dos dígitos do decimal, sem passar por float64.
func niceStep(highest decimal.Decimal) decimal.Decimal {
	if !highest.IsPositive() {
		return decimal.Zero
	}

	raw := highest.Div(decimal.NewFromInt(tickCount - 1))
	magnitude := decimal.New(1, int32(raw.NumDigits())-1+raw.Exponent())
	for _, m := range niceMultipliers {
		if step := m.Mul(magnitude); step.GreaterThanOrEqual(raw) {
			return step
		}
	}
	return magnitude.Mul(decimal.NewFromInt(10))
}

// buildTicks usa as casas decimais do intervalo para que marcas pequenas não virem "0"
func buildTicks(step decimal.Decimal, places int32, layout ChartLayout, f formatter) []Tick {
	if !step.IsPositive() {
		return []Tick{{Label: "0", Y: layout.baseline()}}
	}

	ticks := make([]Tick, 0, tickCount)
	for i := 0; i < tickCount; i++ {
		value := step.Mul(decimal.NewFromInt(int64(i)))
		offset := layout.plotHeight() * float64(i) / (tickCount - 1)
		ticks = append(ticks, Tick{
			Label: f.fixed(value, places),
			Y:     round2(layout.baseline() - offset),
		})
	}
	return ticks
}

// roundedTopPath desenha um retângulo com os cantos superiores arredondados
func roundedTopPath(x, y, w, h float64) string {
	r := math.Min(barRadius, math.Min(w/2, h))
	bottom := y + h

	var b strings.Builder
	b.WriteString("M" + coord(x) + "," + coord(bottom))
	b.WriteString(" L" + coord(x) + "," + coord(y+r))
	b.WriteString(" Q" + coord(x) + "," + coord(y) + " " + coord(x+r) + "," + coord(y))
	b.WriteString(" L" + coord(x+w-r) + "," + coord(y))
	b.WriteString(" Q" + coord(x+w) + "," + coord(y) + " " + coord(x+w) + "," + coord(y+r))
	b.WriteString(" L" + coord(x+w) + "," + coord(bottom))
	b.WriteString(" Z")
	return b.String()
}

func round2(v float64) float64 {
	rounded, _ := strconv.ParseFloat(coord(v), 64)
	return rounded
}
