package dashboard

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/vfg2006/heladeria-dashboard/internal/domain"
)

// int64 comporta qualquer inteiro com até 18 dígitos
const maxPrinterDigits = 18

// formatter concentra a formatação de números exibidos no painel
type formatter struct {
	printer    *message.Printer
	groupSep   string
	decimalSep string
}

func newFormatter(tag language.Tag) formatter {
	p := message.NewPrinter(tag)
	f := formatter{
		printer:    p,
		groupSep:   firstSymbol(p.Sprintf("%d", 1000000)),
		decimalSep: firstSymbol(p.Sprintf("%v", number.Decimal(1.5, number.Scale(1)))),
	}
	if f.decimalSep == "" {
		f.decimalSep = "."
	}
	return f
}

// firstSymbol extrai o primeiro separador de um número já formatado pelo idioma
func firstSymbol(s string) string {
	start := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if start < 0 {
		return ""
	}
	end := strings.IndexFunc(s[start:], unicode.IsDigit)
	if end < 0 {
		return s[start:]
	}
	return s[start : start+end]
}

// grouped formata uma sequência de dígitos com separador de milhar do idioma (es: 2.450.000)
func (f formatter) grouped(digits string) string {
	if len(digits) <= maxPrinterDigits {
		if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
			return f.printer.Sprintf("%d", n)
		}
	}

	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(f.groupSep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// fixed formata d com exatamente places casas decimais, sem limite de magnitude
func (f formatter) fixed(d decimal.Decimal, places int32) string {
	fixed := d.Abs().StringFixed(places)
	integer, fraction, _ := strings.Cut(fixed, ".")

	out := f.grouped(integer)
	if fraction != "" {
		out += f.decimalSep + fraction
	}
	if d.IsNegative() && strings.Trim(fixed, "0.") != "" {
		out = "-" + out
	}
	return out
}

// currency formata pesos chilenos, descartando centavos
func (f formatter) currency(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "$" + strconv.FormatFloat(v, 'f', -1, 64)
	}
	return "$" + f.fixed(decimal.NewFromFloat(v).Truncate(0), 0)
}

// decimal mantém as casas informadas no dado de origem (98000.5 -> 98.000,5)
func (f formatter) decimal(d decimal.Decimal) string {
	return f.fixed(d, decimalPlaces(d))
}

func (f formatter) metricValue(card domain.MetricCard) string {
	if card.Currency && !card.Value.IsText() {
		return f.currency(card.Value.Number())
	}
	return card.Value.String()
}

// decimalPlaces conta as casas significativas de d, ignorando zeros à direita
func decimalPlaces(d decimal.Decimal) int32 {
	s := d.String()
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return int32(len(s) - i - 1)
	}
	return 0
}

// percent exibe o valor absoluto da variação na menor forma decimal
func percent(change float64) string {
	return strconv.FormatFloat(math.Abs(change), 'f', -1, 64)
}

// coord fixa duas casas para que o SVG gerado seja estável entre renderizações
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
