package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MetricValue é o valor de um card: um número ou um texto já formatado
type MetricValue struct {
	number float64
	text   string
	isText bool
}

// NumberValue cria um valor numérico
func NumberValue(n float64) MetricValue {
	return MetricValue{number: n}
}

// TextValue cria um valor textual exibido sem alterações
func TextValue(s string) MetricValue {
	return MetricValue{text: s, isText: true}
}

// ParseMetricValue converte o valor lido de um arquivo (número ou texto)
func ParseMetricValue(raw any) (MetricValue, error) {
	switch v := raw.(type) {
	case nil:
		return MetricValue{}, nil
	case MetricValue:
		return v, nil
	case string:
		return TextValue(v), nil
	case float64:
		return NumberValue(v), nil
	case float32:
		return NumberValue(float64(v)), nil
	case int:
		return NumberValue(float64(v)), nil
	case int32:
		return NumberValue(float64(v)), nil
	case int64:
		return NumberValue(float64(v)), nil
	case uint:
		return NumberValue(float64(v)), nil
	case uint64:
		return NumberValue(float64(v)), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return MetricValue{}, err
		}
		return NumberValue(f), nil
	default:
		return MetricValue{}, fmt.Errorf("domain: tipo de valor de métrica não suportado: %T", raw)
	}
}

func (v MetricValue) IsText() bool {
	return v.isText
}

func (v MetricValue) Number() float64 {
	return v.number
}

func (v MetricValue) Text() string {
	return v.text
}

// String devolve o texto literal ou o número na menor forma decimal (1248, 8.4)
func (v MetricValue) String() string {
	if v.isText {
		return v.Text()
	}
	return strconv.FormatFloat(v.number, 'f', -1, 64)
}

func (v MetricValue) MarshalJSON() ([]byte, error) {
	if v.isText {
		return json.Marshal(v.text)
	}
	return json.Marshal(v.number)
}

func (v *MetricValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseMetricValue(raw)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}
