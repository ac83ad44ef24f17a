package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricValue_String(t *testing.T) {
	assert.Equal(t, "1248", NumberValue(1248).String())
	assert.Equal(t, "8.4", NumberValue(8.4).String())
	assert.Equal(t, "$2.450.000", TextValue("$2.450.000").String())
	assert.Equal(t, "0", MetricValue{}.String())

	text := TextValue("Sin datos")
	assert.Equal(t, text.Text(), text.String())
	assert.Empty(t, NumberValue(3).Text())
}

func TestParseMetricValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		wantText bool
		want     string
		wantErr  bool
	}{
		{name: "inteiro", raw: 312, want: "312"},
		{name: "float", raw: 6.9, want: "6.9"},
		{name: "texto", raw: "$2.450.000", wantText: true, want: "$2.450.000"},
		{name: "json.Number", raw: json.Number("198"), want: "198"},
		{name: "nulo", raw: nil, want: "0"},
		{name: "tipo inválido", raw: []string{"x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseMetricValue(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantText, v.IsText())
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestMetricCard_JSONKeepsValueKind(t *testing.T) {
	cards := []MetricCard{
		{Title: "Unidades Vendidas", Value: NumberValue(1248), ChangePercent: 8.4},
		{Title: "Dinero Recibido", Value: TextValue("$2.450.000"), ChangePercent: -1.2},
	}

	data, err := json.Marshal(cards)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"title":"Unidades Vendidas","value":1248,"change_percent":8.4},
		{"title":"Dinero Recibido","value":"$2.450.000","change_percent":-1.2}
	]`, string(data))

	var decoded []MetricCard
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.False(t, decoded[0].Value.IsText())
	assert.Equal(t, 1248.0, decoded[0].Value.Number())
	assert.True(t, decoded[1].Value.IsText())
}
