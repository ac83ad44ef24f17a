package repository

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/heladeria-dashboard/internal/domain"
)

var (
	decimalType     = reflect.TypeOf(decimal.Decimal{})
	metricValueType = reflect.TypeOf(domain.MetricValue{})
)

// decimalHookFunc converte números e strings do arquivo em decimal.Decimal
func decimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case decimal.Decimal:
			return v, nil
		case string:
			return decimal.NewFromString(v)
		case json.Number:
			return decimal.NewFromString(v.String())
		case float64:
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return nil, fmt.Errorf("valor %v não é um número finito", v)
			}
			return decimal.NewFromFloat(v), nil
		case float32:
			if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
				return nil, fmt.Errorf("valor %v não é um número finito", v)
			}
			return decimal.NewFromFloat32(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int32:
			return decimal.NewFromInt32(v), nil
		case int64:
			return decimal.NewFromInt(v), nil
		default:
			return nil, fmt.Errorf("valor %v (%s) não é numérico", data, from)
		}
	}
}

// integerHookFunc recusa números com parte fracionária em campos inteiros (units_sold: 420.7)
func integerHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		switch to.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		default:
			return data, nil
		}

		var f float64
		switch v := data.(type) {
		case float64:
			f = v
		case float32:
			f = float64(v)
		default:
			return data, nil
		}

		if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
			return nil, fmt.Errorf("valor %v não é um número inteiro", data)
		}
		return data, nil
	}
}

// metricValueHookFunc aceita número ou texto no campo value de um card
func metricValueHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != metricValueType {
			return data, nil
		}
		return domain.ParseMetricValue(data)
	}
}
