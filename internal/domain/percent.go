package domain

import "strconv"

// PercentChange calcula a variação percentual entre dois períodos, arredondada a uma casa.
// Sem período anterior a variação é ±100; sem movimento nos dois períodos é 0.
// O arredondamento é feito sobre o valor binário exato do float, com empate para o par.
func PercentChange(current, previous float64) float64 {
	if previous == 0 && current == 0 {
		return 0
	}

	if previous == 0 {
		if current > 0 {
			return 100
		}
		return -100
	}

	change := ((current - previous) / previous) * 100
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(change, 'f', 1, 64), 64)
	return rounded
}
