package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidNumber indica um texto que não representa um valor numérico
var ErrInvalidNumber = errors.New("invalid number")

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseAmount converte valores monetários como "$1,200.50" ou "1200".
// Texto vazio devolve (0, false, nil); texto inválido devolve ErrInvalidNumber.
func ParseAmount(value string) (float64, bool, error) {
	value = strings.TrimSpace(value)
	if value == "" || isNullToken(value) {
		return 0, false, nil
	}

	cleaned := strings.NewReplacer("$", "", ",", "", " ", "", "USD", "", "usd", "").Replace(value)
	if cleaned == "" {
		return 0, false, ErrInvalidNumber
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, false, ErrInvalidNumber
	}

	return amount, true, nil
}

// Percentage calcula part/total*100, devolvendo 0 quando total é 0
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// Clamp limita o valor ao intervalo [min, max]
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
