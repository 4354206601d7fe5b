package utils

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate indica um texto que não corresponde a nenhum formato aceito
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts são os formatos aceitos nas planilhas e CSVs, na ordem de tentativa
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"2006/1/2",
	"2006.01.02",
	"2006. 1. 2",
	"2006-1-2",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseFlexibleDate tenta todos os formatos aceitos na localização informada.
// Texto vazio devolve (nil, nil); texto não reconhecido devolve ErrInvalidDate.
func ParseFlexibleDate(value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" || isNullToken(value) {
		return nil, nil
	}

	if loc == nil {
		loc = time.Local
	}

	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return &parsed, nil
		}
	}

	return nil, ErrInvalidDate
}

// DateOnly descarta o horário, mantendo o dia civil da data
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// YearMonth formata a data como bucket mensal ordenável (yyyy-mm)
func YearMonth(t time.Time) string {
	return t.Format("2006-01")
}

// WholeDays retorna a quantidade de dias completos em d, arredondando para baixo
func WholeDays(d time.Duration) int {
	days := d / (24 * time.Hour)
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return int(days)
}

// DaysBetween conta os dias completos de from até to pelo relógio de parede
// do fuso de from, sem o desvio de uma hora das mudanças de horário de verão
func DaysBetween(from, to time.Time) int {
	return WholeDays(wallClock(to.In(from.Location())).Sub(wallClock(from)))
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func isNullToken(value string) bool {
	switch strings.ToLower(value) {
	case "nan", "nat", "null", "none", "n/a", "-":
		return true
	}
	return false
}
