package utils

import (
	"bytes"
	"os"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"iso", "2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, loc)},
		{"com horário", "2024-03-01 10:30:00", time.Date(2024, 3, 1, 10, 30, 0, 0, loc)},
		{"barras", "2024/3/5", time.Date(2024, 3, 5, 0, 0, 0, 0, loc)},
		{"americano", "03/01/2024", time.Date(2024, 3, 1, 0, 0, 0, 0, loc)},
		{"por extenso", "March 1, 2024", time.Date(2024, 3, 1, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlexibleDate(tt.value, loc)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got))
		})
	}

	t.Run("vazio e marcadores nulos", func(t *testing.T) {
		for _, value := range []string{"", "  ", "NaT", "null", "-"} {
			got, err := ParseFlexibleDate(value, loc)
			assert.NoError(t, err)
			assert.Nil(t, got)
		}
	})

	t.Run("texto inválido", func(t *testing.T) {
		_, err := ParseFlexibleDate("someday", loc)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestParseAmount(t *testing.T) {
	amount, ok, err := ParseAmount("$1,200.50")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1200.5, amount)

	amount, ok, err = ParseAmount("")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, amount)

	_, _, err = ParseAmount("abc")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestWholeDays(t *testing.T) {
	assert.Equal(t, 2, WholeDays(60*time.Hour))
	assert.Equal(t, 0, WholeDays(time.Hour))
	assert.Equal(t, -1, WholeDays(-time.Hour))
	assert.Equal(t, -2, WholeDays(-48*time.Hour))
}

func TestDaysBetween(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("atravessa o início do horário de verão", func(t *testing.T) {
		from := time.Date(2024, 3, 1, 0, 0, 0, 0, ny)
		to := time.Date(2024, 3, 20, 0, 0, 0, 0, ny)
		assert.Equal(t, 19, DaysBetween(from, to))
		assert.Equal(t, -19, DaysBetween(to, from))
	})

	t.Run("atravessa o fim do horário de verão", func(t *testing.T) {
		from := time.Date(2024, 11, 1, 12, 0, 0, 0, ny)
		to := time.Date(2024, 11, 4, 11, 0, 0, 0, ny)
		assert.Equal(t, 2, DaysBetween(from, to))
	})

	t.Run("instantes em fusos diferentes", func(t *testing.T) {
		from := time.Date(2024, 3, 1, 0, 0, 0, 0, ny)
		to := time.Date(2024, 3, 20, 4, 0, 0, 0, time.UTC)
		assert.Equal(t, 19, DaysBetween(from, to))
	})
}

func TestPercentageAndClamp(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 50.0, Percentage(1, 2))
	assert.Equal(t, 100.0, Clamp(140, 0, 100))
	assert.Equal(t, 0.0, Clamp(-5, 0, 100))
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.234))
}

func TestGenerateSessionID(t *testing.T) {
	first, err := GenerateSessionID()
	require.NoError(t, err)
	second, err := GenerateSessionID()
	require.NoError(t, err)

	assert.Len(t, first, sessionIDLength)
	assert.NotEqual(t, first, second)
}

func TestPrettyJson(t *testing.T) {
	pretty := PrettyJson([]byte(`{"a":1}`))
	assert.Contains(t, pretty, `"a": 1`)
	assert.Contains(t, pretty, "\n")
}

func TestPrettyJson_ErrorsGoToTheLogger(t *testing.T) {
	var logs bytes.Buffer
	logrus.SetOutput(&logs)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	assert.Equal(t, "not json", PrettyJson([]byte("not json")))
	assert.Contains(t, logs.String(), "utils: input is not json")

	assert.Empty(t, PrettyJson(make(chan int)))
	assert.Contains(t, logs.String(), "utils: could not encode json")
}
