package service

import (
	"encoding/csv"
	"errors"
	"testing"

	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_HeaderAndRows(t *testing.T) {
	text := "name,translation,example\nrun,бягам,I run\nwrite,пиша,\"a, b\"\n"

	rows, err := CollectRows(ParseCSV(text))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.Row{
		{Key: "name", Value: "run"},
		{Key: "translation", Value: "бягам"},
		{Key: "example", Value: "I run"},
	}, rows[0])
	assert.Equal(t, map[string]string{
		"name":        "write",
		"translation": "пиша",
		"example":     "a, b",
	}, rows[1].Map())
}

func TestParseCSV_SemicolonDelimiter(t *testing.T) {
	text := "name;translation\nrun;бягам\n"

	rows, err := CollectRows(ParseCSV(text, WithDelimiter(';')))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	value, ok := rows[0].Get("translation")
	assert.True(t, ok)
	assert.Equal(t, "бягам", value)
}

func TestParseCSV_SemicolonFileWithDefaultDelimiterIsOneColumn(t *testing.T) {
	rows, err := CollectRows(ParseCSV("name;translation\nrun;бягам\n"))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"name;translation"}, rows[0].Keys())
}

func TestParseCSV_SkipsLeadingBlankLinesAndBOM(t *testing.T) {
	text := "\n\n\ufeffname,translation\r\nrun,бягам\r\n"

	rows, err := CollectRows(ParseCSV(text))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"name", "translation"}, rows[0].Keys())
}

func TestParseCSV_EmptyInput(t *testing.T) {
	rows, err := CollectRows(ParseCSV(""))
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	rows, err = CollectRows(ParseCSV("name,translation\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseCSV_FieldCountMismatch(t *testing.T) {
	text := "name,translation\nrun,бягам\nwrite\nread,чета\n"

	rows, err := CollectRows(ParseCSV(text))

	assert.Nil(t, rows)
	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
	assert.True(t, errors.Is(err, csv.ErrFieldCount))
}

func TestParseCSV_UnterminatedQuote(t *testing.T) {
	text := "name,translation\nrun,\"бягам\n"

	_, err := CollectRows(ParseCSV(text))

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
	assert.ErrorIs(t, err, csv.ErrQuote)
}

func TestParseCSV_BareQuotesAreKept(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"unquoted field", "name,translation,example\nsay,казвам,He said \"run\" twice\n", `He said "run" twice`},
		{"quoted field", "name,translation,example\nsay,казвам,\"He said \"run\" twice\"\n", `He said "run" twice`},
		{"escaped quotes", "name,translation,example\nsay,казвам,\"He said \"\"run\"\" twice\"\n", `He said "run" twice`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := CollectRows(ParseCSV(tt.text))

			require.NoError(t, err)
			require.Len(t, rows, 1)
			value, _ := rows[0].Get("example")
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestParseCSV_UnterminatedQuoteAfterBareQuote(t *testing.T) {
	text := "name,example\nsay,He said \"run\"\nrun,\"I run\nwalk,I walk\n"

	_, err := CollectRows(ParseCSV(text))

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
	assert.ErrorIs(t, err, csv.ErrQuote)
}

func TestParseCSV_IsLazy(t *testing.T) {
	// The malformed third line is never reached when the caller stops early.
	text := "name,translation\nrun,бягам\nbroken\n"

	var seen []domain.Row
	for row, err := range ParseCSV(text) {
		require.NoError(t, err)
		seen = append(seen, row)
		break
	}

	require.Len(t, seen, 1)
	value, _ := seen[0].Get("name")
	assert.Equal(t, "run", value)
}

func TestParseCSV_PreservesRowOrder(t *testing.T) {
	text := "name\na\nb\nc\nd\n"

	rows, err := CollectRows(ParseCSV(text))

	require.NoError(t, err)
	var names []string
	for _, row := range rows {
		name, _ := row.Get("name")
		names = append(names, name)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, names)
}

func TestRow_LookupIsCaseInsensitive(t *testing.T) {
	row := domain.Row{{Key: " Name ", Value: "run"}, {Key: "name", Value: "walk"}}

	value, ok := row.Lookup("NAME")
	assert.True(t, ok)
	assert.Equal(t, "walk", value)

	_, ok = row.Get("NAME")
	assert.False(t, ok)
}
