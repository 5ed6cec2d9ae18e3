package service

import (
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/grachmannico95/verbs-service/internal/domain"
)

const utf8BOM = "\ufeff"

type CSVOption func(*csv.Reader)

// WithDelimiter sets the field separator. It is never guessed from the input.
func WithDelimiter(delimiter rune) CSVOption {
	return func(r *csv.Reader) {
		r.Comma = delimiter
	}
}

// ParseCSV yields one Row per data line of text. The first non-empty line is
// the header. Every data line must have as many fields as the header and
// every quoted field must be closed; the first malformed line yields a
// *domain.ParseError and ends the sequence. A bare quote inside an unquoted
// field is kept as text. Each range over the sequence parses text again from
// the start.
func ParseCSV(text string, opts ...CSVOption) iter.Seq2[domain.Row, error] {
	return func(yield func(domain.Row, error) bool) {
		reader := csv.NewReader(strings.NewReader(text))
		reader.LazyQuotes = true
		for _, opt := range opts {
			opt(reader)
		}

		var offset int64
		read := func() ([]string, error) {
			record, err := reader.Read()
			if err != nil {
				return nil, err
			}
			start := offset
			offset = reader.InputOffset()
			if unterminatedQuote(text[start:offset], reader.Comma) {
				line, _ := reader.FieldPos(0)
				return nil, &domain.ParseError{Line: line, Err: csv.ErrQuote}
			}
			return record, nil
		}

		header, err := read()
		if err == io.EOF {
			return
		}
		if err != nil {
			yield(nil, toParseError(err))
			return
		}

		header[0] = strings.TrimPrefix(header[0], utf8BOM)
		reader.FieldsPerRecord = len(header)

		for {
			record, err := read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, toParseError(err))
				return
			}

			row := make(domain.Row, len(header))
			for i, key := range header {
				row[i] = domain.Field{Key: key, Value: record[i]}
			}

			if !yield(row, nil) {
				return
			}
		}
	}
}

// CollectRows drains seq. It returns a non-nil, possibly empty slice on
// success and stops at the first error.
func CollectRows(seq iter.Seq2[domain.Row, error]) ([]domain.Row, error) {
	rows := []domain.Row{}
	for row, err := range seq {
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// unterminatedQuote reports whether raw, the text of one record, opens a
// quoted field that is never closed. Lazy quoting lets such a field run to
// the end of the input instead of failing, so it is checked here. A quote
// inside a quoted field closes it only when followed by the delimiter, a line
// break or the end of the input, the same rule the lazy reader applies.
func unterminatedQuote(raw string, comma rune) bool {
	delimiter := string(comma)
	fieldStart := true
	for i := 0; i < len(raw); {
		if !fieldStart || raw[i] != '"' {
			r, size := utf8.DecodeRuneInString(raw[i:])
			fieldStart = r == comma || r == '\n'
			i += size
			continue
		}

		j := i + 1
		for {
			k := strings.IndexByte(raw[j:], '"')
			if k < 0 {
				return true
			}
			j += k + 1
			rest := raw[j:]
			if strings.HasPrefix(rest, `"`) {
				j++
				continue
			}
			if rest == "" || rest == "\r" || strings.HasPrefix(rest, "\n") ||
				strings.HasPrefix(rest, "\r\n") || strings.HasPrefix(rest, delimiter) {
				break
			}
		}
		i = j
		fieldStart = false
	}
	return false
}

func toParseError(err error) error {
	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) {
		return err
	}
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &domain.ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &domain.ParseError{Err: err}
}
