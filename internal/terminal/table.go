package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	logFieldHeaders = "headers"
	logFieldData    = "data"
)

// set of exported spacing options
const (
	Indent = "  "
	Gutter = "  "
)

var (
	tableFields = []string{logFieldMessage, logFieldHeaders, logFieldData}

	errTableNoHeaders = errors.New("cannot create a table without headers")
)

type table struct {
	message string
	headers []string
	rows    []map[string]string
	widths  map[string]int
}

func newTable(message string, headers []string, data []map[string]interface{}) table {
	t := table{
		message: message,
		headers: headers,
		rows:    make([]map[string]string, 0, len(data)),
		widths:  make(map[string]int, len(headers)),
	}

	for _, header := range headers {
		t.widths[header] = len(header)
	}

	for _, row := range data {
		if len(row) == 0 {
			continue
		}

		cells := make(map[string]string, len(headers))
		for _, header := range headers {
			value := parseValue(row[header])
			if len(value) > t.widths[header] {
				t.widths[header] = len(value)
			}
			cells[header] = value
		}
		t.rows = append(t.rows, cells)
	}
	return t
}

func (t table) Message() (string, error) {
	if len(t.headers) == 0 {
		return "", errTableNoHeaders
	}

	bold := color.New(color.Bold).SprintFunc()

	headers := make([]string, len(t.headers))
	dividers := make([]string, len(t.headers))
	for i, header := range t.headers {
		headers[i] = bold(header) + t.padding(header, header)
		dividers[i] = strings.Repeat("-", t.widths[header])
	}

	lines := []string{
		t.message,
		t.line(headers),
		t.line(dividers),
	}
	for _, row := range t.rows {
		cells := make([]string, len(t.headers))
		for i, header := range t.headers {
			cells[i] = row[header] + t.padding(header, row[header])
		}
		lines = append(lines, t.line(cells))
	}
	return strings.Join(lines, "\n"), nil
}

func (t table) Payload() ([]string, map[string]interface{}, error) {
	if len(t.headers) == 0 {
		return nil, nil, errTableNoHeaders
	}
	return tableFields, map[string]interface{}{
		logFieldMessage: t.message,
		logFieldHeaders: t.headers,
		logFieldData:    t.rows,
	}, nil
}

func (t table) padding(header, value string) string {
	return strings.Repeat(" ", t.widths[header]-len(value))
}

func (t table) line(cells []string) string {
	return strings.TrimRight(Indent+strings.Join(cells, Gutter), " ")
}

func parseValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%+v", v)
	}
}
