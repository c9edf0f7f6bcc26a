package terminal

import (
	"strings"
)

var (
	listFields = []string{logFieldMessage, logFieldData}
)

type list struct {
	message string
	data    []string
}

func newList(message string, data []interface{}) list {
	items := make([]string, 0, len(data))
	for _, item := range data {
		items = append(items, parseValue(item))
	}
	return list{message, items}
}

func (l list) Message() (string, error) {
	lines := make([]string, 0, len(l.data)+1)
	lines = append(lines, l.message)
	for _, item := range l.data {
		lines = append(lines, Indent+item)
	}
	return strings.Join(lines, "\n"), nil
}

func (l list) Payload() ([]string, map[string]interface{}, error) {
	return listFields, map[string]interface{}{
		logFieldMessage: l.message,
		logFieldData:    l.data,
	}, nil
}
