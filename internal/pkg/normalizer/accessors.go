package normalizer

import (
	"strings"

	"github.com/tidwall/gjson"
)

// text reads a scalar as a string. Objects, arrays, null and missing values give "".
func text(node gjson.Result, path string) string {
	value := node.Get(path)
	switch value.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		return value.String()
	default:
		return ""
	}
}

func textOr(node gjson.Result, path, fallback string) string {
	if value := text(node, path); value != "" {
		return value
	}
	return fallback
}

func records(node gjson.Result, path string) []gjson.Result {
	value := node.Get(path)
	if !value.IsArray() {
		return nil
	}
	return value.Array()
}

// count accepts numbers and numeric strings. Anything else, or a negative count, is 0.
func count(node gjson.Result, path string) int {
	value := node.Get(path)
	if value.Type != gjson.Number && value.Type != gjson.String {
		return 0
	}
	n := int(value.Int())
	if n < 0 {
		return 0
	}
	return n
}

func fraction(node gjson.Result, path string) (float64, bool) {
	value := node.Get(path)
	switch value.Type {
	case gjson.Number:
		return value.Float(), true
	case gjson.String:
		trimmed := strings.TrimSpace(value.Str)
		if trimmed == "" {
			return 0, false
		}
		parsed := gjson.Parse(trimmed)
		if parsed.Type != gjson.Number {
			return 0, false
		}
		return parsed.Float(), true
	default:
		return 0, false
	}
}

// meanings reads a code to description lookup table. Non-object values give an empty table.
func meanings(node gjson.Result, path string) map[string]string {
	table := make(map[string]string)
	value := node.Get(path)
	if !value.IsObject() {
		return table
	}
	value.ForEach(func(key, description gjson.Result) bool {
		switch description.Type {
		case gjson.String, gjson.Number:
			table[key.String()] = description.String()
		default:
			table[key.String()] = ""
		}
		return true
	})
	return table
}

// codeList splits a delimited code string. An array of codes is accepted as well.
func codeList(node gjson.Result, path string) []string {
	value := node.Get(path)
	switch {
	case value.Type == gjson.String:
		return strings.Split(value.Str, ",")
	case value.IsArray():
		var codes []string
		for _, item := range value.Array() {
			codes = append(codes, text(item, "@this"))
		}
		return codes
	default:
		return nil
	}
}
