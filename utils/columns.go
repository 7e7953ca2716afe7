package utils

import (
	"reflect"
)

// ColumnList returns the list of "db" struct tags of T, in declaration
// order, for use in squirrel Select clauses.
func ColumnList[T any](prefix ...string) []string {
	var value T
	t := reflect.TypeOf(value)

	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		if len(prefix) > 0 {
			tag = prefix[0] + "." + tag
		}
		columns = append(columns, tag)
	}
	return columns
}
