package models

import (
	"reflect"
	"strings"
)

// SchemaInfo describes an entity type for admin tooling.
type SchemaInfo struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// Schemas lists the declared field names of every entity type, keyed by
// the collection each is stored in.
func Schemas() []SchemaInfo {
	return []SchemaInfo{
		{Name: "service", Fields: fieldNames(Service{})},
		{Name: "booking", Fields: fieldNames(Booking{})},
	}
}

func fieldNames(entity interface{}) []string {
	t := reflect.TypeOf(entity)
	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name := strings.SplitN(tag, ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, name)
	}
	return fields
}
