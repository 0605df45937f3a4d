package models

import (
	"reflect"
	"strings"
)

// FieldDoc describes one documented record field for schema generation.
type FieldDoc struct {
	Name        string // JSON field name
	Type        string // Go type of the field
	Description string // human-readable description from the desc tag
}

// FieldDocs returns all documented fields of a record in declaration order.
func FieldDocs(rec any) []FieldDoc {
	return fieldDocs(rec, nil)
}

// SchemaDocs returns the fields of a record as presented in generated schema
// views. Records implementing SchemaExclude (DialogueScenario) hide the
// listed fields; prompt construction fills those separately.
func SchemaDocs(rec any) []FieldDoc {
	var exclude []string
	if ex, ok := rec.(interface{ SchemaExclude() []string }); ok {
		exclude = ex.SchemaExclude()
	}
	return fieldDocs(rec, exclude)
}

func fieldDocs(rec any, exclude []string) []FieldDoc {
	hidden := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		hidden[name] = true
	}

	t := reflect.TypeOf(rec)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var docs []FieldDoc
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" || hidden[name] {
			continue
		}
		docs = append(docs, FieldDoc{
			Name:        name,
			Type:        f.Type.String(),
			Description: f.Tag.Get("desc"),
		})
	}
	return docs
}
