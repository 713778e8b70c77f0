package schema

import (
	"fmt"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
)

// Resolver gives read access to the records a reference field may point to.
type Resolver interface {
	Find(collection, id string) (entities.Document, bool)
	Collection(name string) []entities.Document
}

type Column struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type Row struct {
	ID    string   `json:"id"`
	Cells []string `json:"cells"`
}

type Table struct {
	Title   string   `json:"title"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

type FormField struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Kind        string   `json:"kind"`
	Required    bool     `json:"required"`
	Default     string   `json:"default,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Rows        int      `json:"rows,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Value       any      `json:"value,omitempty"`
}

func FormatMoney(v float64) string {
	return fmt.Sprintf("S/ %.2f", v)
}

func (s Schema) Table(records []entities.Document, r Resolver) Table {
	t := Table{Title: s.Title, Columns: make([]Column, 0, len(s.Fields)), Rows: make([]Row, 0, len(records))}
	for _, f := range s.Fields {
		t.Columns = append(t.Columns, Column{Name: f.Name, Label: f.Label})
	}
	for _, rec := range records {
		row := Row{ID: rec.ID(), Cells: make([]string, 0, len(s.Fields))}
		for _, f := range s.Fields {
			row.Cells = append(row.Cells, f.Render(rec, r))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Render formats one cell. Unresolvable references show "N/A".
func (f Field) Render(d entities.Document, r Resolver) string {
	switch f.Kind {
	case KindText, KindTextArea, KindEmail, KindPhone, KindSelect:
		return d.String(f.Name)
	case KindNumber:
		if _, ok := d[f.Name]; !ok {
			return ""
		}
		if f.Money {
			return FormatMoney(d.Float(f.Name))
		}
		return d.String(f.Name)
	case KindDate:
		return dates.FormatLong(d.String(f.Name))
	case KindReference:
		ref, ok := r.Find(f.Options.Collection, d.String(f.Name))
		if !ok {
			return "N/A"
		}
		return labelOf(ref, f.Options.Label, r)
	case KindPhotos:
		n := len(d.Strings(f.Name))
		if n == 0 {
			return ""
		}
		return fmt.Sprintf("%d foto(s)", n)
	}
	return ""
}

// Form describes the edit form; current, when non-nil, pre-fills values.
func (s Schema) Form(current entities.Document, r Resolver) []FormField {
	out := make([]FormField, 0, len(s.Fields))
	for _, f := range s.Fields {
		ff := FormField{
			Name:        f.Name,
			Label:       f.Label,
			Kind:        f.Kind.String(),
			Required:    f.Required,
			Default:     f.Default,
			Placeholder: f.Placeholder,
			Rows:        f.Rows,
			Options:     f.ResolveOptions(r),
		}
		if current != nil {
			ff.Value = current[f.Name]
		}
		out = append(out, ff)
	}
	return out
}

func (f Field) ResolveOptions(r Resolver) []Option {
	switch f.Kind {
	case KindSelect:
		return append([]Option(nil), f.Options.Static...)
	case KindReference:
		q := entities.Query{Filters: f.Options.Where}
		var out []Option
		for _, d := range r.Collection(f.Options.Collection) {
			if q.Matches(d) {
				out = append(out, Option{Value: d.ID(), Label: labelOf(d, f.Options.Label, r)})
			}
		}
		return out
	case KindText, KindTextArea, KindEmail, KindPhone, KindNumber, KindDate, KindPhotos:
		return nil
	}
	return nil
}

func labelOf(d entities.Document, style LabelStyle, r Resolver) string {
	switch style {
	case LabelRentalParties:
		return nameOf(r, entities.CollectionTenants, d.String("tenantId")) + " - " +
			nameOf(r, entities.CollectionProperties, d.String("propertyId"))
	default:
		return d.String("name")
	}
}

func nameOf(r Resolver, collection, id string) string {
	d, ok := r.Find(collection, id)
	if !ok {
		return "N/A"
	}
	return d.String("name")
}
