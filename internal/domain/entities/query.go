package entities

import (
	"sort"
	"strings"
)

// Collection names as they appear in the per-organization namespace.
const (
	CollectionProperties        = "properties"
	CollectionTenants           = "tenants"
	CollectionRentals           = "rentals"
	CollectionPayments          = "payments"
	CollectionMaintenance       = "maintenance"
	CollectionExpenses          = "expenses"
	CollectionLogs              = "logs"
	CollectionContractTemplates = "contractTemplates"

	SubcollectionDocuments          = "documents"
	SubcollectionServiceReceipts    = "serviceReceipts"
	SubcollectionGeneratedContracts = "generatedContracts"
)

// ChildCollection builds the path of a subcollection owned by one record,
// e.g. "rentals/r1/generatedContracts".
func ChildCollection(parent, parentID, child string) string {
	return parent + "/" + parentID + "/" + child
}

type FilterOp string

const (
	OpEq  FilterOp = "=="
	OpLt  FilterOp = "<"
	OpLte FilterOp = "<="
	OpGt  FilterOp = ">"
	OpGte FilterOp = ">="
)

type Filter struct {
	Field string
	Op    FilterOp
	Value any
}

func Where(field string, op FilterOp, value any) Filter {
	return Filter{Field: field, Op: op, Value: value}
}

// Query is the small query model of the record store: equality and range
// filters combined with AND, plus one optional ordering field.
type Query struct {
	Filters    []Filter
	OrderBy    string
	Descending bool
}

func (q Query) Matches(d Document) bool {
	for _, f := range q.Filters {
		if !f.Matches(d) {
			return false
		}
	}
	return true
}

func (f Filter) Matches(d Document) bool {
	v, ok := d[f.Field]
	if !ok || v == nil {
		return false
	}
	c, ok := compare(v, f.Value)
	if !ok {
		return false
	}
	switch f.Op {
	case OpEq:
		return c == 0
	case OpLt:
		return c < 0
	case OpLte:
		return c <= 0
	case OpGt:
		return c > 0
	case OpGte:
		return c >= 0
	default:
		return false
	}
}

// Sort orders docs in place by q.OrderBy; a query without ordering leaves docs untouched.
func (q Query) Sort(docs []Document) {
	if q.OrderBy == "" {
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		c, ok := compare(docs[i][q.OrderBy], docs[j][q.OrderBy])
		if !ok {
			return false
		}
		if q.Descending {
			return c > 0
		}
		return c < 0
	})
}

func compare(a, b any) (int, bool) {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(as, bs), true
	}
	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		if !ok {
			return 0, false
		}
		if ab == bb {
			return 0, true
		}
		if !ab {
			return -1, true
		}
		return 1, true
	}
	af, ok := ToFloat(a)
	if !ok {
		return 0, false
	}
	bf, ok := ToFloat(b)
	if !ok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}
