package engine

import (
	"sort"
	"strings"

	"github.com/vegasq/fsql/internal/fsys"
	"github.com/vegasq/fsql/internal/query"
)

// Order sorts entries by the given terms: first term primary, later
// terms as tie-breakers, each with its own direction. The sort is
// stable, so entries equal on every key keep their discovery order.
func Order(entries []fsys.Entry, terms []query.OrderTerm) {
	if len(terms) == 0 {
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		for _, term := range terms {
			cmp := compareEntries(&entries[i], &entries[j], term.Field)
			if cmp == 0 {
				continue
			}
			if term.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// Limit truncates entries to at most n
func Limit(entries []fsys.Entry, n *int) []fsys.Entry {
	if n == nil || *n >= len(entries) {
		return entries
	}
	return entries[:*n]
}

// compareEntries orders two entries on one field, returning -1, 0, or 1
func compareEntries(a, b *fsys.Entry, field query.Field) int {
	switch field.Kind() {
	case query.KindNumeric:
		switch {
		case a.Size < b.Size:
			return -1
		case a.Size > b.Size:
			return 1
		}
		return 0
	case query.KindTime:
		at, bt := a.Modified, b.Modified
		if field == query.FieldCreated {
			at, bt = a.Created, b.Created
		}
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		}
		return 0
	case query.KindBool:
		av := a.Hidden
		bv := b.Hidden
		if field == query.FieldIsReadonly {
			av, bv = a.ReadOnly, b.ReadOnly
		}
		switch {
		case !av && bv:
			return -1
		case av && !bv:
			return 1
		}
		return 0
	default:
		return strings.Compare(stringField(a, field), stringField(b, field))
	}
}

func stringField(e *fsys.Entry, field query.Field) string {
	switch field {
	case query.FieldName:
		return e.Name
	case query.FieldPath:
		return e.Path
	case query.FieldExt:
		return e.Ext
	case query.FieldPermissions:
		return e.Permissions
	case query.FieldOwner:
		return e.Owner
	case query.FieldType:
		return string(e.Type)
	default:
		return ""
	}
}
