// Package engine executes parsed queries against the filesystem:
// condition evaluation, ordering, limiting, and the plan/commit
// deletion protocol.
package engine

import (
	"strings"
	"time"

	"github.com/vegasq/fsql/internal/fsys"
	"github.com/vegasq/fsql/internal/query"
)

// Evaluate applies a condition tree to one entry. It is pure: no
// mutation, no I/O. A type-mismatched comparison is a non-match, never
// an error.
func Evaluate(node query.ConditionNode, e *fsys.Entry) bool {
	switch n := node.(type) {
	case *query.Comparison:
		return evalComparison(n, e)
	case *query.Boolean:
		left := Evaluate(n.Left, e)
		right := Evaluate(n.Right, e)
		if n.Op == query.BoolAnd {
			return left && right
		}
		return left || right
	default:
		return false
	}
}

func evalComparison(c *query.Comparison, e *fsys.Entry) bool {
	switch c.Field.Kind() {
	case query.KindNumeric:
		return evalNumeric(c, e)
	case query.KindTime:
		return evalTime(c, e)
	case query.KindBool:
		return evalBool(c, e)
	default:
		return evalString(c, e)
	}
}

func evalNumeric(c *query.Comparison, e *fsys.Entry) bool {
	want, ok := c.Value.Bytes()
	if !ok {
		// Non-numeric value or unrecognized size unit
		return false
	}
	return compareNumbers(float64(e.Size), c.Op, want)
}

func evalBool(c *query.Comparison, e *fsys.Entry) bool {
	if c.Value.Kind != query.ValueBool {
		return false
	}
	var have bool
	switch c.Field {
	case query.FieldIsHidden:
		have = e.Hidden
	case query.FieldIsReadonly:
		have = e.ReadOnly
	default:
		return false
	}
	switch c.Op {
	case query.OpEqual:
		return have == c.Value.Bool
	case query.OpNotEqual:
		return have != c.Value.Bool
	default:
		return false
	}
}

func evalString(c *query.Comparison, e *fsys.Entry) bool {
	if c.Value.Kind != query.ValueString {
		return false
	}
	var have string
	switch c.Field {
	case query.FieldName:
		have = e.Name
	case query.FieldPath:
		have = e.Path
	case query.FieldExt:
		if e.Ext == "" {
			// No extension never matches, not even under !=
			return false
		}
		have = e.Ext
	case query.FieldPermissions:
		have = e.Permissions
	case query.FieldOwner:
		have = e.Owner
	case query.FieldType:
		have = string(e.Type)
	default:
		return false
	}

	want := c.Value.Text
	switch c.Op {
	case query.OpEqual:
		return have == want
	case query.OpNotEqual:
		return have != want
	case query.OpLess:
		return have < want
	case query.OpLessEqual:
		return have <= want
	case query.OpGreater:
		return have > want
	case query.OpGreaterEqual:
		return have >= want
	case query.OpLike:
		return likeMatch(have, want)
	case query.OpContains:
		return strings.Contains(strings.ToLower(have), strings.ToLower(want))
	default:
		return false
	}
}

// Accepted timestamp layouts, tried in order
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

const dateOnlyLayout = "2006-01-02"

func evalTime(c *query.Comparison, e *fsys.Entry) bool {
	var have time.Time
	switch c.Field {
	case query.FieldModified:
		have = e.Modified
	case query.FieldCreated:
		have = e.Created
	default:
		return false
	}

	switch c.Value.Kind {
	case query.ValueNumber:
		want := time.Unix(int64(c.Value.Num), 0)
		return compareTimes(have, c.Op, want)
	case query.ValueString:
		text := c.Value.Text
		if want, err := time.ParseInLocation(dateOnlyLayout, text, time.Local); err == nil {
			// A bare date compares by calendar day under equality and
			// as a midnight instant under ordering
			switch c.Op {
			case query.OpEqual:
				return sameDate(have, want)
			case query.OpNotEqual:
				return !sameDate(have, want)
			default:
				return compareTimes(have, c.Op, want)
			}
		}
		for _, layout := range timeLayouts {
			if want, err := time.ParseInLocation(layout, text, time.Local); err == nil {
				return compareTimes(have, c.Op, want)
			}
		}
		return false
	default:
		return false
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func compareTimes(left time.Time, op query.Operator, right time.Time) bool {
	switch op {
	case query.OpEqual:
		return left.Equal(right)
	case query.OpNotEqual:
		return !left.Equal(right)
	case query.OpLess:
		return left.Before(right)
	case query.OpLessEqual:
		return left.Before(right) || left.Equal(right)
	case query.OpGreater:
		return left.After(right)
	case query.OpGreaterEqual:
		return left.After(right) || left.Equal(right)
	default:
		return false
	}
}

func compareNumbers(left float64, op query.Operator, right float64) bool {
	switch op {
	case query.OpEqual:
		return left == right
	case query.OpNotEqual:
		return left != right
	case query.OpLess:
		return left < right
	case query.OpLessEqual:
		return left <= right
	case query.OpGreater:
		return left > right
	case query.OpGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// likeMatch matches str against a glob pattern, case-insensitively.
// '*' and '%' match any run of characters; '?' and '_' match exactly
// one character. The whole string must match, as if the pattern were
// the anchored regex ^...$.
func likeMatch(str, pattern string) bool {
	s := strings.ToLower(str)
	p := strings.ToLower(pattern)
	p = strings.ReplaceAll(p, "*", "%")
	p = strings.ReplaceAll(p, "?", "_")

	// Greedy match with backtracking: remember the last '%' and the
	// string position it was tried at, and on a mismatch re-expand that
	// '%' by one character. Earlier wildcards never need revisiting.
	si, pi := 0, 0
	star, starSi := -1, 0

	for si < len(s) {
		switch {
		case pi < len(p) && (p[pi] == '_' || p[pi] == s[si]):
			si++
			pi++
		case pi < len(p) && p[pi] == '%':
			star = pi
			starSi = si
			pi++
		case star >= 0:
			starSi++
			si = starSi
			pi = star + 1
		default:
			return false
		}
	}

	for pi < len(p) && p[pi] == '%' {
		pi++
	}
	return pi == len(p)
}
