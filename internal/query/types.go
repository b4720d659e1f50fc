// Package query provides parsing for the fsql query language.
//
// It implements a small SQL-like language for selecting and deleting
// filesystem entries, with WHERE conditions, ORDER BY and LIMIT clauses.
// The package includes a lexer for tokenization and a recursive-descent
// parser that builds a typed Query.
//
// Example usage:
//
//	q, err := query.Parse(`select * from . where size > 10mb`)
//	if err != nil {
//	    log.Fatal(err)
//	}
package query

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenSelect TokenType = iota
	TokenDelete
	TokenRecursive
	TokenFirst
	TokenMany
	TokenFrom
	TokenWhere
	TokenAnd
	TokenOr
	TokenOrder
	TokenBy
	TokenAsc
	TokenDesc
	TokenLimit
	TokenLike
	TokenContains

	// Operators
	TokenEqual        // =
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Literals
	TokenString
	TokenNumber
	TokenBool
	TokenIdent

	// Delimiters
	TokenStar       // *
	TokenComma      // ,
	TokenLeftParen  // (
	TokenRightParen // )
	TokenSemicolon  // ;

	// Special
	TokenEOF
	TokenError
)

var tokenNames = map[TokenType]string{
	TokenSelect:       "select",
	TokenDelete:       "delete",
	TokenRecursive:    "recursive",
	TokenFirst:        "first",
	TokenMany:         "many",
	TokenFrom:         "from",
	TokenWhere:        "where",
	TokenAnd:          "and",
	TokenOr:           "or",
	TokenOrder:        "order",
	TokenBy:           "by",
	TokenAsc:          "asc",
	TokenDesc:         "desc",
	TokenLimit:        "limit",
	TokenLike:         "like",
	TokenContains:     "contains",
	TokenEqual:        "=",
	TokenNotEqual:     "!=",
	TokenLess:         "<",
	TokenGreater:      ">",
	TokenLessEqual:    "<=",
	TokenGreaterEqual: ">=",
	TokenString:       "string",
	TokenNumber:       "number",
	TokenBool:         "boolean",
	TokenIdent:        "identifier",
	TokenStar:         "*",
	TokenComma:        ",",
	TokenLeftParen:    "(",
	TokenRightParen:   ")",
	TokenSemicolon:    ";",
	TokenEOF:          "end of query",
	TokenError:        "invalid token",
}

// String returns a human-readable name for the token type
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
	Pos   int // byte offset in the query text
}

// Operator represents a comparison operator in a WHERE clause
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpLike
	OpContains
)

// String returns the query-language spelling of the operator
func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpLike:
		return "like"
	case OpContains:
		return "contains"
	default:
		return "unknown"
	}
}

// BooleanOp represents a logical combinator between conditions
type BooleanOp int

const (
	BoolAnd BooleanOp = iota
	BoolOr
)

// ConditionNode is a node in the WHERE condition tree: either a
// Comparison leaf or a Boolean branch. The tree is built once at parse
// time and never mutated.
type ConditionNode interface {
	conditionNode()
}

// Comparison is a single "field operator value" condition
type Comparison struct {
	Field Field
	Op    Operator
	Value Value
}

// Boolean combines two subconditions with AND or OR
type Boolean struct {
	Op    BooleanOp
	Left  ConditionNode
	Right ConditionNode
}

func (*Comparison) conditionNode() {}
func (*Boolean) conditionNode()    {}

// OrderTerm is one ORDER BY key with its direction
type OrderTerm struct {
	Field Field
	Desc  bool
}

// SelectionMode is the delete-query policy choosing how many ordered
// matches to act on
type SelectionMode int

const (
	// SelectFirst takes the first n matches (default 1)
	SelectFirst SelectionMode = iota
	// SelectMany takes up to a count, or all matches when unbounded
	SelectMany
	// SelectAll is the legacy "*" spelling of an unbounded MANY
	SelectAll
)

// String returns the query-language spelling of the selection mode
func (m SelectionMode) String() string {
	switch m {
	case SelectFirst:
		return "first"
	case SelectMany:
		return "many"
	case SelectAll:
		return "*"
	default:
		return "unknown"
	}
}

// Query is a parsed fsql statement: either *SelectQuery or *DeleteQuery
type Query interface {
	queryStmt()
}

// SelectQuery is a read-only query over a directory tree
type SelectQuery struct {
	Fields  []Field // nil means all fields (select *)
	Path    string
	Where   ConditionNode // nil when no WHERE clause
	OrderBy []OrderTerm
	Limit   *int
}

// DeleteQuery removes matching entries from a directory tree
type DeleteQuery struct {
	Mode      SelectionMode
	Count     *int // count attached to FIRST/MANY; nil means unbounded MANY
	Recursive bool
	Path      string
	Where     ConditionNode
	Limit     *int // trailing LIMIT clause; used only when Count is nil
}

func (*SelectQuery) queryStmt() {}
func (*DeleteQuery) queryStmt() {}
