package query

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a syntax error with the byte offset of the
// offending token and the set of tokens that would have been accepted.
type ParseError struct {
	Pos      int
	Expected []string
	Found    string
}

func (e *ParseError) Error() string {
	found := e.Found
	if found == "" {
		found = "end of query"
	}
	return fmt.Sprintf("parse error at position %d: expected %s, found %q",
		e.Pos, strings.Join(e.Expected, " or "), found)
}

// Parser parses fsql queries into their typed representation
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// errExpected builds a ParseError at the current token
func (p *Parser) errExpected(expected ...string) error {
	tok := p.current()
	return &ParseError{Pos: tok.Pos, Expected: expected, Found: tok.Value}
}

// expect checks that the current token matches and advances
func (p *Parser) expect(tokType TokenType) error {
	if p.current().Type != tokType {
		return p.errExpected(tokType.String())
	}
	p.advance()
	return nil
}

// Parse parses a single fsql statement. On failure the returned error
// is a *ParseError carrying position and expected-token information.
func Parse(text string) (Query, error) {
	tokens := Tokenize(text)
	parser := NewParser(tokens)

	var q Query
	var err error
	switch parser.current().Type {
	case TokenSelect:
		q, err = parser.parseSelect()
	case TokenDelete:
		q, err = parser.parseDelete()
	default:
		return nil, parser.errExpected("select", "delete")
	}
	if err != nil {
		return nil, err
	}

	if parser.current().Type == TokenSemicolon {
		parser.advance()
	}
	if parser.current().Type != TokenEOF {
		return nil, parser.errExpected("end of query")
	}
	return q, nil
}

// parseSelect parses: select selection from path [where] [order by] [limit]
func (p *Parser) parseSelect() (*SelectQuery, error) {
	p.advance() // consume select

	fields, err := p.parseSelection()
	if err != nil {
		return nil, err
	}

	if err := p.expect(TokenFrom); err != nil {
		return nil, err
	}
	path, err := p.parsePath()
	if err != nil {
		return nil, err
	}

	q := &SelectQuery{Fields: fields, Path: path}

	if p.current().Type == TokenWhere {
		p.advance()
		q.Where, err = p.parseCondition()
		if err != nil {
			return nil, err
		}
	}
	if p.current().Type == TokenOrder {
		q.OrderBy, err = p.parseOrderBy()
		if err != nil {
			return nil, err
		}
	}
	if p.current().Type == TokenLimit {
		q.Limit, err = p.parseLimit()
		if err != nil {
			return nil, err
		}
	}
	return q, nil
}

// parseDelete parses: delete [recursive] selection from path [where] [limit]
func (p *Parser) parseDelete() (*DeleteQuery, error) {
	p.advance() // consume delete

	q := &DeleteQuery{Mode: SelectMany}

	if p.current().Type == TokenRecursive ||
		(p.current().Type == TokenIdent && strings.EqualFold(p.current().Value, "r")) {
		q.Recursive = true
		p.advance()
	}

	switch p.current().Type {
	case TokenFirst:
		q.Mode = SelectFirst
		p.advance()
		one := 1
		q.Count = &one
		if p.current().Type == TokenNumber {
			n, err := p.parseCount()
			if err != nil {
				return nil, err
			}
			q.Count = &n
		}
	case TokenMany:
		q.Mode = SelectMany
		p.advance()
		if p.current().Type == TokenNumber {
			n, err := p.parseCount()
			if err != nil {
				return nil, err
			}
			q.Count = &n
		}
	case TokenStar:
		q.Mode = SelectAll
		p.advance()
	default:
		return nil, p.errExpected("first", "many", "*")
	}

	if err := p.expect(TokenFrom); err != nil {
		return nil, err
	}
	path, err := p.parsePath()
	if err != nil {
		return nil, err
	}
	q.Path = path

	if p.current().Type == TokenWhere {
		p.advance()
		q.Where, err = p.parseCondition()
		if err != nil {
			return nil, err
		}
	}
	if p.current().Type == TokenLimit {
		q.Limit, err = p.parseLimit()
		if err != nil {
			return nil, err
		}
	}
	return q, nil
}

// parseSelection parses `*` or a comma-separated field list
func (p *Parser) parseSelection() ([]Field, error) {
	if p.current().Type == TokenStar {
		p.advance()
		return nil, nil
	}

	var fields []Field
	for {
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
		if p.current().Type != TokenComma {
			break
		}
		p.advance()
	}
	return fields, nil
}

// parseField resolves the current token against the closed field set
func (p *Parser) parseField() (Field, error) {
	tok := p.current()
	// Field names like "type" never collide with keywords, but the
	// lexer classifies them before the parser sees them, so accept any
	// word-shaped token here and validate against the field set.
	if tok.Type != TokenIdent && tok.Type != TokenString {
		return 0, p.errExpected("field name")
	}
	f, ok := ParseField(tok.Value)
	if !ok {
		return 0, p.errExpected("field name")
	}
	p.advance()
	return f, nil
}

// parsePath accepts a quoted string or a bare path token
func (p *Parser) parsePath() (string, error) {
	tok := p.current()
	switch tok.Type {
	case TokenString, TokenIdent:
		p.advance()
		return tok.Value, nil
	case TokenNumber:
		// A directory named like "2024" lexes as a number
		p.advance()
		return tok.Value, nil
	default:
		return "", p.errExpected("path")
	}
}

// parseCondition parses a left-folding chain of primary conditions.
// AND and OR bind equally and associate left-to-right; only explicit
// parentheses change grouping.
func (p *Parser) parseCondition() (ConditionNode, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd || p.current().Type == TokenOr {
		op := BoolAnd
		if p.current().Type == TokenOr {
			op = BoolOr
		}
		p.advance()

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		node = &Boolean{Op: op, Left: node, Right: right}
	}
	return node, nil
}

// parsePrimary parses a parenthesized condition or a single comparison
func (p *Parser) parsePrimary() (ConditionNode, error) {
	if p.current().Type == TokenLeftParen {
		p.advance()
		node, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRightParen); err != nil {
			return nil, err
		}
		return node, nil
	}
	return p.parseComparison()
}

// parseComparison parses: field operator value
func (p *Parser) parseComparison() (ConditionNode, error) {
	field, err := p.parseField()
	if err != nil {
		return nil, err
	}

	var op Operator
	switch p.current().Type {
	case TokenEqual:
		op = OpEqual
	case TokenNotEqual:
		op = OpNotEqual
	case TokenLess:
		op = OpLess
	case TokenLessEqual:
		op = OpLessEqual
	case TokenGreater:
		op = OpGreater
	case TokenGreaterEqual:
		op = OpGreaterEqual
	case TokenLike:
		op = OpLike
	case TokenContains:
		op = OpContains
	default:
		return nil, p.errExpected("comparison operator")
	}
	p.advance()

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &Comparison{Field: field, Op: op, Value: value}, nil
}

// parseValue parses a literal into a Value
func (p *Parser) parseValue() (Value, error) {
	tok := p.current()
	switch tok.Type {
	case TokenString:
		p.advance()
		return StringValue(tok.Value), nil
	case TokenNumber:
		v, err := ParseNumeric(tok.Value)
		if err != nil {
			return Value{}, &ParseError{Pos: tok.Pos, Expected: []string{"number"}, Found: tok.Value}
		}
		p.advance()
		return v, nil
	case TokenBool:
		p.advance()
		return BoolValue(strings.EqualFold(tok.Value, "true")), nil
	default:
		return Value{}, p.errExpected("value")
	}
}

// parseOrderBy parses: order by term {, term}
func (p *Parser) parseOrderBy() ([]OrderTerm, error) {
	p.advance() // consume order
	if err := p.expect(TokenBy); err != nil {
		return nil, err
	}

	var terms []OrderTerm
	for {
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		term := OrderTerm{Field: f}
		switch p.current().Type {
		case TokenAsc:
			p.advance()
		case TokenDesc:
			term.Desc = true
			p.advance()
		}
		terms = append(terms, term)
		if p.current().Type != TokenComma {
			break
		}
		p.advance()
	}
	return terms, nil
}

// parseLimit parses: limit number
func (p *Parser) parseLimit() (*int, error) {
	p.advance() // consume limit
	n, err := p.parseCount()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// parseCount reads a non-negative integer token
func (p *Parser) parseCount() (int, error) {
	tok := p.current()
	if tok.Type != TokenNumber {
		return 0, p.errExpected("number")
	}
	n, err := strconv.Atoi(tok.Value)
	if err != nil || n < 0 {
		return 0, p.errExpected("non-negative integer")
	}
	p.advance()
	return n, nil
}
