package cellgraph

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// parser builds an Expr tree by precedence-climbing recursive descent:
// parseSum -> parseProduct -> parseUnary -> parsePrimary, mirroring the
// teacher's parseAddition/parseMultiplication/parseUnary/parsePostfix
// chain reduced to this grammar's four binary operators and unary sign.
type parser struct {
	tokens []token
	pos    int
}

func parseExpression(text string) (Expr, error) {
	tokens, err := newLexer(text).tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	expr, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.current().kind != tokEOF {
		return nil, errors.Newf("unexpected token %q at offset %d", p.current().text, p.current().pos)
	}
	return expr, nil
}

func (p *parser) current() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) parseSum() (Expr, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		switch p.current().kind {
		case tokPlus:
			p.advance()
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = &binaryExpr{op: opAdd, left: left, right: right}
		case tokMinus:
			p.advance()
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = &binaryExpr{op: opSub, left: left, right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseProduct() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.current().kind {
		case tokStar:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &binaryExpr{op: opMul, left: left, right: right}
		case tokSlash:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &binaryExpr{op: opDiv, left: left, right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	switch p.current().kind {
	case tokPlus:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{negative: false, operand: operand}, nil
	case tokMinus:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{negative: true, operand: operand}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.current()
	switch tok.kind {
	case tokNumber:
		p.advance()
		v, err := parseFloat(tok.text)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid numeric literal %q", tok.text)
		}
		return &numberExpr{value: v}, nil
	case tokCellRef:
		p.advance()
		// Only syntax is checked here (letters, digits, no leading zero),
		// never a bound: MaxRows/MaxCols is a package-wide default that a
		// Sheet's own Config can widen, so whether these coordinates are
		// in range is for the Sheet to decide at evaluation time, not the
		// parser.
		pos, err := parsePositionCoordinates(strings.ToUpper(tok.text))
		if err != nil {
			pos = malformedRefPosition(tok.text)
		}
		return &refExpr{pos: pos}, nil
	case tokLParen:
		p.advance()
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.current().kind != tokRParen {
			return nil, errors.Newf("expected ')' at offset %d", p.current().pos)
		}
		p.advance()
		return inner, nil
	default:
		return nil, errors.Newf("unexpected token %q at offset %d", tok.text, tok.pos)
	}
}

// malformedRefPosition returns an always-invalid Position (negative
// coordinates fail every Config's contains check) for a cell reference
// token whose text fails to parse as coordinates at all (e.g. a leading
// zero in the row), so the grammar still accepts it and evaluation
// surfaces ErrorRef per the contract.
func malformedRefPosition(text string) Position {
	return Position{Row: -1, Col: -1}
}
