package palm

import (
	"math"
	"strconv"
	"strings"

	"oasis/expr"
)

// parser walks a flat token stream with a simple index-and-peek cursor,
// implementing a single prefix grammar rather than per-precedence
// grammar rules.
type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token  { return p.toks[p.pos] }
func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}
func (p *parser) atEnd() bool { return p.peek().Text == "" }

// Parse parses a single PALM expression out of src and returns the
// Expression it denotes, or a *ParseError from the enumerated kind set.
func Parse(src string) (expr.Expression, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, newError(ExtraOperands, p.peek(), "unexpected trailing token %q", p.peek().Text)
	}
	return e, nil
}

func (p *parser) expect(text string) (Token, error) {
	tok := p.peek()
	if tok.Text != text {
		return tok, newError(LexicalError, tok, "expected %q, got %q", text, tok.Text)
	}
	return p.advance(), nil
}

func (p *parser) parseExpr() (expr.Expression, error) {
	if p.atEnd() {
		return nil, newError(MissingOperands, p.peek(), "unexpected end of input")
	}
	open := p.peek()
	if open.Text != "(" {
		return nil, newError(LexicalError, open, "expected '(' to start a PALM form")
	}
	p.advance()

	opTok := p.peek()
	if opTok.Text == "" || opTok.Text == "(" || opTok.Text == ")" {
		return nil, newError(LexicalError, opTok, "expected an operator token")
	}
	p.advance()

	e, err := p.parseArgs(opTok)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return e, nil
}

// isOperand reports whether the upcoming token begins a nested form or a
// bare lexeme (identifier/number), as opposed to the closing paren.
func (p *parser) isOperand() bool {
	t := p.peek().Text
	return t == "(" || (t != "" && t != ")")
}

// parseOperand parses a nested "(op ...)" form; any other lexeme is a
// LexicalError.
func (p *parser) parseOperand() (expr.Expression, error) {
	if p.peek().Text == "(" {
		return p.parseExpr()
	}
	return nil, newError(LexicalError, p.peek(), "expected a nested form")
}

// requireOperand parses one operand of opText, reporting a MissingOperands
// error (rather than a generic lexical one) when the stream runs out
// before the closing paren.
func (p *parser) requireOperand(opText string) (expr.Expression, error) {
	if !p.isOperand() {
		return nil, newError(MissingOperands, p.peek(), "%q needs an operand", opText)
	}
	return p.parseOperand()
}

func (p *parser) parseArgs(op Token) (expr.Expression, error) {
	switch op.Text {
	case "real":
		tok := p.peek()
		if tok.Text == "" || tok.Text == ")" {
			return nil, newError(MissingOperands, tok, "real needs one numeric argument")
		}
		p.advance()
		v, err := parseNumber(tok)
		if err != nil {
			return nil, err
		}
		return expr.NewReal(v), nil

	case "i", "j":
		return expr.TheImaginary, nil

	case "e":
		return &expr.EulerNumber{}, nil

	case "pi":
		return &expr.Pi{}, nil

	case "var":
		tok := p.peek()
		if tok.Text == "" || tok.Text == ")" {
			return nil, newError(MissingOperands, tok, "var needs one name argument")
		}
		p.advance()
		return expr.NewVariable(tok.Text), nil

	case "neg":
		x, err := p.requireOperand(op.Text)
		if err != nil {
			return nil, err
		}
		return expr.NewNegate(x), nil

	case "magnitude":
		x, err := p.requireOperand(op.Text)
		if err != nil {
			return nil, err
		}
		return expr.NewMagnitude(x), nil

	case "sin":
		x, err := p.requireOperand(op.Text)
		if err != nil {
			return nil, err
		}
		return expr.NewSine(x), nil

	case "matrix":
		return p.parseMatrix()

	case "+", "-", "*", "/", "^", "log", "d", "int":
		a, err := p.requireOperand(op.Text)
		if err != nil {
			return nil, err
		}
		b, err := p.requireOperand(op.Text)
		if err != nil {
			return nil, err
		}
		if p.isOperand() {
			return nil, newError(ExtraOperands, p.peek(), "%q takes exactly two operands", op.Text)
		}
		switch op.Text {
		case "+":
			return expr.NewAdd(a, b), nil
		case "-":
			return expr.NewSubtract(a, b), nil
		case "*":
			return expr.NewMultiply(a, b), nil
		case "/":
			return expr.NewDivide(a, b), nil
		case "^":
			return expr.NewExponent(a, b), nil
		case "log":
			return expr.NewLog(a, b), nil
		case "d":
			return expr.NewDerivative(a, b), nil
		case "int":
			return expr.NewIntegral(a, b), nil
		}
	}
	return nil, newError(LexicalError, op, "unknown operator token %q", op.Text)
}

func (p *parser) parseMatrix() (expr.Expression, error) {
	rowsTok := p.peek()
	if rowsTok.Text == "" || rowsTok.Text == ")" {
		return nil, newError(MissingOperands, rowsTok, "matrix needs rows cols values...")
	}
	p.advance()
	rows, err := strconv.Atoi(rowsTok.Text)
	if err != nil {
		return nil, newError(InvalidNumberFormat, rowsTok, "invalid row count %q", rowsTok.Text)
	}
	colsTok := p.peek()
	if colsTok.Text == "" || colsTok.Text == ")" {
		return nil, newError(MissingOperands, colsTok, "matrix needs rows cols values...")
	}
	p.advance()
	cols, err := strconv.Atoi(colsTok.Text)
	if err != nil {
		return nil, newError(InvalidNumberFormat, colsTok, "invalid col count %q", colsTok.Text)
	}
	want := rows * cols
	values := make([]float64, 0, want)
	for len(values) < want {
		tok := p.peek()
		if tok.Text == "" || tok.Text == ")" {
			return nil, newError(MissingOperands, tok, "matrix expects %d values, got %d", want, len(values))
		}
		p.advance()
		v, err := parseNumber(tok)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return expr.NewMatrix(rows, cols, values), nil
}

// parseNumber parses a PALM numeric lexeme: a signed decimal with an
// optional exponent, or one of the reserved non-finite spellings
// NaN/Infinity/-Infinity.
func parseNumber(tok Token) (float64, error) {
	text := tok.Text
	switch text {
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	if !looksNumeric(text) {
		return 0, newError(InvalidNumberFormat, tok, "invalid number %q", text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, newError(InvalidNumberFormat, tok, "invalid number %q", text)
	}
	return v, nil
}

func looksNumeric(text string) bool {
	if text == "" {
		return false
	}
	rest := text
	if strings.HasPrefix(rest, "+") || strings.HasPrefix(rest, "-") {
		rest = rest[1:]
	}
	if rest == "" {
		return false
	}
	sawDigit := false
	for _, r := range rest {
		if r >= '0' && r <= '9' {
			sawDigit = true
			continue
		}
		if r == '.' || r == 'e' || r == 'E' || r == '+' || r == '-' {
			continue
		}
		return false
	}
	return sawDigit
}
