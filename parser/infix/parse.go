package infix

import (
	"strconv"

	"oasis/expr"
)

// precedence and associativity table: ^ binds tightest and is
// right-to-left, * / bind next and are left-to-right, + - bind loosest and
// are left-to-right.
func precedence(t TokenType) int {
	switch t {
	case TokenCaret:
		return 3
	case TokenStar, TokenSlash:
		return 2
	case TokenPlus, TokenMinus:
		return 1
	default:
		return 0
	}
}

func rightAssociative(t TokenType) bool { return t == TokenCaret }

// opStackEntry is either an operator token or a function-call marker
// (isFunc, with the function's name), mirroring the shunting-yard
// algorithm's single operator stack carrying both.
type opStackEntry struct {
	tok      Token
	isFunc   bool
	funcName string
}

// Parse tokenizes and shunting-yard parses src into an expr.Expression,
// resolving implicit multiplication and the two-argument functions
// log/dd/in. It returns a *ParseError from the enumerated set on any
// failure; no partial tree is ever returned.
func Parse(src string) (expr.Expression, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokens)
}

func parseTokens(tokens []Token) (expr.Expression, error) {
	var output []expr.Expression
	var ops []opStackEntry

	popOp := func() error {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.isFunc {
			if len(output) < 2 {
				return newError(TooFewOperands, top.tok.Pos, "function %q needs two arguments", top.funcName)
			}
			b := output[len(output)-1]
			a := output[len(output)-2]
			output = output[:len(output)-2]
			output = append(output, applyFunc(top.funcName, a, b))
			return nil
		}
		if len(output) < 2 {
			return newError(TooFewOperands, top.tok.Pos, "operator %q is missing an operand", top.tok.Text)
		}
		b := output[len(output)-1]
		a := output[len(output)-2]
		output = output[:len(output)-2]
		out, err := applyOperator(top.tok, a, b)
		if err != nil {
			return err
		}
		output = append(output, out)
		return nil
	}

	expectOperand := true
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Type {
		case TokenNumber:
			if !expectOperand {
				return nil, newError(UnexpectedToken, tok.Pos, "unexpected number %q", tok.Text)
			}
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return nil, newError(InvalidNumberFormat, tok.Pos, "invalid number %q", tok.Text)
			}
			output = append(output, expr.NewReal(v))
			expectOperand = false

		case TokenVariable:
			if !expectOperand {
				return nil, newError(UnexpectedToken, tok.Pos, "unexpected identifier %q", tok.Text)
			}
			output = append(output, expr.NewVariable(tok.Text))
			expectOperand = false

		case TokenConstant:
			if !expectOperand {
				return nil, newError(UnexpectedToken, tok.Pos, "unexpected constant %q", tok.Text)
			}
			output = append(output, constantFor(tok.Text))
			expectOperand = false

		case TokenFunc:
			if !expectOperand {
				return nil, newError(UnexpectedToken, tok.Pos, "unexpected function %q", tok.Text)
			}
			if i+1 >= len(tokens) || tokens[i+1].Type != TokenLParen {
				return nil, newError(UnexpectedToken, tok.Pos, "function %q must be followed by (", tok.Text)
			}
			ops = append(ops, opStackEntry{tok: tok, isFunc: true, funcName: tok.Text})
			expectOperand = true

		case TokenLParen:
			if !expectOperand {
				return nil, newError(UnexpectedToken, tok.Pos, "unexpected %q", "(")
			}
			ops = append(ops, opStackEntry{tok: tok})
			expectOperand = true

		case TokenRParen:
			if expectOperand {
				return nil, newError(IncompleteExpression, tok.Pos, "expression incomplete before %q", ")")
			}
			for len(ops) > 0 && ops[len(ops)-1].tok.Type != TokenLParen {
				if err := popOp(); err != nil {
					return nil, err
				}
			}
			if len(ops) == 0 {
				return nil, newError(MissingClosingParen, tok.Pos, "unmatched %q", ")")
			}
			ops = ops[:len(ops)-1] // discard the LParen marker
			if len(ops) > 0 && ops[len(ops)-1].isFunc {
				if err := popOp(); err != nil {
					return nil, err
				}
			}
			expectOperand = false

		case TokenComma:
			if expectOperand {
				return nil, newError(IncompleteExpression, tok.Pos, "expression incomplete before %q", ",")
			}
			for len(ops) > 0 && ops[len(ops)-1].tok.Type != TokenLParen {
				if err := popOp(); err != nil {
					return nil, err
				}
			}
			if len(ops) == 0 {
				return nil, newError(UnexpectedToken, tok.Pos, "comma outside a function call")
			}
			expectOperand = true

		case TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenCaret:
			if expectOperand {
				if tok.Type == TokenMinus {
					// unary minus: rewrite as Real(0) - operand via a
					// synthetic zero operand already on the stack.
					output = append(output, expr.NewReal(0))
					ops = append(ops, opStackEntry{tok: Token{Type: TokenMinus, Text: "-", Pos: tok.Pos}})
					expectOperand = true
					continue
				}
				if tok.Type == TokenPlus {
					expectOperand = true
					continue
				}
				return nil, newError(IncompleteExpression, tok.Pos, "expression incomplete before operator %q", tok.Text)
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.isFunc || top.tok.Type == TokenLParen {
					break
				}
				topPrec := precedence(top.tok.Type)
				curPrec := precedence(tok.Type)
				if topPrec > curPrec || (topPrec == curPrec && !rightAssociative(tok.Type)) {
					if err := popOp(); err != nil {
						return nil, err
					}
					continue
				}
				break
			}
			ops = append(ops, opStackEntry{tok: tok})
			expectOperand = true

		case TokenEOF:
			if expectOperand && len(output) > 0 {
				return nil, newError(UnexpectedEndOfInput, tok.Pos, "unexpected end of input")
			}

		default:
			return nil, newError(UnexpectedToken, tok.Pos, "unexpected token %q", tok.Text)
		}
	}

	if expectOperand {
		return nil, newError(UnexpectedEndOfInput, len(tokens), "unexpected end of input")
	}

	for len(ops) > 0 {
		if ops[len(ops)-1].tok.Type == TokenLParen {
			return nil, newError(MissingClosingParen, ops[len(ops)-1].tok.Pos, "unmatched %q", "(")
		}
		if err := popOp(); err != nil {
			return nil, err
		}
	}

	if len(output) == 0 {
		return nil, newError(IncompleteExpression, 0, "empty expression")
	}
	if len(output) > 1 {
		return nil, newError(TooManyOperands, 0, "expression left %d dangling operands", len(output))
	}
	return output[0], nil
}

func constantFor(text string) expr.Expression {
	switch text {
	case "i":
		return expr.TheImaginary
	case "e":
		return &expr.EulerNumber{}
	case "pi":
		return &expr.Pi{}
	default:
		return expr.NewVariable(text)
	}
}

func applyFunc(name string, a, b expr.Expression) expr.Expression {
	switch name {
	case "log":
		return expr.NewLog(a, b)
	case "dd":
		return expr.NewDerivative(a, b)
	case "in":
		return expr.NewIntegral(a, b)
	default:
		return expr.NewDerivative(a, b)
	}
}

func applyOperator(tok Token, a, b expr.Expression) (expr.Expression, error) {
	switch tok.Type {
	case TokenPlus:
		return expr.NewAdd(a, b), nil
	case TokenMinus:
		return expr.NewSubtract(a, b), nil
	case TokenStar:
		return expr.NewMultiply(a, b), nil
	case TokenSlash:
		return expr.NewDivide(a, b), nil
	case TokenCaret:
		return expr.NewExponent(a, b), nil
	default:
		return nil, newError(UnknownOperator, tok.Pos, "unknown operator %q", tok.Text)
	}
}
