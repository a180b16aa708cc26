package parser

import (
	"fmt"
	"unicode"
)

// Lexer scans script source into tokens. Comments (// and /* */) are skipped;
// whitespace is insignificant apart from position tracking.
type Lexer struct {
	src []rune
	i   int

	line int
	col  int
}

// NewLexer creates a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1, col: 1}
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.i >= len(lx.src) {
		return 0, false
	}

	return lx.src[lx.i], true
}

func (lx *Lexer) peekAt(offset int) (rune, bool) {
	if lx.i+offset >= len(lx.src) {
		return 0, false
	}

	return lx.src[lx.i+offset], true
}

func (lx *Lexer) advance() (rune, bool) {
	ch, ok := lx.peek()
	if !ok {
		return 0, false
	}

	lx.i++

	if ch == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	return ch, true
}

func (lx *Lexer) match(expect rune) bool {
	if ch, ok := lx.peek(); ok && ch == expect {
		lx.advance()
		return true
	}

	return false
}

func (lx *Lexer) skipSpaceAndComments() error {
	for {
		ch, ok := lx.peek()
		if !ok {
			return nil
		}

		switch {
		case unicode.IsSpace(ch):
			lx.advance()
		case ch == '/':
			next, ok := lx.peekAt(1)
			if !ok {
				return nil
			}

			switch next {
			case '/':
				for {
					c, ok := lx.peek()
					if !ok || c == '\n' {
						break
					}

					lx.advance()
				}
			case '*':
				line, col := lx.line, lx.col
				lx.advance()
				lx.advance()

				for {
					c, ok := lx.advance()
					if !ok {
						return fmt.Errorf("unterminated block comment at %d:%d", line, col)
					}

					if c == '*' && lx.match('/') {
						break
					}
				}
			default:
				return nil
			}
		default:
			return nil
		}
	}
}

// Next returns the next token, or an error for malformed input.
func (lx *Lexer) Next() (Token, error) {
	if err := lx.skipSpaceAndComments(); err != nil {
		return Token{}, err
	}

	line, col := lx.line, lx.col

	ch, ok := lx.peek()
	if !ok {
		return Token{Kind: TokEOF, Line: line, Col: col}, nil
	}

	switch {
	case isIdentStart(ch):
		return lx.scanIdent(line, col), nil
	case unicode.IsDigit(ch):
		return lx.scanNumber(line, col), nil
	case ch == '"' || ch == '\'':
		return lx.scanString(line, col)
	}

	lx.advance()

	mk := func(kind TokKind, lex string) (Token, error) {
		return Token{Kind: kind, Lex: lex, Line: line, Col: col}, nil
	}

	switch ch {
	case '=':
		if lx.match('=') {
			if lx.match('=') {
				return mk(TokStrictEq, "===")
			}

			return mk(TokEq, "==")
		}

		return mk(TokAssign, "=")
	case '!':
		if lx.match('=') {
			if lx.match('=') {
				return mk(TokStrictNe, "!==")
			}

			return mk(TokNe, "!=")
		}

		return mk(TokBang, "!")
	case '<':
		if lx.match('=') {
			return mk(TokLe, "<=")
		}

		return mk(TokLt, "<")
	case '>':
		if lx.match('=') {
			return mk(TokGe, ">=")
		}

		return mk(TokGt, ">")
	case '&':
		if lx.match('&') {
			return mk(TokAndAnd, "&&")
		}
	case '|':
		if lx.match('|') {
			return mk(TokOrOr, "||")
		}
	case '+':
		return mk(TokPlus, "+")
	case '-':
		return mk(TokMinus, "-")
	case '*':
		return mk(TokStar, "*")
	case '/':
		return mk(TokSlash, "/")
	case '%':
		return mk(TokPercent, "%")
	case '.':
		return mk(TokDot, ".")
	case ',':
		return mk(TokComma, ",")
	case ';':
		return mk(TokSemi, ";")
	case ':':
		return mk(TokColon, ":")
	case '(':
		return mk(TokLParen, "(")
	case ')':
		return mk(TokRParen, ")")
	case '[':
		return mk(TokLBrack, "[")
	case ']':
		return mk(TokRBrack, "]")
	case '{':
		return mk(TokLBrace, "{")
	case '}':
		return mk(TokRBrace, "}")
	}

	return Token{}, fmt.Errorf("unexpected character %q at %d:%d", ch, line, col)
}

func (lx *Lexer) scanIdent(line, col int) Token {
	start := lx.i

	for {
		ch, ok := lx.peek()
		if !ok || !isIdentPart(ch) {
			break
		}

		lx.advance()
	}

	lex := string(lx.src[start:lx.i])
	if kind, ok := keywords[lex]; ok {
		return Token{Kind: kind, Lex: lex, Line: line, Col: col}
	}

	return Token{Kind: TokIdent, Lex: lex, Line: line, Col: col}
}

func (lx *Lexer) scanNumber(line, col int) Token {
	start := lx.i

	for {
		ch, ok := lx.peek()
		if !ok || (!unicode.IsDigit(ch) && ch != '.') {
			break
		}

		lx.advance()
	}

	return Token{Kind: TokNumber, Lex: string(lx.src[start:lx.i]), Line: line, Col: col}
}

func (lx *Lexer) scanString(line, col int) (Token, error) {
	quote, _ := lx.advance()
	start := lx.i

	for {
		ch, ok := lx.peek()
		if !ok || ch == '\n' {
			return Token{}, fmt.Errorf("unterminated string at %d:%d", line, col)
		}

		if ch == '\\' {
			lx.advance()
			lx.advance()

			continue
		}

		if ch == quote {
			break
		}

		lx.advance()
	}

	body := string(lx.src[start:lx.i])
	lx.advance() // closing quote

	return Token{Kind: TokString, Lex: string(quote) + body + string(quote), Line: line, Col: col}, nil
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}
