package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// rune is the 1-based column of the next rune to read.
	rune int
	// parens holds the columns of open brackets awaiting their close.
	parens []int
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// Parse scans an expression into its token sequence. The scan is a single
// left-to-right pass: maximal runs of digits and '.' become number tokens,
// the runes +-*/ become operator tokens, brackets become bracket tokens with
// balance checked as they appear, and whitespace is skipped. Any other rune,
// or a digit run that is not a valid number, produces a *BadTokenError;
// unbalanced brackets produce a *MismatchedParensError.
func Parse(src io.RuneScanner) ([]Token, error) {
	l := &lexer{src: src, rune: 1}
	var tokens []Token
	for {
		pos := l.rune
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		switch {
		case r == ' ', r == '\t', r == '\r', r == '\n':
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			n, err := l.scanNum()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: TokenNum, Num: n, Pos: pos})
		case r == '(':
			tokens = append(tokens, Token{Kind: TokenBracket, Bracket: '(', Pos: pos})
			l.parens = append(l.parens, pos)
		case r == ')':
			tokens = append(tokens, Token{Kind: TokenBracket, Bracket: ')', Pos: pos})
			if len(l.parens) == 0 {
				return nil, &MismatchedParensError{Col: pos}
			}
			l.parens = l.parens[:len(l.parens)-1]
		default:
			op, ok := operatorFor(r)
			if !ok {
				return nil, &BadTokenError{Char: r, Col: pos}
			}
			tokens = append(tokens, Token{Kind: TokenOp, Op: op, Pos: pos})
		}
	}
	if len(l.parens) != 0 {
		return nil, &MismatchedParensError{Col: l.parens[len(l.parens)-1]}
	}
	return tokens, nil
}

// ParseString is a shortcut to scan a string expression.
func ParseString(s string) ([]Token, error) {
	return Parse(strings.NewReader(s))
}

// scanNum scans a maximal run of digits and '.' and parses it as a float64.
// The run itself decides nothing about validity; strconv does.
func (l *lexer) scanNum() (float64, error) {
	defer l.buf.Reset()
	start := l.rune
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		if '0' <= r && r <= '9' || r == '.' {
			l.buf.WriteRune(r)
			continue
		}
		l.unreadRune()
		break
	}
	text := l.buf.String()
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out-of-range literals saturate to infinity; only syntax errors
		// reject the token.
		var ne *strconv.NumError
		if !errors.As(err, &ne) || !errors.Is(ne.Err, strconv.ErrRange) {
			r, _ := utf8.DecodeRuneInString(text)
			return 0, &BadTokenError{Char: r, Col: start}
		}
	}
	return n, nil
}
