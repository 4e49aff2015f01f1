package literal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/johnsiilver/halfpike"
)

type tokenKind uint8

const (
	tEOF    tokenKind = 0
	tPunct  tokenKind = 1
	tIdent  tokenKind = 2
	tString tokenKind = 3
	tNumber tokenKind = 4
	tBigInt tokenKind = 5
	tRegexp tokenKind = 6
)

type token struct {
	kind tokenKind
	val  string
	// flags holds the flags of a regexp literal.
	flags string
	line  int
}

// lineScanner walks the input line by line with halfpike and turns each line
// into tokens. Tokens never span lines.
type lineScanner struct {
	toks []token
	err  error
}

// Validate implements halfpike.Validator.
func (s *lineScanner) Validate() error {
	return s.err
}

// Start is the entry point for halfpike parsing.
func (s *lineScanner) Start(_ context.Context, hp *halfpike.Parser) halfpike.ParseFn {
	return s.scanLines
}

func (s *lineScanner) scanLines(_ context.Context, hp *halfpike.Parser) halfpike.ParseFn {
	for {
		line := hp.Next()
		if hp.EOF(line) {
			return nil
		}
		if isBlankOrComment(line) {
			continue
		}

		toks, err := scanLine(line.Raw, line.LineNum)
		if err != nil {
			s.err = err
			return nil
		}
		s.toks = append(s.toks, toks...)
	}
}

func isBlankOrComment(line halfpike.Line) bool {
	raw := strings.TrimSpace(line.Raw)
	return raw == "" || strings.HasPrefix(raw, "//")
}

// tokenize returns the tokens of input.
func tokenize(ctx context.Context, input string) ([]token, error) {
	// halfpike puts a final line with no newline on the EOF line, which has
	// no Raw text.
	if !strings.HasSuffix(input, "\n") {
		input += "\n"
	}
	s := &lineScanner{}
	if err := halfpike.Parse(ctx, input, s); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.toks, nil
}

// scanLine splits one line of input into tokens.
func scanLine(raw string, lineNum int) ([]token, error) {
	var toks []token
	i := 0
	for i < len(raw) {
		c := raw[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '/' && i+1 < len(raw) && raw[i+1] == '/':
			// Trailing comment.
			return toks, nil
		case c == '/':
			src, flags, n, err := scanRegexp(raw[i:])
			if err != nil {
				return nil, fmt.Errorf("[Line %d]: %w", lineNum, err)
			}
			toks = append(toks, token{kind: tRegexp, val: src, flags: flags, line: lineNum})
			i += n
		case c == '"' || c == '\'':
			s, n, err := scanString(raw[i:])
			if err != nil {
				return nil, fmt.Errorf("[Line %d]: %w", lineNum, err)
			}
			toks = append(toks, token{kind: tString, val: s, line: lineNum})
			i += n
		case isDigit(c) || (c == '.' && i+1 < len(raw) && isDigit(raw[i+1])):
			tok, n := scanNumber(raw[i:])
			tok.line = lineNum
			toks = append(toks, tok)
			i += n
		case c == '=' && i+1 < len(raw) && raw[i+1] == '>':
			toks = append(toks, token{kind: tPunct, val: "=>", line: lineNum})
			i += 2
		case isIdentStart(c):
			j := i + 1
			for j < len(raw) && isIdentPart(raw[j]) {
				j++
			}
			toks = append(toks, token{kind: tIdent, val: raw[i:j], line: lineNum})
			i = j
		case strings.IndexByte("[]{}(),:!*-", c) >= 0:
			toks = append(toks, token{kind: tPunct, val: string(c), line: lineNum})
			i++
		default:
			return nil, fmt.Errorf("[Line %d]: unexpected character %q", lineNum, c)
		}
	}
	return toks, nil
}

// scanString reads a quoted string from the start of s. It returns the
// unescaped string and how many bytes of s it used.
func scanString(s string) (string, int, error) {
	quote := s[0]
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			str, err := unquoteString(s[1:i])
			if err != nil {
				return "", 0, err
			}
			return str, i + 1, nil
		}
	}
	return "", 0, fmt.Errorf("unterminated string %s", s)
}

// unquoteString handles escape sequences in the body of a quoted string.
func unquoteString(s string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			sb.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '"', '\'', '\\', '/':
			sb.WriteByte(s[i+1])
			i++
		case 'n':
			sb.WriteByte('\n')
			i++
		case 'r':
			sb.WriteByte('\r')
			i++
		case 't':
			sb.WriteByte('\t')
			i++
		case 'u':
			// Unicode escape: \uXXXX
			if i+5 >= len(s) {
				return "", fmt.Errorf("incomplete unicode escape")
			}
			hex := s[i+2 : i+6]
			code, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return "", fmt.Errorf("invalid unicode escape: \\u%s", hex)
			}
			sb.WriteRune(rune(code))
			i += 5
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String(), nil
}

// scanRegexp reads a /source/flags literal from the start of s.
func scanRegexp(s string) (src, flags string, n int, err error) {
	inClass := false
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if inClass {
				continue
			}
			j := i + 1
			for j < len(s) && isLetter(s[j]) {
				j++
			}
			return s[1:i], s[i+1 : j], j, nil
		}
	}
	return "", "", 0, fmt.Errorf("unterminated regular expression %s", s)
}

// scanNumber reads a number from the start of s. Validation happens when the
// token is parsed.
func scanNumber(s string) (token, int) {
	hex := len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case isDigit(c) || isLetter(c) || c == '.' || c == '_':
			i++
		case (c == '+' || c == '-') && !hex && i > 0 && (s[i-1] == 'e' || s[i-1] == 'E'):
			i++
		default:
			return numberToken(s[:i]), i
		}
	}
	return numberToken(s), i
}

func numberToken(s string) token {
	if len(s) > 1 && strings.HasSuffix(s, "n") {
		return token{kind: tBigInt, val: strings.TrimSuffix(s, "n")}
	}
	return token{kind: tNumber, val: s}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool {
	return isLetter(c) || c == '_' || c == '$'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
