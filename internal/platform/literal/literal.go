// Package literal safely decodes serialized list/dict/scalar fields.
// Event extracts carry nested fields either as JSON or as Python-style
// reprs (single quotes, True/False/None, tuples). Only data literals
// are accepted; identifiers, calls, and operators are rejected, so the
// parser can never evaluate anything.
package literal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/bytedance/sonic"
)

// Parse decodes a serialized literal into nil, bool, float64, string,
// []any, or map[string]any. All numbers decode as float64. JSON-shaped
// input takes the sonic fast path; everything else goes through the
// Python-repr scanner.
func Parse(src string) (any, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return nil, fmt.Errorf("empty literal")
	}

	var fast any
	if err := sonic.UnmarshalString(trimmed, &fast); err == nil {
		return fast, nil
	}

	p := &parser{src: trimmed}
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errf("trailing content after literal")
	}
	return value, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errf(format string, args ...any) error {
	return fmt.Errorf("offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue() (any, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, p.errf("unexpected end of literal")
	}

	switch c := p.src[p.pos]; {
	case c == '[':
		return p.parseSequence(']')
	case c == '(':
		return p.parseSequence(')')
	case c == '{':
		return p.parseDict()
	case c == '\'' || c == '"':
		return p.parseString()
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return p.parseKeyword()
	}
}

// parseSequence reads a list or tuple; both decode to []any.
func (p *parser) parseSequence(close byte) ([]any, error) {
	p.pos++ // opening bracket
	items := []any{}

	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errf("unterminated sequence")
		}
		if p.src[p.pos] == close {
			p.pos++
			return items, nil
		}

		item, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errf("unterminated sequence")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case close:
		default:
			return nil, p.errf("expected ',' or '%c' in sequence, found %q", close, p.src[p.pos])
		}
	}
}

func (p *parser) parseDict() (map[string]any, error) {
	p.pos++ // opening brace
	dict := make(map[string]any)

	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errf("unterminated dict")
		}
		if p.src[p.pos] == '}' {
			p.pos++
			return dict, nil
		}

		key, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		name, ok := key.(string)
		if !ok {
			return nil, p.errf("dict key must be a string, got %T", key)
		}

		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			return nil, p.errf("expected ':' after dict key %q", name)
		}
		p.pos++

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		dict[name] = value

		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errf("unterminated dict")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case '}':
		default:
			return nil, p.errf("expected ',' or '}' in dict, found %q", p.src[p.pos])
		}
	}
}

func (p *parser) parseString() (string, error) {
	quote := p.src[p.pos]
	p.pos++

	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\\':
			if err := p.parseEscape(&b); err != nil {
				return "", err
			}
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errf("unterminated string")
}

func (p *parser) parseEscape(b *strings.Builder) error {
	p.pos++ // backslash
	if p.pos >= len(p.src) {
		return p.errf("dangling escape")
	}

	c := p.src[p.pos]
	p.pos++
	switch c {
	case '\\', '\'', '"', '/':
		b.WriteByte(c)
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case '0':
		b.WriteByte(0)
	case 'u':
		return p.parseUnicodeEscape(b)
	default:
		return p.errf("unsupported escape \\%c", c)
	}
	return nil
}

func (p *parser) parseUnicodeEscape(b *strings.Builder) error {
	r, err := p.readHex4()
	if err != nil {
		return err
	}
	if utf16.IsSurrogate(r) && p.pos+1 < len(p.src) && p.src[p.pos] == '\\' && p.src[p.pos+1] == 'u' {
		p.pos += 2
		second, err := p.readHex4()
		if err != nil {
			return err
		}
		r = utf16.DecodeRune(r, second)
	}
	if r == utf8.RuneError {
		return p.errf("invalid unicode escape")
	}
	b.WriteRune(r)
	return nil
}

func (p *parser) readHex4() (rune, error) {
	if p.pos+4 > len(p.src) {
		return 0, p.errf("truncated unicode escape")
	}
	value, err := strconv.ParseUint(p.src[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, p.errf("invalid unicode escape %q", p.src[p.pos:p.pos+4])
	}
	p.pos += 4
	return rune(value), nil
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '_' {
			p.pos++
			continue
		}
		// Signs are only part of the number at the start or after an exponent.
		if (c == '+' || c == '-') && (p.pos == start || p.src[p.pos-1] == 'e' || p.src[p.pos-1] == 'E') {
			p.pos++
			continue
		}
		break
	}

	raw := strings.ReplaceAll(p.src[start:p.pos], "_", "")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.pos = start
		return 0, p.errf("invalid number %q", raw)
	}
	return value, nil
}

// parseKeyword accepts exactly True, False, and None. Any other bare
// word means the input is not a data literal.
func (p *parser) parseKeyword() (any, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			p.pos++
			continue
		}
		break
	}

	word := p.src[start:p.pos]
	switch word {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	case "None", "null":
		return nil, nil
	case "":
		return nil, p.errf("unexpected character %q", p.src[start])
	default:
		p.pos = start
		return nil, p.errf("unsupported identifier %q: only data literals are accepted", word)
	}
}
