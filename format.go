package msgsource

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FileExt is the extension of catalog files.
const FileExt = ".cat"

const (
	emptyCatalog  = "[]"
	entryIndent   = "    "
	commentPrefix = "//"
	arrow         = "=>"
)

var commentEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)

// Marshal renders a catalog in canonical file form.
//
// An empty catalog is written as "[]". Otherwise every entry is written on
// its own line as a pair of Go-quoted strings, preceded by a "//" line when
// the entry has a comment:
//
//	[
//	    // Translate wisely!
//	    "test.id1" => "Test 1",
//	    "test.id2" => "Test 2",
//	]
func Marshal(c *Catalog) []byte {
	if c.Len() == 0 {
		return []byte(emptyCatalog + "\n")
	}

	var b bytes.Buffer
	b.WriteString("[\n")
	for id, e := range c.All() {
		if e.Comment != "" {
			b.WriteString(entryIndent + commentPrefix + " ")
			b.WriteString(commentEscaper.Replace(e.Comment))
			b.WriteByte('\n')
		}
		b.WriteString(entryIndent)
		b.WriteString(strconv.Quote(id))
		b.WriteString(" " + arrow + " ")
		b.WriteString(strconv.Quote(e.Message))
		b.WriteString(",\n")
	}
	b.WriteString("]\n")
	return b.Bytes()
}

// SyntaxError describes content that is not a catalog literal.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Unmarshal parses catalog file content produced by Marshal.
// Blank lines are ignored; consecutive comment lines are joined with "\n".
func Unmarshal(data []byte) (*Catalog, error) {
	const (
		stateStart = iota
		stateBody
		stateDone
	)

	c := NewCatalog()
	state := stateStart
	var comment []string
	lastLine := 0

	for i, raw := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lastLine = lineNo

		switch state {
		case stateStart:
			switch line {
			case emptyCatalog:
				state = stateDone
			case "[":
				state = stateBody
			default:
				return nil, &SyntaxError{Line: lineNo, Msg: `expected "[" or "[]"`}
			}

		case stateBody:
			switch {
			case line == "]":
				if comment != nil {
					return nil, &SyntaxError{Line: lineNo, Msg: "comment is not followed by an entry"}
				}
				state = stateDone
			case strings.HasPrefix(line, commentPrefix):
				text, err := parseComment(raw)
				if err != nil {
					return nil, &SyntaxError{Line: lineNo, Msg: err.Error()}
				}
				comment = append(comment, text)
			default:
				id, msg, err := parseEntry(line)
				if err != nil {
					return nil, &SyntaxError{Line: lineNo, Msg: err.Error()}
				}
				c.Set(id, Entry{Message: msg, Comment: strings.Join(comment, "\n")})
				comment = nil
			}

		case stateDone:
			return nil, &SyntaxError{Line: lineNo, Msg: "unexpected content after end of catalog"}
		}
	}

	switch state {
	case stateStart:
		return nil, &SyntaxError{Line: 1, Msg: "empty content"}
	case stateBody:
		return nil, &SyntaxError{Line: lastLine, Msg: `missing closing "]"`}
	}
	return c, nil
}

// parseComment extracts the text of a comment line. Only surrounding
// indentation and a CR from CRLF line endings are stripped, so trailing
// spaces inside the comment survive.
func parseComment(raw string) (string, error) {
	raw = strings.TrimSuffix(raw, "\r")
	text := strings.TrimLeft(raw, " \t")
	text = strings.TrimPrefix(text, commentPrefix)
	text = strings.TrimPrefix(text, " ")

	if !strings.Contains(text, `\`) {
		return text, nil
	}

	var b strings.Builder
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch != '\\' {
			b.WriteByte(ch)
			continue
		}
		if i+1 == len(text) {
			return "", fmt.Errorf("comment ends with a lone backslash")
		}
		i++
		switch text[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			return "", fmt.Errorf(`invalid escape "\%c" in comment`, text[i])
		}
	}
	return b.String(), nil
}

// parseEntry parses `"id" => "message",`.
func parseEntry(line string) (id, msg string, err error) {
	id, rest, err := readQuoted(line)
	if err != nil {
		return "", "", fmt.Errorf("message ID: %w", err)
	}

	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, arrow) {
		return "", "", fmt.Errorf("expected %q after message ID", arrow)
	}
	rest = strings.TrimLeft(rest[len(arrow):], " \t")

	msg, rest, err = readQuoted(rest)
	if err != nil {
		return "", "", fmt.Errorf("message: %w", err)
	}

	if strings.TrimSpace(rest) != "," {
		return "", "", fmt.Errorf(`expected "," after message`)
	}
	return id, msg, nil
}

// readQuoted reads one double-quoted Go string literal from the start of s.
func readQuoted(s string) (value, rest string, err error) {
	if !strings.HasPrefix(s, `"`) {
		return "", "", fmt.Errorf("expected quoted string")
	}
	lit, err := strconv.QuotedPrefix(s)
	if err != nil {
		return "", "", fmt.Errorf("malformed string literal")
	}
	value, err = strconv.Unquote(lit)
	if err != nil {
		return "", "", fmt.Errorf("malformed string literal")
	}
	return value, s[len(lit):], nil
}
