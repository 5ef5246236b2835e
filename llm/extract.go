package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseError is the terminal failure of response extraction: no valid
// JSON value could be located in the model output. It is surfaced to the
// caller unretried; retrying the whole invocation is a caller decision.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no structured payload in LLM response: %s", e.Reason)
}

// Pre-compiled patterns for locating JSON in LLM responses.
var (
	// fencedBlockPattern matches a markdown code block: ```json ... ```
	fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)```")
	// trailingCommaPattern matches trailing commas before ] or }.
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractJSON extracts a JSON object from free-form LLM output. Fenced
// code blocks are preferred when present; otherwise the first balanced
// top-level object is taken. Common LLM artifacts (line comments outside
// strings, trailing commas) are cleaned before one strict parse. There is
// no partial recovery: if the located span does not parse, the whole
// extraction fails with *ParseError.
func ExtractJSON(content string) ([]byte, error) {
	return extract(content, '{', '}')
}

// ExtractJSONArray extracts a JSON array from free-form LLM output,
// with the same fence preference and strictness as ExtractJSON.
func ExtractJSONArray(content string) ([]byte, error) {
	return extract(content, '[', ']')
}

func extract(content string, open, close byte) ([]byte, error) {
	// A fenced block is a strong hint but not a requirement: models often
	// fence the payload and sometimes follow it with prose.
	if m := fencedBlockPattern.FindStringSubmatch(content); len(m) > 1 {
		if span := balancedSpan(m[1], open, close); span != "" {
			return parseSpan(span)
		}
	}

	span := balancedSpan(content, open, close)
	if span == "" {
		return nil, &ParseError{Reason: fmt.Sprintf("no balanced %c...%c value found", open, close)}
	}
	return parseSpan(span)
}

// parseSpan cleans a located span and strict-parses it.
func parseSpan(span string) ([]byte, error) {
	cleaned := cleanJSON(span)
	if !json.Valid([]byte(cleaned)) {
		return nil, &ParseError{Reason: "located span is not valid JSON"}
	}
	return []byte(cleaned), nil
}

// balancedSpan returns the first balanced top-level value delimited by
// open/close, honoring strings and escapes, or "" when none exists.
func balancedSpan(content string, open, close byte) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(content); i++ {
		ch := content[i]

		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch ch {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			if start >= 0 {
				inString = true
			}
		case open:
			if start < 0 {
				start = i
			}
			depth++
		case close:
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return content[start : i+1]
			}
		}
	}
	return ""
}

// cleanJSON removes JavaScript-style comments and trailing commas.
// LLMs commonly produce these invalid JSON artifacts.
func cleanJSON(raw string) string {
	lines := strings.Split(raw, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, stripLineComment(line))
	}
	result := strings.Join(cleaned, "\n")

	return trailingCommaPattern.ReplaceAllString(result, "$1")
}

// stripLineComment removes a // comment from a JSON line, respecting
// string values so URLs like "http://example.com" survive.
func stripLineComment(line string) string {
	if !strings.Contains(line, "//") {
		return line
	}

	inString := false
	escaped := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if !inString && ch == '/' && i+1 < len(line) && line[i+1] == '/' {
			return strings.TrimRight(line[:i], " \t")
		}
	}
	return line
}
