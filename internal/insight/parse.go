package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// stripFences removes a surrounding markdown code fence, with or
// without a language tag, and trims whitespace.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// extractJSON collects every valid JSON object or array embedded in s,
// in order. Prose may carry stray brackets before the payload, so a
// candidate that does not parse resumes the scan instead of ending it.
func extractJSON(s string) []string {
	var spans []string
	for start := 0; start < len(s); start++ {
		if s[start] != '{' && s[start] != '[' {
			continue
		}
		if span, ok := balancedSpan(s[start:]); ok && json.Valid([]byte(span)) {
			spans = append(spans, span)
			start += len(span) - 1
		}
	}
	return spans
}

// balancedSpan scans s, which starts with '{' or '[', up to the
// matching close bracket. Matching is string-aware so brackets inside
// values do not end the scan early.
func balancedSpan(s string) (string, bool) {
	open := s[0]
	closing := byte('}')
	if open == '[' {
		closing = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// decodeReply parses a model reply into v, validating against schema
// first. It tries the reply as-is, then with fences stripped, then
// each embedded JSON value; a reply with no valid JSON is an error.
func decodeReply(raw string, schema *gojsonschema.Schema, v any) error {
	candidates := []string{strings.TrimSpace(raw), stripFences(raw)}
	candidates = append(candidates, extractJSON(stripFences(raw))...)

	var lastErr error
	for _, c := range candidates {
		if c == "" || !json.Valid([]byte(c)) {
			continue
		}
		if err := validate(c, schema); err != nil {
			lastErr = err
			continue
		}
		if err := json.Unmarshal([]byte(c), v); err != nil {
			lastErr = fmt.Errorf("decode reply: %w", err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("reply contains no JSON")
}

func validate(doc string, schema *gojsonschema.Schema) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("validate reply: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("reply failed schema validation: %s", strings.Join(msgs, "; "))
	}
	return nil
}
