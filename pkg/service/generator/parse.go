package generator

import (
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formloom/formloom/pkg/domain/model"
)

// ParseSchema extracts a form schema from LLM output. Models are instructed
// to emit a single JSON object, but some wrap it in a ```json fence or add
// prose around it, so the parser cuts from the first '{' to the last '}'.
func ParseSchema(text string) (*model.FormSchema, error) {
	raw := extractJSON(text)
	if raw == "" {
		return nil, goerr.New("no JSON object found in LLM output",
			goerr.V("output", truncate(text, 256)))
	}

	var schema model.FormSchema
	if err := json.Unmarshal([]byte(raw), &schema); err != nil {
		return nil, goerr.Wrap(err, "failed to decode schema JSON",
			goerr.V("output", truncate(raw, 256)))
	}
	return &schema, nil
}

func extractJSON(text string) string {
	if idx := strings.Index(text, "```json"); idx >= 0 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			text = rest[:end]
		} else {
			text = rest
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
