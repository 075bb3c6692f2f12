package completion

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// decode coerces raw model output into the target report struct, trying
// progressively more forgiving strategies:
//
//  1. strict JSON after stripping markdown fences
//  2. json-repair (missing quotes, trailing commas, unclosed brackets)
//  3. Hjson (unquoted keys, comments, optional commas)
//
// The target is overwritten only by the strategy that succeeds.
func decode(raw string, target any) error {
	cleaned := stripFences(raw)

	if err := json.Unmarshal([]byte(cleaned), target); err == nil {
		return nil
	}

	if repaired, err := jsonrepair.RepairJSON(cleaned); err == nil {
		if err := json.Unmarshal([]byte(repaired), target); err == nil {
			return nil
		}
	}

	var loose any
	if err := hjson.Unmarshal([]byte(cleaned), &loose); err == nil {
		if normalized, err := json.Marshal(loose); err == nil {
			if err := json.Unmarshal(normalized, target); err == nil {
				return nil
			}
		}
	}

	return fmt.Errorf("all parsing strategies failed for model output (%d bytes)", len(raw))
}

// stripFences removes markdown code fences the model sometimes wraps around
// its JSON despite the response MIME type.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
