package prompting

import (
	"encoding/json"
	"fmt"
	"strings"

	"obra_api/pkg/models"
)

// Entry is one catalog candidate for the match operation. Index is implied
// by position in the slice; entries are rebuilt fresh per request.
type Entry struct {
	Name   string
	Author string
	Color  string
}

// matchSystemPrompt fixes the output contract for the vision model: describe
// first, pick exactly one catalog entry (or -1), answer with one JSON object
// and nothing else.
const matchSystemPrompt = `You are an assistant that identifies artworks in photographs.
First describe objectively what appears in the image. Then select the single catalog entry that best matches the photographed artwork, using -1 if none of them match.
Respond with a single JSON object containing exactly these keys and nothing else:
{"description": string, "best_index": integer, "best_name": string, "reason": string, "confidence": number between 0 and 1}
Do not add any text outside the JSON and do not pick entries that are not in the catalog.`

// RenderCatalog serializes entries as one "{index}: name | author | color"
// line per entry, in ascending index order.
func RenderCatalog(entries []Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%d: %s | %s | %s", i, e.Name, e.Author, e.Color)
	}
	return strings.Join(lines, "\n")
}

// BuildMatchPrompt compiles the catalog into the (system, user) prompt pair
// for the vision call. The image itself travels separately as an inline
// attachment on the user turn.
func BuildMatchPrompt(entries []Entry) (system, user string) {
	return matchSystemPrompt, "Catalog:\n" + RenderCatalog(entries)
}

// FormatError reports a model reply that could not be parsed as the expected
// JSON object. It is surfaced as a request failure, never retried.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return "unexpected model output: " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

// Normalize parses the raw model output and guarantees every MatchResult
// field is present, defaulting any the model omitted (best_index defaults to
// -1, everything else to its zero value). A best_index outside the catalog
// range is passed through unchanged; validating it against the catalog is
// deliberately not done here.
func Normalize(raw string) (models.MatchResult, error) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return models.MatchResult{}, &FormatError{Err: err}
	}

	out := models.MatchResult{BestIndex: -1}
	if v, ok := parsed["description"].(string); ok {
		out.Description = v
	}
	if v, ok := parsed["best_index"].(float64); ok {
		out.BestIndex = int(v)
	}
	if v, ok := parsed["best_name"].(string); ok {
		out.BestName = v
	}
	if v, ok := parsed["reason"].(string); ok {
		out.Reason = v
	}
	if v, ok := parsed["confidence"].(float64); ok {
		out.Confidence = v
	}
	return out, nil
}
