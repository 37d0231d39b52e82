package prompting

import (
	"fmt"
	"strings"
)

// Descriptor carries the artwork metadata a persona prompt is built from.
// Title is the only required field; the handler validates it before any
// prompt is built.
type Descriptor struct {
	Title  string
	Author string
	Color  string
	Length string
}

const (
	// anonymousMarker prefixes an author field that flags an author without
	// a public name instead of naming one.
	anonymousMarker = "sin nombre"

	// DefaultLength is the answer-length directive used when the request
	// does not set one.
	DefaultLength = "intermedias"

	// BreakSentinel is the exact user message that lets the persona step out
	// of character for one turn.
	BreakSentinel = "0000"
)

// IsAnonymousAuthor reports whether the author value marks an anonymous
// author rather than naming one. The check is a case-insensitive prefix
// match so values like "Sin Nombre (colectivo)" also qualify.
func IsAnonymousAuthor(author string) bool {
	return strings.HasPrefix(strings.ToLower(author), anonymousMarker)
}

// authorClause renders the author part of the persona instruction. An author
// of the form "name: alias" is split into a formal name and a public-facing
// alias, both trimmed. Returns "" when no author was supplied.
func authorClause(author string) string {
	if author == "" {
		return ""
	}
	if name, alias, ok := strings.Cut(author, ":"); ok {
		name = strings.TrimSpace(name)
		alias = strings.TrimSpace(alias)
		if IsAnonymousAuthor(name) {
			return fmt.Sprintf("Author with no public name (credit: %s).", alias)
		}
		return fmt.Sprintf("Author: %s (known as %s).", name, alias)
	}
	if IsAnonymousAuthor(author) {
		return "Author with no public name."
	}
	return fmt.Sprintf("Author: %s.", author)
}

// BuildSystemPrompt compiles the descriptor into the system instruction that
// puts the model in the artwork's first-person voice. Pure function: equal
// descriptors always yield equal instructions.
func BuildSystemPrompt(d Descriptor) string {
	length := d.Length
	if length == "" {
		length = DefaultLength
	}

	var extras []string
	if d.Color != "" {
		extras = append(extras, "approximate colors: "+d.Color)
	}
	extrasTxt := ""
	if len(extras) > 0 {
		extrasTxt = " " + strings.Join(extras, " / ")
	}

	return fmt.Sprintf(
		"Act as a cultural tour guide. You are the artwork '%s'. %s%s\n",
		d.Title, authorClause(d.Author), extrasTxt,
	) +
		"Speak in a warm, evocative tone for visitors on an urban walking route; " +
		"suggest which details to look at and how to photograph it without disturbing the surroundings; " +
		"avoid technical jargon. " +
		fmt.Sprintf("If you receive exactly %s you may step out of character for a moment. ", BreakSentinel) +
		"Do not repeat the title in every reply. " +
		fmt.Sprintf("Answer length: %s.", strings.ToLower(length))
}
