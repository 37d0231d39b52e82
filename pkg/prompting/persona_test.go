package prompting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSystemPromptAuthorWithAlias(t *testing.T) {
	out := BuildSystemPrompt(Descriptor{Title: "Mural del Mar", Author: "Name: Alias"})

	require.Contains(t, out, "Author: Name (known as Alias).")
	require.NotContains(t, out, "Name: Alias")
}

func TestBuildSystemPromptAuthorAliasTrimsWhitespace(t *testing.T) {
	out := BuildSystemPrompt(Descriptor{Title: "X", Author: "  Diego Rivera :  El Maestro  "})

	require.Contains(t, out, "Author: Diego Rivera (known as El Maestro).")
}

func TestBuildSystemPromptAnonymousAuthor(t *testing.T) {
	out := BuildSystemPrompt(Descriptor{Title: "X", Author: "Sin nombre"})

	require.Contains(t, out, "Author with no public name.")
	require.NotContains(t, out, "Sin nombre")
}

func TestBuildSystemPromptAnonymousAuthorWithCredit(t *testing.T) {
	out := BuildSystemPrompt(Descriptor{Title: "X", Author: "sin nombre: Colectivo Sur"})

	require.Contains(t, out, "Author with no public name (credit: Colectivo Sur).")
}

func TestBuildSystemPromptPlainAuthor(t *testing.T) {
	out := BuildSystemPrompt(Descriptor{Title: "X", Author: "Picasso"})

	require.Contains(t, out, "Author: Picasso.")
}

func TestBuildSystemPromptNoAuthor(t *testing.T) {
	out := BuildSystemPrompt(Descriptor{Title: "X"})

	require.NotContains(t, out, "Author")
}

func TestBuildSystemPromptColorClause(t *testing.T) {
	with := BuildSystemPrompt(Descriptor{Title: "X", Color: "red, gold"})
	without := BuildSystemPrompt(Descriptor{Title: "X"})

	require.Contains(t, with, "approximate colors: red, gold")
	require.NotContains(t, without, "approximate colors")
}

func TestBuildSystemPromptEmbedsTitleQuoted(t *testing.T) {
	out := BuildSystemPrompt(Descriptor{Title: "Guernica"})

	require.Contains(t, out, "You are the artwork 'Guernica'.")
}

func TestBuildSystemPromptLengthDirective(t *testing.T) {
	out := BuildSystemPrompt(Descriptor{Title: "X", Length: "BREVES"})
	require.Contains(t, out, "Answer length: breves.")

	// Any string passes through; there is no enum.
	out = BuildSystemPrompt(Descriptor{Title: "X", Length: "dos frases exactas"})
	require.Contains(t, out, "Answer length: dos frases exactas.")
}

func TestBuildSystemPromptDefaultLength(t *testing.T) {
	out := BuildSystemPrompt(Descriptor{Title: "X"})

	require.Contains(t, out, "Answer length: intermedias.")
}

func TestBuildSystemPromptMentionsBreakSentinel(t *testing.T) {
	out := BuildSystemPrompt(Descriptor{Title: "X"})

	require.Contains(t, out, BreakSentinel)
}

func TestIsAnonymousAuthor(t *testing.T) {
	require.True(t, IsAnonymousAuthor("sin nombre"))
	require.True(t, IsAnonymousAuthor("Sin Nombre"))
	require.True(t, IsAnonymousAuthor("SIN NOMBRE (colectivo)"))
	require.False(t, IsAnonymousAuthor("Picasso"))
	require.False(t, IsAnonymousAuthor(""))
	require.False(t, IsAnonymousAuthor("nombre sin apellido"))
}
