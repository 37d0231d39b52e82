package prompting

import (
	"fmt"
	"testing"

	"obra_api/pkg/prompts"

	"github.com/stretchr/testify/require"
)

func TestAssembleRejectsMissingTitle(t *testing.T) {
	_, err := Assemble(Descriptor{}, nil, "hola")

	require.ErrorIs(t, err, ErrMissingTitle)
}

func TestAssembleFirstContactSynthesizesGreeting(t *testing.T) {
	messages, err := Assemble(Descriptor{Title: "Guernica"}, nil, "")
	require.NoError(t, err)

	require.Len(t, messages, 2)
	require.Equal(t, prompts.RoleSystem, messages[0].Role)
	require.Equal(t, prompts.RoleUser, messages[1].Role)
	require.Equal(t, greetingRequest, messages[1].Content)
}

func TestAssembleContinuationKeepsOrder(t *testing.T) {
	history := []prompts.Message{
		prompts.Assistant("Hola, soy la obra."),
		prompts.User("¿Quién te pintó?"),
	}

	messages, err := Assemble(Descriptor{Title: "Guernica"}, history, "hi")
	require.NoError(t, err)

	require.Len(t, messages, 4)
	require.Equal(t, prompts.RoleSystem, messages[0].Role)
	require.Equal(t, history[0], messages[1])
	require.Equal(t, history[1], messages[2])
	require.Equal(t, prompts.User("hi"), messages[3])
}

func TestAssembleHistoryWithoutNewMessage(t *testing.T) {
	history := []prompts.Message{prompts.User("hola")}

	messages, err := Assemble(Descriptor{Title: "Guernica"}, history, "")
	require.NoError(t, err)

	// No greeting is synthesized once any history exists.
	require.Len(t, messages, 2)
	require.Equal(t, history[0], messages[1])
}

func TestAssembleNewMessageWithoutHistory(t *testing.T) {
	messages, err := Assemble(Descriptor{Title: "Guernica"}, nil, "hola")
	require.NoError(t, err)

	require.Len(t, messages, 2)
	require.Equal(t, prompts.User("hola"), messages[1])
}

func TestAssembleIsIdempotent(t *testing.T) {
	d := Descriptor{Title: "Guernica", Author: "Picasso", Color: "grey", Length: "breves"}
	history := []prompts.Message{prompts.Assistant("a"), prompts.User("b")}

	first, err := Assemble(d, history, "c")
	require.NoError(t, err)
	second, err := Assemble(d, history, "c")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestAssembleDoesNotTruncateHistory(t *testing.T) {
	// Unbounded history is a known cost characteristic; lock in that the
	// assembler forwards everything verbatim rather than trimming.
	history := make([]prompts.Message, 0, 400)
	for i := 0; i < 200; i++ {
		history = append(history, prompts.User(fmt.Sprintf("q%d", i)))
		history = append(history, prompts.Assistant(fmt.Sprintf("a%d", i)))
	}

	messages, err := Assemble(Descriptor{Title: "Guernica"}, history, "last")
	require.NoError(t, err)

	require.Len(t, messages, len(history)+2)
	require.Equal(t, history, messages[1:len(messages)-1])
}
