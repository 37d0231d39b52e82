package prompting

import (
	"errors"

	"obra_api/pkg/prompts"
)

// ErrMissingTitle rejects chat requests that name no artwork. The handler
// must surface it before any generation call is made.
var ErrMissingTitle = errors.New("missing title")

// greetingRequest is the synthesized opening turn for a conversation that
// arrives with neither history nor a user message.
const greetingRequest = "Introduce yourself briefly as the artwork and give an opening greeting."

// Assemble builds the exact ordered message list to send to the provider:
// the persona system instruction, then either one synthesized greeting
// request (first contact) or the caller's history followed by the new user
// message. History is forwarded verbatim: no reordering, no filtering, no
// truncation. Deterministic and side-effect free.
func Assemble(d Descriptor, history []prompts.Message, userMessage string) ([]prompts.Message, error) {
	if d.Title == "" {
		return nil, ErrMissingTitle
	}

	messages := make([]prompts.Message, 0, len(history)+2)
	messages = append(messages, prompts.System(BuildSystemPrompt(d)))

	if len(history) == 0 && userMessage == "" {
		return append(messages, prompts.User(greetingRequest)), nil
	}

	messages = append(messages, history...)
	if userMessage != "" {
		messages = append(messages, prompts.User(userMessage))
	}
	return messages, nil
}
