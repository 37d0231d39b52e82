package prompts

// Role tags one side of a chat exchange, per the chat-model convention.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation turn. The JSON shape matches what the
// frontend sends as chatHistory, so caller-supplied turns decode directly
// into the type the assembler forwards to the provider.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// System wraps content into a system-role turn.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User wraps content into a user-role turn.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Assistant wraps content into an assistant-role turn.
func Assistant(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
