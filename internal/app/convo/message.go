/*
Package convo owns per-session conversation state: the message history seeded
with the system prompt, the display history rendered to the user, and the
engine that drives one turn of the conversation against the model service.
*/
package convo

// Role identifies the author of a conversation message.
type Role string

const (
	// RoleSystem marks the instruction prompt that always leads the history.
	RoleSystem Role = "system"

	// RoleUser marks messages submitted by the user.
	RoleUser Role = "user"

	// RoleAssistant marks replies produced by the model.
	RoleAssistant Role = "assistant"
)

// Message is one immutable conversation entry.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
