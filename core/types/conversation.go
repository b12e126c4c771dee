package types

// Message is a single working-memory entry: one utterance with its role.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Episode is the full record of one completed turn.
type Episode struct {
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Context   []Message `json:"context"`
	Retrieved []Episode `json:"retrieved,omitempty"`
	Intent    Intent    `json:"intent"`
	Goals     []Goal    `json:"goals"`
}
