package domain

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRole_System    ChatRole = "system"
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
)

// DefaultSystemRole is the persona used when a request does not set one.
const DefaultSystemRole = "You are a helpful assistant."

// ChatMessage is a single turn of prior conversation history.
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// PromptRequest is the input to any generation call. It is a value object
// with no identity.
type PromptRequest struct {
	SystemRole  string
	UserQuery   string
	Temperature float64
	History     []ChatMessage
}

// Validate checks the request invariants: a non-empty query and a temperature
// within [0, 1].
func (r PromptRequest) Validate() error {
	if r.UserQuery == "" {
		return NewValidationErr("user_query must not be empty")
	}
	if r.Temperature < 0 || r.Temperature > 1 {
		return NewValidationErr("temperature must be between 0.0 and 1.0")
	}
	return nil
}

// EffectiveSystemRole returns the request's system role, falling back to the
// default persona when unset.
func (r PromptRequest) EffectiveSystemRole() string {
	if r.SystemRole == "" {
		return DefaultSystemRole
	}
	return r.SystemRole
}

// PipelineStep is a labeled intermediate result produced by a multi-stage
// pipeline such as chain-of-thought.
type PipelineStep struct {
	Label   string
	Content string
}

// AIResponse is the output of any generation call. TokensUsed is best-effort:
// some backends report authoritative counts, others estimate.
type AIResponse struct {
	Content    string
	TokensUsed int
	ModelName  string
	Steps      []PipelineStep
}
