package ollama

// ChatMessage is a single turn in a chat request or response.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatOptions carries runtime generation parameters.
type ChatOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ChatRequest is the payload for /api/chat.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  *ChatOptions  `json:"options,omitempty"`
}

// ChatResponse is the non-streaming /api/chat response.
type ChatResponse struct {
	Model           string      `json:"model"`
	Message         ChatMessage `json:"message"`
	Done            bool        `json:"done"`
	PromptEvalCount int         `json:"prompt_eval_count"`
	EvalCount       int         `json:"eval_count"`
}

// EmbeddingsRequest is the payload for /api/embeddings.
type EmbeddingsRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// EmbeddingsResponse is the /api/embeddings response.
type EmbeddingsResponse struct {
	Embedding []float64 `json:"embedding"`
}

// TagsResponse is the /api/tags response listing local models.
type TagsResponse struct {
	Models []TagModel `json:"models"`
}

// TagModel describes one locally available model.
type TagModel struct {
	Name    string          `json:"name"`
	Size    int64           `json:"size"`
	Details TagModelDetails `json:"details"`
}

// TagModelDetails carries model metadata reported by the backend.
type TagModelDetails struct {
	Families      []string `json:"families"`
	ParameterSize string   `json:"parameter_size"`
}
