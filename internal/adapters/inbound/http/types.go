package http

// Request and response payloads of the JSON API. Field names mirror the
// wire format of the original service contracts.

// PromptReq is the request body of the fundamentals endpoints.
type PromptReq struct {
	SystemRole  string  `json:"system_role,omitempty"`
	UserQuery   string  `json:"user_query"`
	Temperature float64 `json:"temperature"`
	Slot        int     `json:"slot,omitempty"`
}

// PipelineStepResp is one labeled intermediate result of a multi-stage
// pipeline.
type PipelineStepResp struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

// AIResponseResp is the response body of every generation endpoint.
type AIResponseResp struct {
	Content    string             `json:"content"`
	TokensUsed int                `json:"tokens_used"`
	ModelName  string             `json:"model_name"`
	Steps      []PipelineStepResp `json:"steps,omitempty"`
}

// ModelInfoResp describes one discovered model.
type ModelInfoResp struct {
	URN      string   `json:"urn"`
	Provider string   `json:"provider"`
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	SizeGB   *float64 `json:"size_gb,omitempty"`
	Params   string   `json:"params,omitempty"`
}

// ModelOverviewResp is the discovered model set plus the active selections.
type ModelOverviewResp struct {
	LLMs            []ModelInfoResp `json:"llms"`
	Embeddings      []ModelInfoResp `json:"embeddings"`
	ActiveLLMSlot1  string          `json:"active_llm_slot_1"`
	ActiveLLMSlot2  string          `json:"active_llm_slot_2"`
	ActiveEmbedding string          `json:"active_embedding"`
}

// SelectModelReq is the request body of the model selection endpoint.
type SelectModelReq struct {
	Target string `json:"target"`
	URN    string `json:"urn"`
}

// SourceFileResp pairs a source-directory entry with its ingestion status.
type SourceFileResp struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ListFilesResp is the response body of the file listing endpoints.
type ListFilesResp struct {
	Files []SourceFileResp `json:"files"`
}

// IngestReq is the request body of the ingestion endpoints.
type IngestReq struct {
	Filenames []string `json:"filenames"`
}

// IngestResp maps each requested filename to its ingestion outcome.
type IngestResp struct {
	Results map[string]string `json:"results"`
}

// RAGQueryReq is the request body of the RAG query endpoint.
type RAGQueryReq struct {
	Query string `json:"query"`
	Slot  int    `json:"slot,omitempty"`
}

// QAAskReq is the request body of the Q&A ask endpoint.
type QAAskReq struct {
	Question string `json:"question"`
	Slot     int    `json:"slot,omitempty"`
}

// CitationResp binds a numbered context marker to its source document.
type CitationResp struct {
	Index   int    `json:"index"`
	Source  string `json:"source"`
	Page    int    `json:"page"`
	Excerpt string `json:"excerpt"`
}

// QAAnswerResp is the response body of the Q&A ask endpoint.
type QAAnswerResp struct {
	Answer    string         `json:"answer"`
	Citations []CitationResp `json:"citations"`
	ModelName string         `json:"model_name"`
}

// Error codes returned by the API.
const (
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeUnavailable   = "UNAVAILABLE"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// ErrorResp is the error envelope of every non-2xx response.
type ErrorResp struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
