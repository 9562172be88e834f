package gemini

// Part is a single piece of content, text only in this client.
type Part struct {
	Text string `json:"text"`
}

// Content is a role-tagged group of parts. The backend expects the assistant
// role to be spelled "model".
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerationConfig carries runtime generation parameters.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GenerateContentRequest is the payload for models/{model}:generateContent.
type GenerateContentRequest struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// GenerateContentResponse is the generateContent response.
type GenerateContentResponse struct {
	Candidates    []Candidate    `json:"candidates"`
	UsageMetadata *UsageMetadata `json:"usageMetadata"`
}

// Candidate is one generated completion.
type Candidate struct {
	Content Content `json:"content"`
}

// UsageMetadata reports token accounting for a generation.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// EmbedContentRequest is one entry of a batchEmbedContents payload.
type EmbedContentRequest struct {
	Model   string  `json:"model"`
	Content Content `json:"content"`
}

// BatchEmbedContentsRequest is the payload for models/{model}:batchEmbedContents.
type BatchEmbedContentsRequest struct {
	Requests []EmbedContentRequest `json:"requests"`
}

// BatchEmbedContentsResponse is the batchEmbedContents response.
type BatchEmbedContentsResponse struct {
	Embeddings []ContentEmbedding `json:"embeddings"`
}

// ContentEmbedding is a single embedding vector.
type ContentEmbedding struct {
	Values []float64 `json:"values"`
}

// ListModelsResponse is one page of the models listing.
type ListModelsResponse struct {
	Models        []ListedModel `json:"models"`
	NextPageToken string        `json:"nextPageToken"`
}

// ListedModel describes one hosted model.
type ListedModel struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}
