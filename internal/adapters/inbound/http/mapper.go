package http

import (
	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/usecases"
)

// toError maps the domain error taxonomy onto the API error codes. The
// mapping deliberately distinguishes caller mistakes (400), absent
// selections (404), unusable provider configuration (409) and backend
// failures (503); anything unclassified is a 500.
func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch err.(type) {
	case *domain.ValidationErr, *domain.MalformedIdentifierErr, *domain.InvalidSlotErr:
		errResp.Error.Code = ErrCodeBadRequest
		errResp.Error.Message = err.Error()
	case *domain.NotFoundErr:
		errResp.Error.Code = ErrCodeNotFound
		errResp.Error.Message = err.Error()
	case *domain.MissingCredentialErr, *domain.UnknownProviderErr:
		errResp.Error.Code = ErrCodeConflict
		errResp.Error.Message = err.Error()
	case *domain.GenerationErr, *domain.TimeoutErr:
		errResp.Error.Code = ErrCodeUnavailable
		errResp.Error.Message = err.Error()
	case *domain.AnalysisFailureErr:
		errResp.Error.Code = ErrCodeInternalError
		errResp.Error.Message = err.Error()
	default:
		errResp.Error.Code = ErrCodeInternalError
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toAIResponse(resp domain.AIResponse) AIResponseResp {
	out := AIResponseResp{
		Content:    resp.Content,
		TokensUsed: resp.TokensUsed,
		ModelName:  resp.ModelName,
	}
	for _, step := range resp.Steps {
		out.Steps = append(out.Steps, PipelineStepResp{Label: step.Label, Content: step.Content})
	}
	return out
}

func toModelInfo(info domain.ModelInfo) ModelInfoResp {
	return ModelInfoResp{
		URN:      info.URN,
		Provider: string(info.Provider),
		Name:     info.Name,
		Kind:     string(info.Kind),
		SizeGB:   info.SizeGB,
		Params:   info.Params,
	}
}

func toModelOverview(overview usecases.ModelOverview) ModelOverviewResp {
	resp := ModelOverviewResp{
		LLMs:            []ModelInfoResp{},
		Embeddings:      []ModelInfoResp{},
		ActiveLLMSlot1:  overview.ActiveLLMSlot1,
		ActiveLLMSlot2:  overview.ActiveLLMSlot2,
		ActiveEmbedding: overview.ActiveEmbedding,
	}
	for _, info := range overview.LLMs {
		resp.LLMs = append(resp.LLMs, toModelInfo(info))
	}
	for _, info := range overview.Embeddings {
		resp.Embeddings = append(resp.Embeddings, toModelInfo(info))
	}
	return resp
}

func toListFiles(files []domain.SourceFile) ListFilesResp {
	resp := ListFilesResp{Files: []SourceFileResp{}}
	for _, file := range files {
		resp.Files = append(resp.Files, SourceFileResp{
			Name:   file.Name,
			Status: string(file.Status),
		})
	}
	return resp
}

func toQAAnswer(answer domain.QAAnswer) QAAnswerResp {
	resp := QAAnswerResp{
		Answer:    answer.Answer,
		Citations: []CitationResp{},
		ModelName: answer.ModelName,
	}
	for _, citation := range answer.Citations {
		resp.Citations = append(resp.Citations, CitationResp{
			Index:   citation.Index,
			Source:  citation.Source,
			Page:    citation.Page,
			Excerpt: citation.Excerpt,
		})
	}
	return resp
}
