package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Provider identifies a model backend.
type Provider string

const (
	Provider_Gemini Provider = "gemini"
	Provider_Ollama Provider = "ollama"
)

// ModelKind classifies a discovered model by capability.
type ModelKind string

const (
	ModelKind_LLM       ModelKind = "llm"
	ModelKind_Embedding ModelKind = "embedding"
)

// ModelInfo describes a model discovered from a backend. Instances are
// immutable and regenerated wholesale on each discovery pass.
type ModelInfo struct {
	URN      string
	Provider Provider
	Name     string
	Kind     ModelKind
	SizeGB   *float64
	Params   string
}

// ParseModelURN parses a standardized model identifier of the form
// "provider/model-name". The model name may itself contain slashes; the split
// happens on the first one. The provider segment is lower-cased.
func ParseModelURN(urn string) (Provider, string, error) {
	provider, model, found := strings.Cut(urn, "/")
	if !found {
		return "", "", NewMalformedIdentifierErr(fmt.Sprintf(
			"invalid model identifier %q: expected 'provider/model-name'", urn,
		))
	}
	return Provider(strings.ToLower(provider)), model, nil
}

// BuildModelURN joins a provider and model name into the URN form used as the
// sole cross-component model identifier.
func BuildModelURN(provider Provider, name string) string {
	return string(provider) + "/" + name
}

// RegistryConfig is the persisted model selection state. A zero value means
// the corresponding slot is unset.
type RegistryConfig struct {
	LLMSlot1      string
	LLMSlot2      string
	Embedding     string
	LastDiscovery time.Time
}

// ConfigStore persists the registry selection state. Load tolerates a missing
// file by returning an empty config; Save is a full overwrite.
type ConfigStore interface {
	Load(ctx context.Context) (RegistryConfig, error)
	Save(ctx context.Context, cfg RegistryConfig) error
}
