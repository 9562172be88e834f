// Package configfile persists model selections as a small JSON file next to
// the process. The file is the source of truth across restarts; every save
// rewrites it whole.
package configfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/araddon/dateparse"
	"github.com/cleitonmarx/symbiont/depend"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
)

// fileSchema is the on-disk shape. Every field is nullable: an unselected
// slot round-trips as JSON null, and last_discovery is tolerated in any
// common timestamp format, since the file is hand-editable.
type fileSchema struct {
	LLMSlot1      *string `json:"llm_slot_1"`
	LLMSlot2      *string `json:"llm_slot_2"`
	Embedding     *string `json:"embedding"`
	LastDiscovery *string `json:"last_discovery"`
}

// nullable maps the registry's "unset means empty string" convention onto
// the file's "unset means null" convention.
func nullable(urn string) *string {
	if urn == "" {
		return nil
	}
	return &urn
}

func orEmpty(urn *string) string {
	if urn == nil {
		return ""
	}
	return *urn
}

// Store implements domain.ConfigStore on a JSON file.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore creates a new store
func NewStore(path string, logger *log.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load implements domain.ConfigStore.Load. A missing file is not an error;
// it simply means no selections have been made yet.
func (s *Store) Load(ctx context.Context) (domain.RegistryConfig, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.RegistryConfig{}, nil
	}
	if err != nil {
		return domain.RegistryConfig{}, fmt.Errorf("read config file: %w", err)
	}

	var schema fileSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return domain.RegistryConfig{}, fmt.Errorf("parse config file %s: %w", s.path, err)
	}

	cfg := domain.RegistryConfig{
		LLMSlot1:  orEmpty(schema.LLMSlot1),
		LLMSlot2:  orEmpty(schema.LLMSlot2),
		Embedding: orEmpty(schema.Embedding),
	}
	if schema.LastDiscovery != nil && *schema.LastDiscovery != "" {
		ts, err := dateparse.ParseAny(*schema.LastDiscovery)
		if err != nil {
			s.logger.Printf("WARN: ignoring unparseable last_discovery %q: %v", *schema.LastDiscovery, err)
		} else {
			cfg.LastDiscovery = ts.UTC()
		}
	}
	return cfg, nil
}

// Save implements domain.ConfigStore.Save. The file is written to a sibling
// temp path and renamed into place so a crash mid-write never leaves a
// truncated config behind.
func (s *Store) Save(ctx context.Context, cfg domain.RegistryConfig) error {
	schema := fileSchema{
		LLMSlot1:  nullable(cfg.LLMSlot1),
		LLMSlot2:  nullable(cfg.LLMSlot2),
		Embedding: nullable(cfg.Embedding),
	}
	if !cfg.LastDiscovery.IsZero() {
		ts := cfg.LastDiscovery.UTC().Format(time.RFC3339)
		schema.LastDiscovery = &ts
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	return nil
}

// InitConfigStore initializes the model selection store dependency.
type InitConfigStore struct {
	Logger *log.Logger `resolve:""`
	Path   string      `config:"MODEL_CONFIG_PATH" default:"model_config.json"`
}

// Initialize registers the store
func (i InitConfigStore) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ConfigStore](NewStore(i.Path, i.Logger))
	return ctx, nil
}
