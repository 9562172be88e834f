// Package registry holds the per-process model selection state: which models
// each provider offers and which one is active per slot. Selections survive
// restarts through a ConfigStore and are re-validated against a fresh
// discovery pass on startup.
package registry

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

// LLM slot identifiers. Slot 1 is the primary generation model, slot 2 the
// secondary used for analysis stages.
const (
	SlotPrimary   = 1
	SlotSecondary = 2
)

// Registry implements domain.ModelRegistry.
type Registry struct {
	store    domain.ConfigStore
	resolver domain.ProviderResolver
	clock    domain.CurrentTimeProvider
	logger   *log.Logger

	mu          sync.RWMutex
	models      map[string]domain.ModelInfo
	cfg         domain.RegistryConfig
	initialized bool
}

// New creates a new registry
func New(store domain.ConfigStore, resolver domain.ProviderResolver, clock domain.CurrentTimeProvider, logger *log.Logger) *Registry {
	return &Registry{
		store:    store,
		resolver: resolver,
		clock:    clock,
		logger:   logger,
		models:   map[string]domain.ModelInfo{},
	}
}

// Initialize implements domain.ModelRegistry.Initialize. Calling it again
// after a successful pass is a no-op; use RefreshModels to force rediscovery.
func (r *Registry) Initialize(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return nil
	}

	cfg, err := r.store.Load(spanCtx)
	if err != nil {
		r.logger.Printf("WARN: could not load model selections, starting fresh: %v", err)
		cfg = domain.RegistryConfig{}
	}
	r.cfg = cfg

	if err := r.refreshLocked(spanCtx); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	r.initialized = true
	return nil
}

// RefreshModels implements domain.ModelRegistry.RefreshModels
func (r *Registry) RefreshModels(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.refreshLocked(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// refreshLocked runs one discovery pass across every provider, re-validates
// the persisted selections against the fresh listing and saves the result.
// Callers must hold the write lock.
func (r *Registry) refreshLocked(ctx context.Context) error {
	discovered := map[string]domain.ModelInfo{}
	for _, catalog := range r.resolver.Catalogs() {
		for _, model := range catalog.DiscoverModels(ctx) {
			discovered[model.URN] = model
		}
	}
	r.models = discovered
	r.logger.Printf("INFO: model discovery found %d models", len(discovered))

	r.cfg.LLMSlot1 = r.validOrDefault(r.cfg.LLMSlot1, domain.ModelKind_LLM, r.defaultSlot1)
	r.cfg.LLMSlot2 = r.validOrDefault(r.cfg.LLMSlot2, domain.ModelKind_LLM, r.defaultSlot2)
	r.cfg.Embedding = r.validOrDefault(r.cfg.Embedding, domain.ModelKind_Embedding, r.defaultEmbedding)
	r.cfg.LastDiscovery = r.clock.Now().UTC()

	// Discovery results are useful even when the config file cannot be
	// written (read-only volume); persistence is best-effort here. Setters
	// still fail hard so a user-made selection is never silently lost.
	if err := r.store.Save(ctx, r.cfg); err != nil {
		r.logger.Printf("WARN: failed to persist model selections: %v", err)
	}
	return nil
}

// validOrDefault keeps a persisted selection only while discovery still lists
// it with the right kind; anything stale falls back to the computed default.
func (r *Registry) validOrDefault(urn string, kind domain.ModelKind, pickDefault func() string) string {
	if model, ok := r.models[urn]; ok && model.Kind == kind {
		return urn
	}
	fallback := pickDefault()
	if urn != "" && urn != fallback {
		r.logger.Printf("WARN: selected model %q is no longer available, falling back to %q", urn, fallback)
	}
	return fallback
}

// defaultSlot1 prefers a hosted flash alias (excluding lite variants), then
// any hosted chat model, then whatever chat model exists.
func (r *Registry) defaultSlot1() string {
	candidates := r.sortedByKind(domain.ModelKind_LLM)
	for _, m := range candidates {
		if m.Provider != domain.Provider_Gemini {
			continue
		}
		lower := strings.ToLower(m.Name)
		if strings.Contains(lower, "flash") && !strings.Contains(lower, "lite") {
			return m.URN
		}
	}
	for _, m := range candidates {
		if m.Provider == domain.Provider_Gemini {
			return m.URN
		}
	}
	return firstURN(candidates)
}

// defaultSlot2 prefers a local chat model so the analysis stage keeps working
// offline, then the second discovered model so the slots stay distinct, then
// whatever is left.
func (r *Registry) defaultSlot2() string {
	candidates := r.sortedByKind(domain.ModelKind_LLM)
	for _, m := range candidates {
		if m.Provider == domain.Provider_Ollama {
			return m.URN
		}
	}
	if len(candidates) > 1 {
		return candidates[1].URN
	}
	return firstURN(candidates)
}

// defaultEmbedding prefers a local embedding model. Stored vectors only make
// sense against the model that produced them, so a local default avoids
// coupling the vector store to cloud availability.
func (r *Registry) defaultEmbedding() string {
	candidates := r.sortedByKind(domain.ModelKind_Embedding)
	for _, m := range candidates {
		if m.Provider == domain.Provider_Ollama {
			return m.URN
		}
	}
	return firstURN(candidates)
}

// AvailableLLMs implements domain.ModelRegistry.AvailableLLMs
func (r *Registry) AvailableLLMs() []domain.ModelInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedByKind(domain.ModelKind_LLM)
}

// AvailableEmbeddings implements domain.ModelRegistry.AvailableEmbeddings
func (r *Registry) AvailableEmbeddings() []domain.ModelInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedByKind(domain.ModelKind_Embedding)
}

// AllModels implements domain.ModelRegistry.AllModels
func (r *Registry) AllModels() []domain.ModelInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models := make([]domain.ModelInfo, 0, len(r.models))
	for _, m := range r.models {
		models = append(models, m)
	}
	sortByURN(models)
	return models
}

// ActiveLLM implements domain.ModelRegistry.ActiveLLM
func (r *Registry) ActiveLLM(slot int) (string, error) {
	if err := validateSlot(slot); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	urn := r.cfg.LLMSlot1
	if slot == SlotSecondary {
		urn = r.cfg.LLMSlot2
	}
	if urn == "" {
		return "", domain.NewNotFoundErr(fmt.Sprintf("no model selected for LLM slot %d", slot))
	}
	return urn, nil
}

// ActiveEmbedding implements domain.ModelRegistry.ActiveEmbedding
func (r *Registry) ActiveEmbedding() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg.Embedding
}

// SetActiveLLM implements domain.ModelRegistry.SetActiveLLM. Unknown models
// are rejected so a typo cannot silently disable a slot.
func (r *Registry) SetActiveLLM(ctx context.Context, slot int, urn string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := validateSlot(slot); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSelectable(urn, domain.ModelKind_LLM); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	previous := r.cfg
	if slot == SlotPrimary {
		r.cfg.LLMSlot1 = urn
	} else {
		r.cfg.LLMSlot2 = urn
	}

	if err := r.store.Save(spanCtx, r.cfg); telemetry.RecordErrorAndStatus(span, err) {
		r.cfg = previous
		return fmt.Errorf("save model selections: %w", err)
	}
	return nil
}

// SetActiveEmbedding implements domain.ModelRegistry.SetActiveEmbedding
func (r *Registry) SetActiveEmbedding(ctx context.Context, urn string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSelectable(urn, domain.ModelKind_Embedding); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	previous := r.cfg
	r.cfg.Embedding = urn

	if err := r.store.Save(spanCtx, r.cfg); telemetry.RecordErrorAndStatus(span, err) {
		r.cfg = previous
		return fmt.Errorf("save model selections: %w", err)
	}
	return nil
}

// ModelInfo implements domain.ModelRegistry.ModelInfo
func (r *Registry) ModelInfo(urn string) (domain.ModelInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	model, ok := r.models[urn]
	return model, ok
}

// HasProvider implements domain.ModelRegistry.HasProvider
func (r *Registry) HasProvider(provider domain.Provider) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.models {
		if m.Provider == provider {
			return true
		}
	}
	return false
}

// checkSelectable validates a selection candidate against the current
// discovery snapshot. Callers must hold the lock.
func (r *Registry) checkSelectable(urn string, kind domain.ModelKind) error {
	if _, _, err := domain.ParseModelURN(urn); err != nil {
		return err
	}
	model, ok := r.models[urn]
	if !ok {
		return domain.NewValidationErr(fmt.Sprintf("model %q was not found by discovery; refresh models and retry", urn))
	}
	if model.Kind != kind {
		return domain.NewValidationErr(fmt.Sprintf("model %q is a %s model, not a %s model", urn, model.Kind, kind))
	}
	return nil
}

func (r *Registry) sortedByKind(kind domain.ModelKind) []domain.ModelInfo {
	models := make([]domain.ModelInfo, 0, len(r.models))
	for _, m := range r.models {
		if m.Kind == kind {
			models = append(models, m)
		}
	}
	sortByURN(models)
	return models
}

func sortByURN(models []domain.ModelInfo) {
	sort.Slice(models, func(i, j int) bool { return models[i].URN < models[j].URN })
}

func firstURN(models []domain.ModelInfo) string {
	if len(models) == 0 {
		return ""
	}
	return models[0].URN
}

func validateSlot(slot int) error {
	if slot != SlotPrimary && slot != SlotSecondary {
		return domain.NewInvalidSlotErr(fmt.Sprintf("invalid LLM slot %d: must be 1 or 2", slot))
	}
	return nil
}

// InitRegistry initializes the model registry dependency and runs the
// startup discovery pass.
type InitRegistry struct {
	Store    domain.ConfigStore         `resolve:""`
	Resolver domain.ProviderResolver    `resolve:""`
	Clock    domain.CurrentTimeProvider `resolve:""`
	Logger   *log.Logger                `resolve:""`
}

// Initialize registers the registry
func (i InitRegistry) Initialize(ctx context.Context) (context.Context, error) {
	r := New(i.Store, i.Resolver, i.Clock, i.Logger)
	if err := r.Initialize(ctx); err != nil {
		return ctx, err
	}
	depend.Register[domain.ModelRegistry](r)
	return ctx, nil
}
