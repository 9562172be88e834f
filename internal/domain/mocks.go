package domain

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// mocks.go provides hand-maintained testify mocks for the domain ports,
// shared by the unit tests across packages.

type mockTB interface {
	mock.TestingT
	Cleanup(func())
}

// MockChatClient is a testify mock for ChatClient.
type MockChatClient struct {
	mock.Mock
}

// NewMockChatClient creates a MockChatClient that asserts its expectations on cleanup.
func NewMockChatClient(t mockTB) *MockChatClient {
	m := &MockChatClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockChatClient) Chat(ctx context.Context, req PromptRequest, model string) (AIResponse, error) {
	args := m.Called(ctx, req, model)
	return args.Get(0).(AIResponse), args.Error(1)
}

// MockEmbedder is a testify mock for Embedder.
type MockEmbedder struct {
	mock.Mock
}

// NewMockEmbedder creates a MockEmbedder that asserts its expectations on cleanup.
func NewMockEmbedder(t mockTB) *MockEmbedder {
	m := &MockEmbedder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEmbedder) EmbedText(ctx context.Context, model, text string) ([]float64, error) {
	args := m.Called(ctx, model, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockEmbedder) EmbedBatch(ctx context.Context, model string, texts []string) ([][]float64, error) {
	args := m.Called(ctx, model, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float64), args.Error(1)
}

// MockModelCatalog is a testify mock for ModelCatalog.
type MockModelCatalog struct {
	mock.Mock
}

// NewMockModelCatalog creates a MockModelCatalog that asserts its expectations on cleanup.
func NewMockModelCatalog(t mockTB) *MockModelCatalog {
	m := &MockModelCatalog{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockModelCatalog) ProviderName() Provider {
	args := m.Called()
	return args.Get(0).(Provider)
}

func (m *MockModelCatalog) DiscoverModels(ctx context.Context) []ModelInfo {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]ModelInfo)
}

// MockProviderResolver is a testify mock for ProviderResolver.
type MockProviderResolver struct {
	mock.Mock
}

// NewMockProviderResolver creates a MockProviderResolver that asserts its expectations on cleanup.
func NewMockProviderResolver(t mockTB) *MockProviderResolver {
	m := &MockProviderResolver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProviderResolver) Chat(provider Provider) (ChatClient, error) {
	args := m.Called(provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ChatClient), args.Error(1)
}

func (m *MockProviderResolver) Embedder(provider Provider) (Embedder, error) {
	args := m.Called(provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Embedder), args.Error(1)
}

func (m *MockProviderResolver) Catalogs() []ModelCatalog {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]ModelCatalog)
}

// MockBoundEmbedder is a testify mock for BoundEmbedder.
type MockBoundEmbedder struct {
	mock.Mock
}

// NewMockBoundEmbedder creates a MockBoundEmbedder that asserts its expectations on cleanup.
func NewMockBoundEmbedder(t mockTB) *MockBoundEmbedder {
	m := &MockBoundEmbedder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBoundEmbedder) Provider() Provider {
	args := m.Called()
	return args.Get(0).(Provider)
}

func (m *MockBoundEmbedder) Model() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockBoundEmbedder) EmbedText(ctx context.Context, text string) ([]float64, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockBoundEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float64), args.Error(1)
}

// MockEmbeddingSource is a testify mock for EmbeddingSource.
type MockEmbeddingSource struct {
	mock.Mock
}

// NewMockEmbeddingSource creates a MockEmbeddingSource that asserts its expectations on cleanup.
func NewMockEmbeddingSource(t mockTB) *MockEmbeddingSource {
	m := &MockEmbeddingSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEmbeddingSource) ActiveEmbedder(ctx context.Context) (BoundEmbedder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(BoundEmbedder), args.Error(1)
}

func (m *MockEmbeddingSource) Reset() {
	m.Called()
}

// MockModelRegistry is a testify mock for ModelRegistry.
type MockModelRegistry struct {
	mock.Mock
}

// NewMockModelRegistry creates a MockModelRegistry that asserts its expectations on cleanup.
func NewMockModelRegistry(t mockTB) *MockModelRegistry {
	m := &MockModelRegistry{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockModelRegistry) Initialize(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockModelRegistry) RefreshModels(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockModelRegistry) AvailableLLMs() []ModelInfo {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]ModelInfo)
}

func (m *MockModelRegistry) AvailableEmbeddings() []ModelInfo {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]ModelInfo)
}

func (m *MockModelRegistry) AllModels() []ModelInfo {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]ModelInfo)
}

func (m *MockModelRegistry) ActiveLLM(slot int) (string, error) {
	args := m.Called(slot)
	return args.String(0), args.Error(1)
}

func (m *MockModelRegistry) ActiveEmbedding() string {
	return m.Called().String(0)
}

func (m *MockModelRegistry) SetActiveLLM(ctx context.Context, slot int, urn string) error {
	return m.Called(ctx, slot, urn).Error(0)
}

func (m *MockModelRegistry) SetActiveEmbedding(ctx context.Context, urn string) error {
	return m.Called(ctx, urn).Error(0)
}

func (m *MockModelRegistry) ModelInfo(urn string) (ModelInfo, bool) {
	args := m.Called(urn)
	return args.Get(0).(ModelInfo), args.Bool(1)
}

func (m *MockModelRegistry) HasProvider(provider Provider) bool {
	return m.Called(provider).Bool(0)
}

// MockConfigStore is a testify mock for ConfigStore.
type MockConfigStore struct {
	mock.Mock
}

// NewMockConfigStore creates a MockConfigStore that asserts its expectations on cleanup.
func NewMockConfigStore(t mockTB) *MockConfigStore {
	m := &MockConfigStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockConfigStore) Load(ctx context.Context) (RegistryConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(RegistryConfig), args.Error(1)
}

func (m *MockConfigStore) Save(ctx context.Context, cfg RegistryConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

// MockDocumentStore is a testify mock for DocumentStore.
type MockDocumentStore struct {
	mock.Mock
}

// NewMockDocumentStore creates a MockDocumentStore that asserts its expectations on cleanup.
func NewMockDocumentStore(t mockTB) *MockDocumentStore {
	m := &MockDocumentStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDocumentStore) Upsert(ctx context.Context, collection string, records []VectorRecord) error {
	return m.Called(ctx, collection, records).Error(0)
}

func (m *MockDocumentStore) Query(ctx context.Context, collection string, embedding []float64, k int) ([]RetrievedChunk, error) {
	args := m.Called(ctx, collection, embedding, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RetrievedChunk), args.Error(1)
}

func (m *MockDocumentStore) ListIngestedFilenames(ctx context.Context, collection string) ([]string, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockPDFReader is a testify mock for PDFReader.
type MockPDFReader struct {
	mock.Mock
}

// NewMockPDFReader creates a MockPDFReader that asserts its expectations on cleanup.
func NewMockPDFReader(t mockTB) *MockPDFReader {
	m := &MockPDFReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPDFReader) ExtractPages(path string) ([]PageText, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PageText), args.Error(1)
}
