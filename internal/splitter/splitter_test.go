package splitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit_TextWithinChunkSize(t *testing.T) {
	s := New(100, 10)

	tests := map[string]string{
		"empty":      "",
		"short":      "hello world",
		"exact-size": strings.Repeat("a", 100),
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, []string{text}, s.Split(text))
		})
	}
}

func TestSplit_ParagraphSeparator(t *testing.T) {
	s := New(20, 5)
	text := "first paragraph\n\nsecond paragraph\n\nthird one"

	chunks := s.Split(text)

	assert.Equal(t, []string{"first paragraph", "second paragraph", "third one"}, chunks)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 20)
	}
}

func TestSplit_SentenceSeparator(t *testing.T) {
	s := New(20, 5)

	chunks := s.Split("The sky is blue. Grass is green.")

	assert.Equal(t, []string{"The sky is blue", "Grass is green."}, chunks)
}

func TestSplit_GreedyMergeWithOverlap(t *testing.T) {
	s := New(6, 3)

	chunks := s.Split("aa bb cc dd ee")

	assert.Equal(t, []string{"aa bb", "bb cc", "cc dd", "dd ee"}, chunks)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 6)
	}
}

func TestSplit_ChunksBoundedByChunkSize(t *testing.T) {
	s := New(50, 10)
	text := strings.Repeat("one two three four five six seven eight nine ten ", 10)

	chunks := s.Split(text)

	assert.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 50)
	}
}

// An atomic piece between separators larger than the chunk size is emitted
// as-is; the merge step does not subdivide it. This asserts the boundary
// explicitly rather than silently passing.
func TestSplit_OversizedAtomicPieceEmittedWhole(t *testing.T) {
	s := New(10, 2)
	atom := strings.Repeat("a", 15)

	chunks := s.Split(atom + " bb")

	assert.Equal(t, []string{atom, "bb"}, chunks)
	assert.Greater(t, len(chunks[0]), 10)
}

func TestSplit_CharacterFallback(t *testing.T) {
	s := New(8, 3)

	chunks := s.Split("abcdefghijklmnopqrst")

	assert.Equal(t, []string{"abcdefgh", "fghijklm", "klmnopqr", "pqrst"}, chunks)
}

func TestSplit_FallbackOverlapRetainsTrailingContext(t *testing.T) {
	s := New(8, 3)

	chunks := s.Split("abcdefghijklmnopqrst")

	for i := 1; i < len(chunks); i++ {
		prev := chunks[i-1]
		assert.True(t, strings.HasPrefix(chunks[i], prev[len(prev)-3:]))
	}
}
