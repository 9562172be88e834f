// Package splitter implements a recursive character text splitter: text is
// split along decreasing-granularity separators and greedily merged back into
// bounded, overlapping chunks.
package splitter

import "strings"

// defaultSeparators is ordered from coarsest to finest. The empty string
// means character-level fixed-width slicing.
var defaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// RecursiveCharacterSplitter splits text into chunks of at most chunkSize
// characters, retaining roughly chunkOverlap characters of trailing context
// between consecutive chunks.
//
// A single separator-delimited piece larger than chunkSize is emitted as its
// own oversized chunk; the merge step does not subdivide atoms. The overlap
// is approximate, not exact-byte aligned.
type RecursiveCharacterSplitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

// New creates a splitter with the given chunk size and overlap.
func New(chunkSize, chunkOverlap int) *RecursiveCharacterSplitter {
	return &RecursiveCharacterSplitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   defaultSeparators,
	}
}

// Split splits text into chunks. Text already within the chunk size is
// returned as a single chunk. The first separator that actually splits the
// text wins; if none do, the text is sliced at fixed width.
func (s *RecursiveCharacterSplitter) Split(text string) []string {
	if len(text) <= s.chunkSize {
		return []string{text}
	}

	for _, sep := range s.separators {
		if sep == "" {
			return s.splitByWidth(text)
		}
		if !strings.Contains(text, sep) {
			continue
		}
		if chunks := s.mergePieces(strings.Split(text, sep), sep); len(chunks) > 0 {
			return chunks
		}
	}

	return s.splitByWidth(text)
}

// mergePieces greedily accumulates consecutive pieces into chunks, flushing
// whenever the next piece would exceed the chunk size and seeding the next
// buffer with the most recent pieces up to the overlap budget.
func (s *RecursiveCharacterSplitter) mergePieces(pieces []string, sep string) []string {
	var chunks []string
	var buffer []string
	total := 0

	for _, piece := range pieces {
		pieceLen := len(piece)
		joinLen := 0
		if len(buffer) > 0 {
			joinLen = len(sep)
		}

		if total+pieceLen+joinLen > s.chunkSize && len(buffer) > 0 {
			if chunk := strings.Join(buffer, sep); chunk != "" {
				chunks = append(chunks, chunk)
			}
			for len(buffer) > 0 &&
				(total > s.chunkOverlap || (total+pieceLen+joinLen > s.chunkSize && total > 0)) {
				total -= len(buffer[0])
				if len(buffer) > 1 {
					total -= len(sep)
				}
				buffer = buffer[1:]
			}
		}

		if len(buffer) > 0 {
			total += len(sep)
		}
		buffer = append(buffer, piece)
		total += pieceLen
	}

	if chunk := strings.Join(buffer, sep); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// splitByWidth slices text at fixed width with the configured overlap stride.
func (s *RecursiveCharacterSplitter) splitByWidth(text string) []string {
	stride := s.chunkSize - s.chunkOverlap
	if stride <= 0 {
		stride = s.chunkSize
	}

	var chunks []string
	for i := 0; i < len(text); i += stride {
		end := i + s.chunkSize
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
		if end == len(text) {
			break
		}
	}
	return chunks
}
