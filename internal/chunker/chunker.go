// Package chunker splits extracted resume text into overlapping pieces for indexing.
package chunker

import (
	"fmt"
	"iter"
	"strings"

	"virtual-interviewer/internal/domain"

	"github.com/tmc/langchaingo/textsplitter"
)

// Strategies accepted by New.
const (
	StrategyWindow    = "window"
	StrategyRecursive = "recursive"
)

// Chunker splits a text blob into chunks.
type Chunker interface {
	Split(text string) ([]string, error)
}

// New returns the chunker for strategy with the given window.
func New(strategy string, size, overlap int) (Chunker, error) {
	if err := validateWindow(size, overlap); err != nil {
		return nil, err
	}
	switch strategy {
	case "", StrategyWindow:
		return Window{Size: size, Overlap: overlap}, nil
	case StrategyRecursive:
		return NewRecursive(size, overlap), nil
	default:
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown chunking strategy %q", strategy), nil)
	}
}

func validateWindow(size, overlap int) error {
	if size <= 0 {
		return domain.NewInvalidInputError("chunk size must be positive", nil).WithContext("chunk_size", size)
	}
	if overlap < 0 || overlap >= size {
		return domain.NewInvalidInputError("chunk overlap must be in [0, chunk size)", nil).
			WithContext("chunk_size", size).
			WithContext("chunk_overlap", overlap)
	}
	return nil
}

// Window is a fixed sliding window measured in characters (runes).
// Every chunk but the last is exactly Size long and consecutive chunks share Overlap characters.
type Window struct {
	Size    int
	Overlap int
}

// Chunks lazily yields the windows over text. An empty text or an invalid
// window yields nothing. text must be valid UTF-8: invalid bytes come back
// as U+FFFD, so Reconstruct would not return the input.
func (w Window) Chunks(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		step := w.Size - w.Overlap
		if w.Size <= 0 || w.Overlap < 0 || step <= 0 {
			return
		}
		runes := []rune(text)
		n := len(runes)
		for start := 0; start < n; start += step {
			end := min(start+w.Size, n)
			if !yield(string(runes[start:end])) {
				return
			}
			if end == n {
				return
			}
		}
	}
}

// Split implements Chunker.
func (w Window) Split(text string) ([]string, error) {
	if err := validateWindow(w.Size, w.Overlap); err != nil {
		return nil, err
	}
	chunks := make([]string, 0)
	for c := range w.Chunks(text) {
		chunks = append(chunks, c)
	}
	return chunks, nil
}

// Reconstruct joins window chunks back together, dropping the shared overlap
// from every chunk after the first.
func Reconstruct(chunks []string, overlap int) string {
	var b strings.Builder
	for i, c := range chunks {
		if i == 0 {
			b.WriteString(c)
			continue
		}
		runes := []rune(c)
		if overlap < len(runes) {
			b.WriteString(string(runes[overlap:]))
		}
	}
	return b.String()
}

// Recursive splits on paragraph, line and word boundaries first and only then
// by length. Chunks respect Size but the overlap is approximate, so
// Reconstruct does not apply.
type Recursive struct {
	splitter textsplitter.RecursiveCharacter
}

func NewRecursive(size, overlap int) Recursive {
	return Recursive{
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(size),
			textsplitter.WithChunkOverlap(overlap),
		),
	}
}

// Split implements Chunker.
func (r Recursive) Split(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}
	chunks, err := r.splitter.SplitText(text)
	if err != nil {
		return nil, domain.NewInternalError("failed to split text", err)
	}
	return chunks, nil
}
