package wordbank

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/williamdwatson/bananagrams-solver-web/pkg/parser"
)

// WordBank is an in-memory dictionary. The solver wants its candidates
// longest-first, so Words returns them in that order.
type WordBank struct {
	words map[string]struct{}
	list  []string
	mu    sync.RWMutex
}

func New() *WordBank {
	return &WordBank{
		words: make(map[string]struct{}),
	}
}

// Load reads a plain-text word list from path into a new WordBank.
func Load(path string, p *parser.Parser) (*WordBank, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading word list %s: %w", path, err)
	}

	words, err := p.ParseWordList(content)
	if err != nil {
		return nil, fmt.Errorf("error parsing word list %s: %w", path, err)
	}

	wb := New()
	for _, word := range words {
		wb.Add(word)
	}
	return wb, nil
}

func (wb *WordBank) Add(word string) {
	word = strings.ToLower(word)
	wb.mu.Lock()
	defer wb.mu.Unlock()
	if _, exists := wb.words[word]; exists {
		return
	}
	wb.words[word] = struct{}{}
	wb.list = append(wb.list, word)
}

func (wb *WordBank) Contains(word string) bool {
	wb.mu.RLock()
	defer wb.mu.RUnlock()
	_, exists := wb.words[strings.ToLower(word)]
	return exists
}

func (wb *WordBank) Len() int {
	wb.mu.RLock()
	defer wb.mu.RUnlock()
	return len(wb.words)
}

// Words returns a copy of the bank sorted longest word first, preserving
// insertion order between words of equal length.
func (wb *WordBank) Words() []string {
	wb.mu.RLock()
	defer wb.mu.RUnlock()

	words := make([]string, len(wb.list))
	copy(words, wb.list)
	sort.SliceStable(words, func(i, j int) bool {
		return len(words[i]) > len(words[j])
	})
	return words
}
