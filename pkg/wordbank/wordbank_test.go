package wordbank

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/williamdwatson/bananagrams-solver-web/pkg/parser"
)

func TestAddAndContains(t *testing.T) {
	wb := New()
	wb.Add("Hello")
	wb.Add("world")
	wb.Add("hello") // duplicate after normalization

	if !wb.Contains("hello") {
		t.Error("Contains(hello) = false, want true")
	}
	if !wb.Contains("HELLO") {
		t.Error("Contains(HELLO) = false, want true")
	}
	if !wb.Contains("world") {
		t.Error("Contains(world) = false, want true")
	}
	if wb.Contains("missing") {
		t.Error("Contains(missing) = true, want false")
	}
	if wb.Len() != 2 {
		t.Errorf("Len() = %d, want 2", wb.Len())
	}
}

func TestWordsOrdering(t *testing.T) {
	wb := New()
	wb.Add("at")
	wb.Add("cat")
	wb.Add("banana")
	wb.Add("dog")

	got := wb.Words()
	expected := []string{"banana", "cat", "dog", "at"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Words() = %v, want %v", got, expected)
	}

	// The returned slice is a copy
	got[0] = "mutated"
	if wb.Words()[0] != "banana" {
		t.Error("Words() returned a shared slice")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("CAT\ndog\n\nfish!\n"), 0644); err != nil {
		t.Fatalf("Failed to create test word list: %v", err)
	}

	wb, err := Load(path, parser.New())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if wb.Len() != 3 {
		t.Errorf("Len() = %d, want 3", wb.Len())
	}
	for _, word := range []string{"cat", "dog", "fish"} {
		if !wb.Contains(word) {
			t.Errorf("Contains(%s) = false, want true", word)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), parser.New()); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}
