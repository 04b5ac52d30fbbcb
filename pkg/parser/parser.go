// pkg/parser/parser.go
package parser

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

// ParseWordList extracts words from a plain-text word list, one word per line
func (p *Parser) ParseWordList(content []byte) ([]string, error) {
	// Split content into lines
	lines := strings.Split(string(content), "\n")
	var words []string

	for _, line := range lines {
		// Clean and normalize the word
		word := cleanWord(line)
		if word != "" {
			words = append(words, word)
		}
	}

	return words, nil
}

// ParseHTMLWordList extracts words from an HTML page holding a word list
func (p *Parser) ParseHTMLWordList(content []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	// Drop script and style contents before extracting text
	doc.Find("script, style").Remove()

	// Visit text nodes individually so adjacent elements don't run together
	var words []string
	var extractText func(*goquery.Selection)
	extractText = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) == "#text" {
				for _, field := range strings.Fields(c.Text()) {
					word := cleanWord(field)
					if word != "" {
						words = append(words, word)
					}
				}
				return
			}
			extractText(c)
		})
	}
	extractText(doc.Selection)

	return words, nil
}

// cleanWord normalizes and cleans a word
func cleanWord(word string) string {
	// Convert to lowercase
	word = strings.ToLower(word)

	// Remove any remaining non-letter characters
	word = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, word)

	return strings.TrimSpace(word)
}

// IsAlphabetic checks if a string contains only alphabetic characters
func IsAlphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
