// Command fetchdict downloads a word list and writes it as a plain-text
// dictionary file, one lowercase word per line, ready for the server to
// serve and solve against.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/williamdwatson/bananagrams-solver-web/internal/config"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/fetcher"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/parser"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/wordbank"
)

const defaultWordListURL = "https://raw.githubusercontent.com/dwyl/english-words/master/words.txt"

func main() {
	configPath := flag.String("config", "", "path to config file (default config.yaml)")
	url := flag.String("url", defaultWordListURL, "word list URL to download")
	out := flag.String("out", "dictionary.txt", "output dictionary file")
	html := flag.Bool("html", false, "treat the downloaded page as HTML instead of plain text")
	minLength := flag.Int("min-length", 2, "drop words shorter than this")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := fetcher.New(fetcher.FetcherConfig{
		Timeout:    time.Duration(cfg.Fetch.Timeout) * time.Second,
		MaxRetries: cfg.Fetch.MaxRetries,
		UserAgent:  cfg.Fetch.UserAgent,
	})

	fmt.Printf("Downloading %s\n", *url)
	content, err := f.Fetch(ctx, *url)
	if err != nil {
		log.Fatalf("Failed to download word list: %v", err)
	}

	p := parser.New()
	var words []string
	if *html {
		words, err = p.ParseHTMLWordList(content)
	} else {
		words, err = p.ParseWordList(content)
	}
	if err != nil {
		log.Fatalf("Failed to parse word list: %v", err)
	}

	bar := progressbar.NewOptions(len(words),
		progressbar.OptionSetDescription("Building dictionary..."),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	// Dedupe while preserving the download order; Words() sorts for the
	// solver, but the file keeps the source's ordering.
	wb := wordbank.New()
	var sb strings.Builder
	for _, word := range words {
		if len(word) >= *minLength && !wb.Contains(word) {
			wb.Add(word)
			sb.WriteString(word)
			sb.WriteByte('\n')
		}
		bar.Add(1)
	}
	bar.Finish()
	fmt.Println()

	if err := os.WriteFile(*out, []byte(sb.String()), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	fmt.Printf("Wrote %d words to %s\n", wb.Len(), *out)
}
