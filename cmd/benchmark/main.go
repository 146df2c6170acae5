package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"textclean/config"
	"textclean/internal/adapter/analyzer"
	"textclean/internal/adapter/fs"
	"textclean/internal/adapter/stopwords"
	"textclean/internal/port"
	"textclean/internal/usecase"
)

func main() {
	input := flag.String("input", "", "Text file to clean")
	limit := flag.Int("limit", 1000, "Maximum number of words")
	runs := flag.Int("runs", 20, "Number of runs")
	stem := flag.Bool("stem", false, "Stem cleaned words")
	flag.Parse()

	if *input == "" || *runs < 1 {
		fmt.Println("Usage: go run cmd/benchmark/main.go -input file.txt [-limit 1000] [-runs 20] [-stem]")
		fmt.Println("\nChecks:")
		fmt.Println("  1. Throughput (tokens and words per second)")
		fmt.Println("  2. Idempotence (every run produces identical output)")
		os.Exit(1)
	}

	cfg, err := config.LoadFromDir(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	text, err := fs.ReadText(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The built-in list; a benchmark should not touch the network.
	provider := stopwords.NewProvider(stopwords.Options{}, zerolog.Nop())

	var stemmer port.Stemmer
	if *stem || cfg.Clean.Stem {
		stemmer = analyzer.NewSnowballStemmer()
	}
	cleaner := usecase.NewCleanUseCase(analyzer.NewWordTokenizer(), provider, stemmer, zerolog.Nop())

	ctx := context.Background()
	if err := cleaner.EnsureReady(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("TEXT CLEANING BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Input: %s (%d bytes)\n", *input, len(text))
	fmt.Printf("Limit: %d  Runs: %d  Stem: %v\n", *limit, *runs, stemmer != nil)
	fmt.Println(strings.Repeat("-", 70))

	var (
		first      string
		mismatches int
		total      time.Duration
		fastest    time.Duration
	)

	for i := 0; i < *runs; i++ {
		start := time.Now()
		words, stats, err := cleaner.Clean(ctx, text, *limit)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		out := strings.Join(words, " ")
		if i == 0 {
			first = out
			fmt.Printf("Tokens: %d  Stopwords removed: %d  Discarded: %d  Words: %d  Truncated: %v\n\n",
				stats.Tokens, stats.StopwordsRemoved, stats.EmptyDiscarded, stats.Words, stats.Truncated)
		} else if out != first {
			mismatches++
		}

		total += elapsed
		if fastest == 0 || elapsed < fastest {
			fastest = elapsed
		}
	}

	avg := total / time.Duration(*runs)
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("TIMING:\n")
	fmt.Printf("  Average: %v\n", avg)
	fmt.Printf("  Fastest: %v\n", fastest)
	if avg > 0 {
		fmt.Printf("  Throughput: %.1f MB/s\n", float64(len(text))/avg.Seconds()/(1<<20))
	}

	if mismatches > 0 {
		fmt.Printf("  Status: FAIL - %d of %d runs produced different output\n", mismatches, *runs-1)
		os.Exit(1)
	}
	fmt.Println("  Status: OK - output identical across runs")
}
