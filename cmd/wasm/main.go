//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"strings"
	"syscall/js"

	"github.com/rs/zerolog"
	"textclean/internal/adapter/analyzer"
	"textclean/internal/adapter/stopwords"
	"textclean/internal/usecase"
)

var (
	provider *stopwords.Provider
	cleaner  *usecase.CleanUseCase
)

func init() {
	provider = stopwords.NewProvider(stopwords.Options{}, zerolog.Nop())
	cleaner = usecase.NewCleanUseCase(analyzer.NewWordTokenizer(), provider, nil, zerolog.Nop())
}

func main() {
	c := make(chan struct{})

	js.Global().Set("textcleanClean", js.FuncOf(cleanText))
	js.Global().Set("textcleanStopwords", js.FuncOf(listStopwords))

	<-c
}

func cleanText(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: textcleanClean(text, limit)")
	}

	if args[1].Type() != js.TypeNumber {
		return makeError("limit must be a number")
	}

	text := args[0].String()
	limit := args[1].Int()

	if err := usecase.ValidateLimit(limit); err != nil {
		return makeError(err.Error())
	}

	words, stats, err := cleaner.Clean(context.Background(), text, limit)
	if err != nil {
		return makeError("clean failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"text":  strings.Join(words, " "),
		"stats": stats,
	})
}

func listStopwords(this js.Value, args []js.Value) interface{} {
	if err := provider.EnsureReady(context.Background()); err != nil {
		return makeError("stopwords unavailable: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"source": provider.Source(),
		"words":  provider.Words(),
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
