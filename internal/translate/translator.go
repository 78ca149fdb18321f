// Package translate resolves source and target languages for each word and
// invokes the translation backend, preserving input order.
package translate

import (
	"context"

	"github.com/txcv/cli/internal/lang"
)

// API is the translation backend. Both calls are single-shot request/response
// operations against the remote service.
type API interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
	Detect(ctx context.Context, text string) (string, error)
}

// Result maps one input word onto its translation.
type Result struct {
	Word       string
	Translated string
}

// Translator carries the backend and the languages requested on the command
// line for one invocation.
type Translator struct {
	api    API
	source lang.Language
	target lang.Language
}

// New creates a Translator. Auto for source means per-word detection; Auto
// for target means the paired language for the resolved source.
func New(api API, source, target lang.Language) *Translator {
	return &Translator{api: api, source: source, target: target}
}

// Word translates a single word.
func (t *Translator) Word(ctx context.Context, word string) (Result, error) {
	source := t.source.Code()
	if t.source == lang.Auto {
		detected, err := t.api.Detect(ctx, word)
		if err != nil {
			return Result{}, err
		}
		source = detected
	}

	target := t.target.Code()
	if t.target == lang.Auto {
		target = lang.TargetFor(source)
	}

	translated, err := t.api.Translate(ctx, word, source, target)
	if err != nil {
		return Result{}, err
	}
	return Result{Word: word, Translated: translated}, nil
}

// Batch translates words sequentially and returns results in input order.
// The first failure aborts the batch and no results are returned.
func (t *Translator) Batch(ctx context.Context, words []string) ([]Result, error) {
	results := make([]Result, 0, len(words))
	for _, word := range words {
		res, err := t.Word(ctx, word)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
