package handlers

import (
	"errors"
	"fmt"

	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
)

// ShowAnalysis prints the latest training analysis
func ShowAnalysis(deps *cli.Deps) {
	if !requireAPI(deps) {
		return
	}

	doc, err := deps.Services.Analysis.Latest(deps.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoAnalysis) {
			_, _ = fmt.Fprintln(deps.Stdout, "No analysis available yet")
			_, _ = fmt.Fprintln(deps.Stdout, "Generate one with 'gainsiq analysis generate'")
			return
		}
		fail(deps, "Failed to load analysis", err)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, doc)
}

// GenerateAnalysis asks the backend to produce a new analysis
func GenerateAnalysis(deps *cli.Deps) {
	if !requireAPI(deps) {
		return
	}

	msg, err := deps.Services.Analysis.Generate(deps.Context())
	if err != nil {
		fail(deps, "Failed to generate analysis", err)
		return
	}

	if msg == "" {
		msg = "Analysis generation started"
	}
	_, _ = fmt.Fprintln(deps.Stdout, msg)
}
