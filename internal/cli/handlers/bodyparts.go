package handlers

import (
	"errors"
	"fmt"

	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
)

// ListBodyparts prints the known injury locations
func ListBodyparts(deps *cli.Deps) {
	if !requireAPI(deps) {
		return
	}

	parts, err := deps.Services.Bodypart.List(deps.Context())
	if err != nil {
		fail(deps, "Failed to load body parts", err)
		return
	}

	if len(parts) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No body parts yet")
		return
	}
	for _, p := range parts {
		_, _ = fmt.Fprintln(deps.Stdout, p)
	}
}

// AddBodypart adds an injury location
func AddBodypart(deps *cli.Deps, location string) {
	if !requireAPI(deps) {
		return
	}

	if err := deps.Services.Bodypart.Add(deps.Context(), location); err != nil {
		if errors.Is(err, service.ErrEmptyLocation) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Body part cannot be empty")
			deps.Exit(1)
			return
		}
		fail(deps, fmt.Sprintf("Failed to add body part '%s'", location), err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added body part: %s\n", location)
}

// DeleteBodypart removes an injury location
func DeleteBodypart(deps *cli.Deps, location string, skipConfirm bool) {
	if !requireAPI(deps) {
		return
	}

	if !skipConfirm && !promptConfirmation(deps.Stdout, deps.Stdin, fmt.Sprintf("Remove body part '%s'?", location)) {
		_, _ = fmt.Fprintln(deps.Stdout, "Removal cancelled")
		return
	}

	if err := deps.Services.Bodypart.Delete(deps.Context(), location); err != nil {
		fail(deps, fmt.Sprintf("Failed to remove body part '%s'", location), err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Removed body part: %s\n", location)
}
