package handlers

import (
	"errors"
	"fmt"

	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
)

// ListExercises prints the exercise catalog
func ListExercises(deps *cli.Deps) {
	if !requireAPI(deps) {
		return
	}

	names, err := deps.Services.Exercise.List(deps.Context())
	if err != nil {
		fail(deps, "Failed to load exercises", err)
		return
	}

	if len(names) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No exercises yet")
		_, _ = fmt.Fprintln(deps.Stdout, "Add one with 'gainsiq exercises add <name>'")
		return
	}

	for _, n := range names {
		_, _ = fmt.Fprintln(deps.Stdout, n)
	}
}

// AddExercise adds an exercise to the catalog
func AddExercise(deps *cli.Deps, name string) {
	if !requireAPI(deps) {
		return
	}

	if err := deps.Services.Exercise.Add(deps.Context(), name); err != nil {
		if errors.Is(err, service.ErrEmptyExercise) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Exercise name cannot be empty")
			deps.Exit(1)
			return
		}
		fail(deps, fmt.Sprintf("Failed to add exercise '%s'", name), err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added exercise: %s\n", name)
}

// DeleteExercise removes an exercise from the catalog
func DeleteExercise(deps *cli.Deps, name string, skipConfirm bool) {
	if !requireAPI(deps) {
		return
	}

	if !skipConfirm && !promptConfirmation(deps.Stdout, deps.Stdin, fmt.Sprintf("Remove exercise '%s'?", name)) {
		_, _ = fmt.Fprintln(deps.Stdout, "Removal cancelled")
		return
	}

	if err := deps.Services.Exercise.Delete(deps.Context(), name); err != nil {
		fail(deps, fmt.Sprintf("Failed to remove exercise '%s'", name), err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Removed exercise: %s\n", name)
}
