package handlers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/multierr"

	"github.com/gainsiq/gainsiq/internal/api"
	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/config"
)

// requireAPI reports a missing API URL or key and exits
func requireAPI(deps *cli.Deps) bool {
	err := deps.Services.Config.Get().Ready()
	if err == nil {
		return true
	}

	_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
	switch {
	case errors.Is(err, config.ErrMissingAPIURL):
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Run 'gainsiq config set api_url <url>' or set $%s\n", config.EnvAPIURL)
	case errors.Is(err, config.ErrMissingAPIKey):
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Run 'gainsiq config set-key' or set $%s\n", config.EnvAPIKey)
	}
	deps.Exit(1)
	return false
}

// fail prints a failed action with details and a hint derived from err
func fail(deps *cli.Deps, action string, err error) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", action)

	errs := multierr.Errors(err)
	if len(errs) > 1 {
		_, _ = fmt.Fprintln(deps.Stderr, "Details:")
		for _, e := range errs {
			_, _ = fmt.Fprintf(deps.Stderr, "  - %v\n", e)
		}
	} else {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}

	if hint := hintFor(err); hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

func hintFor(err error) string {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return ""
	}
	switch apiErr.Status {
	case 0:
		return "Check your network connection and the api_url setting ('gainsiq config')"
	case http.StatusUnauthorized, http.StatusForbidden:
		return "Check your API key ('gainsiq config set-key')"
	case http.StatusNotFound:
		return "The requested item no longer exists on the server"
	}
	if apiErr.Status >= 500 {
		return "The GainsIQ server failed, try again later"
	}
	return ""
}

// promptConfirmation asks the user a yes/no question, defaulting to no
func promptConfirmation(stdout io.Writer, stdin io.Reader, question string) bool {
	_, _ = fmt.Fprintf(stdout, "%s [y/N]: ", question)

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
