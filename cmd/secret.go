package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// readSecret reads a line from stdin without echoing when stdin is a terminal
func readSecret(prompt string) (string, error) {
	_, _ = fmt.Fprint(deps.Stderr, prompt)

	if f, ok := deps.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(deps.Stderr)
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}

	// Piped input
	scanner := bufio.NewScanner(deps.Stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", errors.New("no input")
}
