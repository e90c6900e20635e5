package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/units"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services
	Services *service.Services

	// Ctx bounds every API call of a command
	Ctx context.Context
	// Now is the clock used for relative dates
	Now func() time.Time
	// Unit overrides the configured display unit when set (--unit)
	Unit units.Unit
	// ReadSecret reads a line without echo when stdin is a terminal
	ReadSecret func(prompt string) (string, error)
}

// DefaultDeps creates a new Deps with default values. Services are created
// by the command layer once flags are parsed.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Exit:   os.Exit,
		Ctx:    context.Background(),
		Now:    time.Now,
	}
}

// Context returns the command context
func (d *Deps) Context() context.Context {
	if d.Ctx == nil {
		return context.Background()
	}
	return d.Ctx
}

// Clock returns the current time
func (d *Deps) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// DisplayUnit returns the --unit override or the configured unit
func (d *Deps) DisplayUnit() units.Unit {
	if d.Unit != "" {
		return d.Unit
	}
	if d.Services == nil {
		return units.Pounds
	}
	return d.Services.Config.Get().DisplayUnit()
}

// Location returns the configured timezone
func (d *Deps) Location() *time.Location {
	if d.Services == nil {
		return time.Local
	}
	return d.Services.Config.Get().Location()
}
