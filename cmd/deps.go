package cmd

import (
	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
)

// deps is the global dependencies instance used by commands.
// In production, this is cli.DefaultDeps(). Tests can replace it.
var deps = cli.DefaultDeps()

// newServices builds the services once flags are parsed. Tests can replace it.
var newServices = func() (*service.Services, error) {
	return service.NewServices(service.Options{})
}

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *cli.Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = cli.DefaultDeps()
}
