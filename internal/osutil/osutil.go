// Package osutil provides abstractions for OS-level operations to enable testing.
package osutil

import "os"

// PathProvider abstracts OS-level operations for path resolution.
// Used to enable testing of error paths in GetConfigPath and GetLogPath.
type PathProvider interface {
	UserConfigDir() (string, error)
	UserCacheDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
	Getenv(key string) string
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// UserCacheDir returns the default root directory for user-specific cached data.
func (DefaultPathProvider) UserCacheDir() (string, error) {
	return os.UserCacheDir()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Getenv retrieves the value of the environment variable named by the key.
func (DefaultPathProvider) Getenv(key string) string {
	return os.Getenv(key)
}

// Provider is the package-level path provider instance.
// In production, this is DefaultPathProvider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}
