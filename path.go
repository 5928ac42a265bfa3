package sysdirs

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ErrNotAvailable indicates the requested directory does not exist on this
// platform or could not be resolved in the current environment.
var ErrNotAvailable = errors.New("directory not available on this platform")

// DefaultDirPerm is the permission applied to directories created by
// [Path.Ensure] (private to the user).
const DefaultDirPerm os.FileMode = 0o700

// Path is an optional absolute directory path. The zero value means the
// directory is absent; use [Path.Present] to check before treating it as a
// real location, or chain through [Path.Join] and [Path.Ensure], which pass
// absence along.
type Path string

// Present reports whether the path resolved to a real location.
func (p Path) Present() bool {
	return p != ""
}

// String returns the path, or "" when absent.
func (p Path) String() string {
	return string(p)
}

// Join appends path elements. An absent receiver stays absent, so calls
// chain without intermediate checks:
//
//	sysdirs.DataDir().Join("my-app", "plugins")
func (p Path) Join(elem ...string) Path {
	if p == "" {
		return ""
	}
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// Ensure creates the directory and any missing parents with
// [DefaultDirPerm] and returns the path. It is idempotent: an already
// existing directory succeeds. An absent receiver fails with
// [ErrNotAvailable]; creation failures (permissions, a file in the way)
// surface the underlying error.
func (p Path) Ensure() (string, error) {
	if p == "" {
		return "", ErrNotAvailable
	}
	if err := os.MkdirAll(string(p), DefaultDirPerm); err != nil {
		return "", errors.Wrap(err, "creating directory")
	}
	return string(p), nil
}
