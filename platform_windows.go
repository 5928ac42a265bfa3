//go:build windows

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/provider"
	"github.com/thoreinstein/sysdirs/internal/resolve"
)

// active is the process provider, backed by the known-folder environment
// variables.
var active provider.Provider = provider.NewWindows(resolve.OSEnv{})
