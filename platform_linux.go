//go:build linux && !android

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/provider"
	"github.com/thoreinstein/sysdirs/internal/resolve"
)

// active is the process provider: the full XDG family, user directories
// included.
var active provider.Provider = provider.NewXDG(resolve.OSEnv{})
