//go:build !linux && !darwin && !windows && !js

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/provider"
	"github.com/thoreinstein/sysdirs/internal/resolve"
)

// active is the generic Unix fallback (FreeBSD, OpenBSD, ...): XDG base
// directories without the user directories, which need xdg-user-dirs.
var active provider.Provider = provider.NewUnix(resolve.OSEnv{})
