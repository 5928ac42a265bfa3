//go:build js

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/provider"
)

// active resolves nothing: there is no filesystem to point into.
var active provider.Provider = provider.NewWeb()
