//go:build ios

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/provider"
	"github.com/thoreinstein/sysdirs/internal/resolve"
	"github.com/thoreinstein/sysdirs/internal/sysdir"
)

// apple is retained separately from active so SetSearchDomain can reach it.
// The mobile variant hides the user directories the sandbox does not grant.
var apple = provider.NewAppleMobile(resolve.OSEnv{}, sysdir.Catalog{})

var active provider.Provider = apple
