//go:build darwin && !ios

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/provider"
	"github.com/thoreinstein/sysdirs/internal/resolve"
	"github.com/thoreinstein/sysdirs/internal/sysdir"
)

// apple is retained separately from active so SetSearchDomain can reach it.
var apple = provider.NewApple(resolve.OSEnv{}, sysdir.Catalog{})

var active provider.Provider = apple
