//go:build android

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/provider"
)

// sandbox is retained separately from active so InitSandbox can reach it.
// Until initialized, lookups fall back to live package-name detection.
var sandbox = provider.NewSandbox(provider.DetectAndroid)

var active provider.Provider = sandbox
