//go:build linux

package provider

import (
	"os"
	"strings"
)

// DetectAndroid recovers the application package name from
// /proc/self/cmdline and maps it to the conventional sandbox roots under
// /data/data. It is the auto-detect fallback for processes that never
// initialized the sandbox explicitly; apps whose directories the system
// relocates (adopted storage, work profiles) must call InitSandbox with
// the real paths from the host runtime instead.
func DetectAndroid() (filesDir, cacheDir string) {
	raw, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", ""
	}
	pkg := androidPackageName(string(raw))
	if pkg == "" {
		return "", ""
	}
	base := "/data/data/" + pkg
	return base + "/files", base + "/cache"
}

// androidPackageName extracts the package name from a raw cmdline. App
// processes carry the bare package name as argv[0]; anything that looks
// like a filesystem path is some other kind of process.
func androidPackageName(cmdline string) string {
	name, _, _ := strings.Cut(cmdline, "\x00")
	// Isolated service processes append a ":name" suffix to the package.
	name, _, _ = strings.Cut(name, ":")
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "/\\") {
		return ""
	}
	return name
}
