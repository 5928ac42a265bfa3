//go:build android

package sysdirs

// InitSandbox records the sandbox files root, normally the value of
// Context.getFilesDir() handed over by the host app at startup. The cache
// directory is derived as <filesDir>/cache. Call once before querying
// directories; without it, lookups rely on best-effort package-name
// detection.
func InitSandbox(filesDir string) {
	sandbox.Init(filesDir)
}

// InitSandboxWithCache records both roots explicitly, for hosts that pass
// the real Context.getCacheDir() alongside the files directory.
func InitSandboxWithCache(filesDir, cacheDir string) {
	sandbox.InitWithCache(filesDir, cacheDir)
}
