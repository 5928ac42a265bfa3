package provider

import (
	"sync"
)

// DetectFunc queries the host runtime for the sandbox roots. It is invoked
// live on every lookup that needs it; results are never cached, so a host
// context that appears late is picked up by the next call. Either return
// may be "" when the runtime cannot provide it.
type DetectFunc func() (filesDir, cacheDir string)

// Sandbox resolves directories on sandboxed mobile platforms, where the OS
// grants a single writable tree and no environment-variable mechanism
// exists. The roots are set once at startup via Init or InitWithCache,
// or recovered on demand through an optional DetectFunc.
//
// Re-initialization is accepted with last-write-wins semantics so test
// harnesses can reset state between scenarios; production code is expected
// to initialize exactly once.
type Sandbox struct {
	mu     sync.RWMutex
	files  string
	cache  string // explicit cache root; "" means derive from files
	detect DetectFunc
}

// NewSandbox returns an uninitialized sandbox provider. detect may be nil.
func NewSandbox(detect DetectFunc) *Sandbox {
	return &Sandbox{detect: detect}
}

// Init records the files root. The cache root is derived as files/cache.
func (s *Sandbox) Init(filesDir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = filesDir
	s.cache = ""
}

// InitWithCache records both roots explicitly, for hosts that hand out a
// real cache directory separate from the files tree.
func (s *Sandbox) InitWithCache(filesDir, cacheDir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = filesDir
	s.cache = cacheDir
}

var sandboxTable = map[Kind]func(*Sandbox) string{
	Home:        (*Sandbox).filesDir,
	Cache:       (*Sandbox).cacheDir,
	Config:      (*Sandbox).filesDir,
	ConfigLocal: (*Sandbox).filesDir,
	Data:        (*Sandbox).filesDir,
	DataLocal:   (*Sandbox).filesDir,
	Preference:  (*Sandbox).filesDir,
	Temp:        (*Sandbox).tempDir,
}

// Lookup resolves kind from the sandbox roots. User directories,
// executable, runtime, state, and library are not reachable from inside
// the sandbox and stay absent.
func (s *Sandbox) Lookup(kind Kind) string {
	fn, ok := sandboxTable[kind]
	if !ok {
		return ""
	}
	return fn(s)
}

func (s *Sandbox) filesDir() string {
	s.mu.RLock()
	files := s.files
	s.mu.RUnlock()
	if files != "" {
		return files
	}
	if s.detect != nil {
		files, _ = s.detect()
		return files
	}
	return ""
}

// cacheDir resolves in order: the explicit cache root, the files-derived
// cache subdirectory, a live host query, then absent.
func (s *Sandbox) cacheDir() string {
	s.mu.RLock()
	files, cache := s.files, s.cache
	s.mu.RUnlock()
	if cache != "" {
		return cache
	}
	if files != "" {
		return joinIfPresent(files, "cache")
	}
	if s.detect != nil {
		_, cache = s.detect()
		return cache
	}
	return ""
}

func (s *Sandbox) tempDir() string {
	return joinIfPresent(s.filesDir(), "tmp")
}
