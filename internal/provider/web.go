package provider

// Web is the provider for targets with no real filesystem (js/wasm).
// Every directory concept is absent.
type Web struct{}

// NewWeb returns the web-family provider.
func NewWeb() Web {
	return Web{}
}

// Lookup always reports the kind as absent.
func (Web) Lookup(Kind) string {
	return ""
}
