package entities

// DefaultHostName is the shorthand host used when none is selected.
const DefaultHostName = "github"

// Host is a code-hosting service that shorthand references (owner/name) are joined against.
type Host struct {
	Name    string
	BaseURL string // scheme and host only, never with a "www." prefix (breaks cloning)
}

// DefaultHost returns the host used for shorthand references when nothing else is configured.
func DefaultHost() Host {
	return Host{Name: DefaultHostName, BaseURL: "https://github.com"}
}
