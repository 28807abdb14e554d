package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
)

// HostRegistry manages the code-hosting services shorthand references can be joined against.
type HostRegistry struct {
	hosts map[string]entities.Host
}

// NewHostRegistry creates an empty host registry.
func NewHostRegistry() *HostRegistry {
	return &HostRegistry{
		hosts: make(map[string]entities.Host),
	}
}

// Register adds a host under its name (e.g. "github").
func (r *HostRegistry) Register(host entities.Host) {
	r.hosts[host.Name] = host
}

// Get returns the host registered under name. An empty name selects the default host.
func (r *HostRegistry) Get(name string) (entities.Host, error) {
	if name == "" {
		name = entities.DefaultHostName
	}
	host, ok := r.hosts[name]
	if !ok {
		return entities.Host{}, fmt.Errorf("unknown host: %q (known: %v)", name, r.Names())
	}
	return host, nil
}

// Names returns the sorted list of registered host names.
func (r *HostRegistry) Names() []string {
	names := make([]string, 0, len(r.hosts))
	for name := range r.hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
