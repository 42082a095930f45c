package network

import (
	"github.com/cockroachdb/errors"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/environment"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/schema"
)

// Resolver maps service network keys to the names of actual networks
type Resolver struct {
	resolver *environment.Resolver
}

func NewResolver(resolver *environment.Resolver) *Resolver {
	return &Resolver{resolver: resolver}
}

// ResolveName resolves key and looks it up among the top-level networks. An
// explicit name on the definition wins, then the name of an external
// reference; otherwise the resolved key is the network name. Keys without a
// top-level definition are passed through, they are never created.
func (r *Resolver) ResolveName(key string, networks map[string]schema.Network, env map[string]string) (string, error) {
	resolved, err := r.resolver.Resolve(key, env)
	if err != nil {
		return "", errors.Wrapf(err, "network %q", key)
	}

	definition, ok := networks[resolved]
	if !ok {
		return resolved, nil
	}
	return DefinitionName(resolved, definition.Resource, r.resolver, env)
}

// ResolveAll resolves every key in order, dropping duplicates
func (r *Resolver) ResolveAll(keys []string, networks map[string]schema.Network, env map[string]string) ([]string, error) {
	seen := make(map[string]bool, len(keys))
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		name, err := r.ResolveName(key, networks, env)
		if err != nil {
			return nil, err
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}

// DefinitionName returns the actual name of a top-level resource declared
// under key: its explicit name, the external reference's name, or the key.
func DefinitionName(key string, resource schema.Resource, resolver *environment.Resolver, env map[string]string) (string, error) {
	name := key
	switch {
	case resource.Name != "":
		name = resource.Name
	case resource.External.Name != "":
		name = resource.External.Name
	}
	resolved, err := resolver.Resolve(name, env)
	if err != nil {
		return "", errors.Wrapf(err, "name of %q", key)
	}
	return resolved, nil
}
