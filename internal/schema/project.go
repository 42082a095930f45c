package schema

import (
	"sort"
)

// Project is the decoded application descriptor
type Project struct {
	Version  string             `yaml:"version,omitempty" json:"version,omitempty"`
	Name     string             `yaml:"name,omitempty" json:"name,omitempty"`
	Services ServiceMap         `yaml:"services" json:"services"`
	Networks map[string]Network `yaml:"networks,omitempty" json:"networks,omitempty"`
	Volumes  map[string]Volume  `yaml:"volumes,omitempty" json:"volumes,omitempty"`
	Configs  map[string]Config  `yaml:"configs,omitempty" json:"configs,omitempty"`
	Secrets  map[string]Secret  `yaml:"secrets,omitempty" json:"secrets,omitempty"`
}

// ServiceMap maps service names to their definitions
type ServiceMap map[string]Service

// Resource holds the attributes shared by top-level networks, volumes, configs and secrets
type Resource struct {
	Name       string   `yaml:"name,omitempty" json:"name,omitempty"`
	Driver     string   `yaml:"driver,omitempty" json:"driver,omitempty"`
	DriverOpts Mapping  `yaml:"driver_opts,omitempty" json:"driverOpts,omitempty"`
	Labels     Mapping  `yaml:"labels,omitempty" json:"labels,omitempty"`
	External   External `yaml:"external,omitempty" json:"external,omitempty"`
}

// Network is a top-level network definition
type Network struct {
	Resource   `yaml:",inline"`
	Attachable bool `yaml:"attachable,omitempty" json:"attachable,omitempty"`
	EnableIPv6 bool `yaml:"enable_ipv6,omitempty" json:"enableIPv6,omitempty"`
	Internal   bool `yaml:"internal,omitempty" json:"internal,omitempty"`
}

// Volume is a top-level named volume definition
type Volume struct {
	Resource `yaml:",inline"`
}

// Config is a top-level config definition. It is carried for reporting only.
type Config struct {
	Resource    `yaml:",inline"`
	File        string `yaml:"file,omitempty" json:"file,omitempty"`
	Environment string `yaml:"environment,omitempty" json:"environment,omitempty"`
	Content     string `yaml:"content,omitempty" json:"content,omitempty"`
}

// Secret is a top-level secret definition. It is carried for reporting only.
type Secret struct {
	Resource    `yaml:",inline"`
	File        string `yaml:"file,omitempty" json:"file,omitempty"`
	Environment string `yaml:"environment,omitempty" json:"environment,omitempty"`
}

// NewProject creates an empty project with the given name
func NewProject(name string) *Project {
	return &Project{
		Name:     name,
		Services: make(ServiceMap),
		Networks: make(map[string]Network),
		Volumes:  make(map[string]Volume),
		Configs:  make(map[string]Config),
		Secrets:  make(map[string]Secret),
	}
}

// AddService registers a service under name, replacing any previous definition
func (p *Project) AddService(name string, service Service) {
	if p.Services == nil {
		p.Services = make(ServiceMap)
	}
	p.Services[name] = service
}

// ServiceNames returns the service names in sorted order
func (p *Project) ServiceNames() []string {
	return SortedKeys(p.Services)
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
