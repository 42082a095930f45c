// Package command synthesizes the argument lists passed to the container
// tool. Every builder is pure: the caller resolves variables and paths first.
package command

import (
	"sort"
	"strings"
)

// Kind identifies the shape of a synthesized command
type Kind string

const (
	KindNetworkCreate Kind = "network-create"
	KindVolumeCreate  Kind = "volume-create"
	KindBuild         Kind = "build"
	KindRun           Kind = "run"
)

// Command is one invocation of the container tool
type Command struct {
	Kind    Kind     `json:"kind" yaml:"kind" toml:"kind"`
	Subject string   `json:"subject" yaml:"subject" toml:"subject"` // network, volume or service name
	Args    []string `json:"args" yaml:"args" toml:"args"`
}

// String renders the arguments for display
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

// appendPairs appends flag K=V for every entry of m in key order
func appendPairs(args []string, flag string, m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, flag, k+"="+m[k])
	}
	return args
}
