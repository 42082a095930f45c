package schema

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-shellwords"
	"gopkg.in/yaml.v3"
)

// StringList accepts a single string or a list of strings
type StringList []string

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	return kindError(node, "a string or a list of strings")
}

// ShellCommand accepts a command line string or an already tokenized list.
// The string form is kept raw so that variables are substituted before it is
// split into words.
type ShellCommand struct {
	Raw  string   `yaml:"raw,omitempty" json:"raw,omitempty"`
	List []string `yaml:"list,omitempty" json:"list,omitempty"`
}

func (c *ShellCommand) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if _, err := SplitCommand(node.Value); err != nil {
			return errors.Wrapf(err, "line %d: invalid command %q", node.Line, node.Value)
		}
		*c = ShellCommand{Raw: node.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*c = ShellCommand{List: items}
		return nil
	}
	return kindError(node, "a string or a list of strings")
}

// IsZero reports whether no command was given
func (c ShellCommand) IsZero() bool {
	return c.Raw == "" && len(c.List) == 0
}

// Words returns the command as a list, splitting the string form
func (c ShellCommand) Words() ([]string, error) {
	if c.Raw != "" {
		return SplitCommand(c.Raw)
	}
	return c.List, nil
}

const shellOperators = ";&|<>"

func isShellOperator(r rune) bool {
	return strings.ContainsRune(shellOperators, r)
}

// SplitCommand splits line with shell quoting rules. Unquoted operators
// such as && or > are kept as literal words, no shell interprets them.
func SplitCommand(line string) ([]string, error) {
	var words []string
	runes := []rune(line)

	for len(runes) > 0 {
		parser := shellwords.NewParser()
		parsed, err := parser.Parse(string(runes))
		if err != nil {
			return nil, err
		}
		words = append(words, parsed...)
		if parser.Position < 0 {
			break
		}

		// Position counts runes. It points at the operator, or at the last
		// rune of a digit-led word such as the 2 in 2>, which the parser
		// leaves unconsumed.
		pos := parser.Position
		end := pos
		for end < len(runes) && !isShellOperator(runes[end]) {
			end++
		}
		start := end
		if end > pos {
			start = pos
			for start > 0 && !unicode.IsSpace(runes[start-1]) {
				start--
			}
		}
		opEnd := end
		for opEnd < len(runes) && isShellOperator(runes[opEnd]) {
			opEnd++
		}

		words = append(words, string(runes[start:opEnd]))
		runes = runes[opEnd:]
	}

	return words, nil
}

// Mapping accepts either a mapping or a list of KEY=VALUE strings. Null
// values and list entries without "=" become empty strings.
type Mapping map[string]string

func (m *Mapping) UnmarshalYAML(node *yaml.Node) error {
	out := make(Mapping)
	switch node.Kind {
	case yaml.MappingNode:
		var raw map[string]*string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		for k, v := range raw {
			if v != nil {
				out[k] = *v
			} else {
				out[k] = ""
			}
		}
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		for _, item := range items {
			key, value, _ := strings.Cut(item, "=")
			out[key] = value
		}
	default:
		return kindError(node, "a mapping or a list of KEY=VALUE strings")
	}
	*m = out
	return nil
}

// MappingWithEquals is a Mapping whose values may be absent. An absent value
// (null, or a list entry without "=") asks for the value to be taken from the
// surrounding environment.
type MappingWithEquals map[string]*string

func (m *MappingWithEquals) UnmarshalYAML(node *yaml.Node) error {
	out := make(MappingWithEquals)
	switch node.Kind {
	case yaml.MappingNode:
		var raw map[string]*string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		for k, v := range raw {
			out[k] = v
		}
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		for _, item := range items {
			key, value, found := strings.Cut(item, "=")
			if !found {
				out[key] = nil
				continue
			}
			out[key] = &value
		}
	default:
		return kindError(node, "a mapping or a list of KEY=VALUE strings")
	}
	*m = out
	return nil
}

// NameList accepts a list of names or a mapping keyed by name, as used by
// depends_on and service networks. Mapping values are discarded.
type NameList []string

func (l *NameList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	case yaml.MappingNode:
		names := make([]string, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			names = append(names, node.Content[i].Value)
		}
		*l = names
		return nil
	}
	return kindError(node, "a list of names or a mapping")
}

// PortList accepts short ("8080:80") and long (mapping) port syntax. Long
// entries are rendered back into the short form.
type PortList []string

func (l *PortList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return kindError(node, "a list of port mappings")
	}
	ports := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			ports = append(ports, item.Value)
		case yaml.MappingNode:
			var long struct {
				Target    string `yaml:"target"`
				Published string `yaml:"published"`
				HostIP    string `yaml:"host_ip"`
				Protocol  string `yaml:"protocol"`
			}
			if err := item.Decode(&long); err != nil {
				return err
			}
			port := long.Target
			if long.Published != "" {
				port = long.Published + ":" + port
			}
			if long.HostIP != "" {
				port = long.HostIP + ":" + port
			}
			if long.Protocol != "" {
				port += "/" + long.Protocol
			}
			ports = append(ports, port)
		default:
			return kindError(item, "a port mapping")
		}
	}
	*l = ports
	return nil
}

// External marks a resource as pre-existing. It accepts a boolean or an
// object carrying the external name.
type External struct {
	Enabled bool   `json:"enabled"`
	Name    string `json:"name,omitempty"`
}

func (e *External) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		enabled, err := strconv.ParseBool(node.Value)
		if err != nil {
			return errors.Newf("line %d: external must be a boolean, got %q", node.Line, node.Value)
		}
		*e = External{Enabled: enabled}
		return nil
	case yaml.MappingNode:
		var ref struct {
			Name string `yaml:"name"`
		}
		if err := node.Decode(&ref); err != nil {
			return err
		}
		*e = External{Enabled: true, Name: ref.Name}
		return nil
	}
	return kindError(node, "a boolean or an object")
}

func (e External) IsZero() bool {
	return !e.Enabled && e.Name == ""
}

func (b *BuildSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*b = BuildSpec{Context: node.Value}
	case yaml.MappingNode:
		type plain BuildSpec
		var spec plain
		if err := node.Decode(&spec); err != nil {
			return err
		}
		*b = BuildSpec(spec)
	default:
		return kindError(node, "a path or an object")
	}
	if b.Context == "" {
		return errors.Wrapf(ErrBuildNoContext, "line %d", node.Line)
	}
	return nil
}

func (r *FileReference) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*r = FileReference{Source: node.Value}
		return nil
	case yaml.MappingNode:
		type plain FileReference
		var ref plain
		if err := node.Decode(&ref); err != nil {
			return err
		}
		if ref.Source == "" {
			return errors.Newf("line %d: source is required", node.Line)
		}
		*r = FileReference(ref)
		return nil
	}
	return kindError(node, "a name or an object")
}

// UnmarshalYAML decodes services one at a time so that failures name the
// offending service and the image-or-build invariant holds for every entry,
// including empty ones.
func (m *ServiceMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return kindError(node, "a mapping of services")
	}
	out := make(ServiceMap, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if _, dup := out[name]; dup {
			return errors.Newf("line %d: service %q is defined more than once", node.Content[i].Line, name)
		}
		var service Service
		if err := node.Content[i+1].Decode(&service); err != nil {
			return errors.Wrapf(err, "service %q", name)
		}
		if err := service.Validate(); err != nil {
			return errors.Wrapf(err, "service %q", name)
		}
		out[name] = service
	}
	*m = out
	return nil
}

func kindError(node *yaml.Node, want string) error {
	return errors.Newf("line %d: expected %s, got %s", node.Line, want, kindName(node.Kind))
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.SequenceNode:
		return "a list"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.AliasNode:
		return "an alias"
	default:
		return fmt.Sprintf("node kind %d", kind)
	}
}
