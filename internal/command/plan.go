package command

// Plan is the ordered list of commands produced for one project, together
// with the environment each service container receives
type Plan struct {
	Project      string                       `json:"project" yaml:"project" toml:"project"`
	Tool         string                       `json:"tool" yaml:"tool" toml:"tool"`
	Commands     []Command                    `json:"commands" yaml:"commands" toml:"commands"`
	Environments map[string]map[string]string `json:"environments,omitempty" yaml:"environments,omitempty" toml:"environments,omitempty"`
	Notices      []string                     `json:"notices,omitempty" yaml:"notices,omitempty" toml:"notices,omitempty"`
}

func NewPlan(project, tool string) *Plan {
	return &Plan{
		Project:      project,
		Tool:         tool,
		Commands:     make([]Command, 0),
		Environments: make(map[string]map[string]string),
	}
}

func (p *Plan) Add(c Command) {
	p.Commands = append(p.Commands, c)
}

func (p *Plan) Notice(message string) {
	p.Notices = append(p.Notices, message)
}

// CommandsOf returns the commands of the given kind in plan order
func (p *Plan) CommandsOf(kind Kind) []Command {
	var out []Command
	for _, c := range p.Commands {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
