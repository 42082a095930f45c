package parser

import (
	"bytes"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/discovery"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/filesystems"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/schema"
)

type ComposeParser struct {
	fs filesystems.FileSystem
}

func NewComposeParser(fsys filesystems.FileSystem) *ComposeParser {
	return &ComposeParser{fs: fsys}
}

func (p *ComposeParser) CanParse(descriptorType string) bool {
	return descriptorType == discovery.TypeCompose
}

// Parse decodes the descriptor. The project name defaults to the base name
// of the directory holding it.
func (p *ComposeParser) Parse(descriptor discovery.Descriptor) (*schema.Project, error) {
	content, err := p.fs.ReadFile(descriptor.Path)
	if err != nil {
		return nil, &ParseError{Path: descriptor.Path, Message: "failed to read descriptor", Err: err}
	}

	project, err := Decode(content)
	if err != nil {
		return nil, &ParseError{Path: descriptor.Path, Message: "failed to decode descriptor", Err: err}
	}

	if project.Name == "" {
		project.Name = filepath.Base(descriptor.Dir())
	}
	return project, nil
}

// Decode turns descriptor content into a project. Unknown keys are ignored.
func Decode(content []byte) (*schema.Project, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyInput
	}

	var project schema.Project
	if err := yaml.Unmarshal(content, &project); err != nil {
		return nil, err
	}
	if len(project.Services) == 0 {
		return nil, ErrNoServices
	}
	return &project, nil
}
