package parser

import (
	"github.com/youroldmangaming/Apple-Container-Compose/internal/discovery"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/schema"
)

// Parser defines the interface for decoding a descriptor into a project
type Parser interface {
	// Parse reads the descriptor and returns the decoded project
	Parse(descriptor discovery.Descriptor) (*schema.Project, error)

	// CanParse returns true if this parser can handle the given descriptor type
	CanParse(descriptorType string) bool
}
