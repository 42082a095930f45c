package export

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/command"
)

// Exporter defines the interface for exporting plans to various formats
type Exporter interface {
	// Export renders the plan in the target format
	Export(plan *command.Plan) ([]byte, error)

	// Name returns the exporter name (e.g., "json", "yaml", "toml", "env")
	Name() string
}

var exporters = map[string]func() Exporter{
	"json": NewJSONExporter,
	"yaml": NewYAMLExporter,
	"toml": NewTOMLExporter,
	"env":  NewDotEnvExporter,
}

// ForFormat returns the exporter registered under name
func ForFormat(name string) (Exporter, error) {
	factory, ok := exporters[strings.ToLower(name)]
	if !ok {
		return nil, errors.Newf("unsupported export format %q (supported: %s)", name, strings.Join(Formats(), ", "))
	}
	return factory(), nil
}

// Formats lists the supported format names
func Formats() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
