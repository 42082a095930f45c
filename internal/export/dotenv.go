package export

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/command"
)

// DotEnvExporter writes the resolved environment of every service as a
// dotenv section, one per service in name order
type DotEnvExporter struct{}

func (e *DotEnvExporter) Name() string {
	return "env"
}

func (e *DotEnvExporter) Export(plan *command.Plan) ([]byte, error) {
	services := make([]string, 0, len(plan.Environments))
	for name := range plan.Environments {
		services = append(services, name)
	}
	sort.Strings(services)

	var buf bytes.Buffer
	for i, name := range services {
		if i > 0 {
			buf.WriteString("\n")
		}
		content, err := godotenv.Marshal(plan.Environments[name])
		if err != nil {
			return nil, errors.Wrapf(err, "service %s", name)
		}
		fmt.Fprintf(&buf, "# %s\n", name)
		if content != "" {
			buf.WriteString(content)
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}

func NewDotEnvExporter() Exporter {
	return &DotEnvExporter{}
}
