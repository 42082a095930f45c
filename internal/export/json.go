package export

import (
	"encoding/json"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/command"
)

type JSONExporter struct{}

func (e *JSONExporter) Name() string {
	return "json"
}

func (e *JSONExporter) Export(plan *command.Plan) ([]byte, error) {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func NewJSONExporter() Exporter {
	return &JSONExporter{}
}
