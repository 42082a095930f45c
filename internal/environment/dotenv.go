package environment

import (
	"strings"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/filesystems"
)

// LoadFile reads KEY=VALUE lines from path. Blank lines, comment lines and
// lines without "=" are skipped. The file is optional: a missing or
// unreadable file yields an empty map.
//
// Values are kept literally apart from surrounding quotes so that variable
// tokens inside them reach the resolver untouched.
func LoadFile(fsys filesystems.FileSystem, path string) map[string]string {
	env := make(map[string]string)

	content, err := fsys.ReadFile(path)
	if err != nil {
		return env
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		if key == "" {
			continue
		}
		env[key] = unquote(strings.TrimSpace(value))
	}

	return env
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if (first == '"' || first == '\'') && first == last {
		return value[1 : len(value)-1]
	}
	return value
}
