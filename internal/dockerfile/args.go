package dockerfile

import (
	"bytes"
	"sort"
	"strings"

	"github.com/moby/buildkit/frontend/dockerfile/parser"
)

// DeclaredArgs returns the names of all build arguments declared with ARG
// instructions, in any stage, sorted and deduplicated
func DeclaredArgs(content []byte) ([]string, error) {
	ast, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, child := range ast.AST.Children {
		if !strings.EqualFold(child.Value, "arg") {
			continue
		}
		for n := child.Next; n != nil; n = n.Next {
			name, _, _ := strings.Cut(n.Value, "=")
			if name != "" {
				seen[name] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// UndeclaredArgs returns the keys of args that the Dockerfile does not
// declare, sorted. Predefined proxy arguments are always accepted.
func UndeclaredArgs(content []byte, args map[string]string) ([]string, error) {
	declared, err := DeclaredArgs(content)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(declared))
	for _, name := range declared {
		known[name] = true
	}

	var missing []string
	for name := range args {
		if known[name] || predefinedArgs[strings.ToUpper(name)] {
			continue
		}
		missing = append(missing, name)
	}
	sort.Strings(missing)
	return missing, nil
}

var predefinedArgs = map[string]bool{
	"HTTP_PROXY":  true,
	"HTTPS_PROXY": true,
	"FTP_PROXY":   true,
	"NO_PROXY":    true,
	"ALL_PROXY":   true,
}
