package environment

import (
	"fmt"
	"os"
	"regexp"

	"go.uber.org/zap"
)

// tokenPattern matches ${NAME}, ${NAME:-DEFAULT} and ${NAME:?MESSAGE}.
// Groups:
//   - 1: variable name
//   - 2: ":-" when a default clause is present, 3: the default text
//   - 4: ":?" when an error clause is present, 5: the message
var tokenPattern = regexp.MustCompile(`\$\{([A-Z0-9_]+)(?:(:-)([^}]*)|(:\?)([^}]*))?\}`)

// extraPasses bounds how many substitutions may be triggered by text that a
// previous substitution introduced
const extraPasses = 16

// LookupFunc looks up a single variable
type LookupFunc func(name string) (string, bool)

// RequiredVariableError is returned when a ${NAME:?MESSAGE} token names an
// unbound variable. It ends the interpretation.
type RequiredVariableError struct {
	Name    string
	Message string
}

func (e *RequiredVariableError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("required variable %s is not set", e.Name)
	}
	return fmt.Sprintf("required variable %s is not set: %s", e.Name, e.Message)
}

// Resolver substitutes variable tokens against the ambient process
// environment layered over a caller-supplied map
type Resolver struct {
	ambient LookupFunc
	logger  *zap.Logger
}

type Option func(*Resolver)

// WithAmbient replaces the process environment as the top lookup layer
func WithAmbient(lookup LookupFunc) Option {
	return func(r *Resolver) {
		r.ambient = lookup
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		ambient: os.LookupEnv,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup resolves name through the ambient environment first, then local
func (r *Resolver) Lookup(name string, local map[string]string) (string, bool) {
	if value, ok := r.ambient(name); ok {
		return value, true
	}
	value, ok := local[name]
	return value, ok
}

// Resolve substitutes tokens in text from left to right, rescanning after
// every replacement so that substituted text is itself resolved. Defaults are
// inserted verbatim. Scanning stops at the first bare token with no binding,
// which is left in place. An error clause naming an unbound variable returns
// a *RequiredVariableError.
func (r *Resolver) Resolve(text string, local map[string]string) (string, error) {
	limit := len(tokenPattern.FindAllStringIndex(text, -1)) + extraPasses

	for pass := 0; pass < limit; pass++ {
		loc := tokenPattern.FindStringSubmatchIndex(text)
		if loc == nil {
			return text, nil
		}

		name := text[loc[2]:loc[3]]
		var replacement string
		if value, ok := r.Lookup(name, local); ok {
			replacement = value
		} else if loc[4] >= 0 {
			replacement = text[loc[6]:loc[7]]
		} else if loc[8] >= 0 {
			return "", &RequiredVariableError{Name: name, Message: text[loc[10]:loc[11]]}
		} else {
			return text, nil
		}

		text = text[:loc[0]] + replacement + text[loc[1]:]
	}

	r.logger.Warn("Variable substitution did not settle, leaving remaining tokens in place",
		zap.String("text", text),
		zap.Int("passes", limit))
	return text, nil
}

// ResolveAll resolves every value of m against local and returns a new map
func (r *Resolver) ResolveAll(m map[string]string, local map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(m))
	for k, v := range m {
		resolved, err := r.Resolve(v, local)
		if err != nil {
			return nil, err
		}
		out[k] = resolved
	}
	return out, nil
}

// Merge overlays the given layers in order; later layers win per key
func Merge(layers ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}
