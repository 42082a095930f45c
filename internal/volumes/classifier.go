package volumes

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/environment"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/filesystems"
)

// Kind is the outcome of classifying a volume-mount spec
type Kind int

const (
	KindBind               Kind = iota // host directory mounted into the container
	KindNamedVolumeSkipped             // named volume; run has no way to attach it
	KindInvalid                        // fewer than two components
	KindFileSkipped                    // bind source is a file, not a directory
	KindCreateFailed                   // bind source missing and could not be created
)

func (k Kind) String() string {
	switch k {
	case KindBind:
		return "bind"
	case KindNamedVolumeSkipped:
		return "named-volume-skipped"
	case KindInvalid:
		return "invalid"
	case KindFileSkipped:
		return "file-skipped"
	case KindCreateFailed:
		return "create-failed"
	default:
		return "unknown"
	}
}

// Mount is a classified volume-mount spec. Source is the absolute host path
// for bind mounts and the volume name for named volumes.
type Mount struct {
	Kind    Kind
	Spec    string
	Source  string
	Target  string
	Mode    string
	Warning string
}

// Accepted reports whether the mount produces a -v argument
func (m Mount) Accepted() bool {
	return m.Kind == KindBind
}

// Arg renders the mount as the value of a -v flag
func (m Mount) Arg() string {
	return m.Source + ":" + m.Target
}

// Classifier turns volume-mount specs into bind mounts, creating missing
// host directories on the way
type Classifier struct {
	fsys     filesystems.FileSystem
	resolver *environment.Resolver
	logger   *zap.Logger
}

func NewClassifier(fsys filesystems.FileSystem, resolver *environment.Resolver, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{
		fsys:     fsys,
		resolver: resolver,
		logger:   logger,
	}
}

// Classify resolves variables in spec and classifies it. Relative bind
// sources are taken relative to baseDir. Only a variable error clause yields
// an error; every other problem is reported through the Mount's Kind and
// Warning and logged.
func (c *Classifier) Classify(spec, baseDir string, env map[string]string) (Mount, error) {
	resolved, err := c.resolver.Resolve(spec, env)
	if err != nil {
		return Mount{}, errors.Wrapf(err, "volume %q", spec)
	}

	parts := strings.SplitN(resolved, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return c.warn(Mount{Kind: KindInvalid, Spec: resolved},
			"Invalid volume spec, expected SOURCE:TARGET[:MODE]"), nil
	}

	m := Mount{Spec: resolved, Source: parts[0], Target: parts[1]}
	if len(parts) == 3 {
		// the run command has no mount mode flag
		m.Mode = parts[2]
	}

	if !looksLikePath(m.Source) {
		return c.warn(Mount{Kind: KindNamedVolumeSkipped, Spec: resolved, Source: m.Source, Target: m.Target, Mode: m.Mode},
			"Named volumes cannot be attached by the run command, skipping mount"), nil
	}

	if c.fsys.IsAbs(m.Source) {
		m.Source = c.fsys.Join(m.Source)
	} else {
		m.Source = c.fsys.Join(baseDir, m.Source)
	}

	info, err := c.fsys.Stat(m.Source)
	switch {
	case err == nil && info.IsDir():
		m.Kind = KindBind
		return m, nil
	case err == nil:
		m.Kind = KindFileSkipped
		return c.warn(m, "Bind source is a file, only directories can be mounted, skipping mount"), nil
	}

	if mkErr := c.fsys.MkdirAll(m.Source, 0o755); mkErr != nil {
		m.Kind = KindCreateFailed
		return c.warn(m, fmt.Sprintf("Could not create bind source directory, skipping mount: %v", mkErr)), nil
	}
	c.logger.Info("Created bind source directory", zap.String("path", m.Source))
	m.Kind = KindBind
	return m, nil
}

func (c *Classifier) warn(m Mount, message string) Mount {
	m.Warning = message
	c.logger.Warn(message,
		zap.String("volume", m.Spec),
		zap.Stringer("kind", m.Kind))
	return m
}

// looksLikePath reports whether a volume source names a host path rather
// than a named volume
func looksLikePath(source string) bool {
	return strings.ContainsAny(source, `/\`) || strings.HasPrefix(source, ".")
}
