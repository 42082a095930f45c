package schema

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrServiceNoImage = errors.New("service must declare an image or a build")
	ErrBuildNoContext = errors.New("build must declare a context")
)

// Service is a single service definition
type Service struct {
	Image         string            `yaml:"image,omitempty" json:"image,omitempty"`
	Build         *BuildSpec        `yaml:"build,omitempty" json:"build,omitempty"`
	Restart       string            `yaml:"restart,omitempty" json:"restart,omitempty"`
	HealthCheck   *HealthCheck      `yaml:"healthcheck,omitempty" json:"healthcheck,omitempty"`
	Volumes       []string          `yaml:"volumes,omitempty" json:"volumes,omitempty"`
	Environment   MappingWithEquals `yaml:"environment,omitempty" json:"environment,omitempty"`
	EnvFile       StringList        `yaml:"env_file,omitempty" json:"envFile,omitempty"`
	Ports         PortList          `yaml:"ports,omitempty" json:"ports,omitempty"`
	Command       ShellCommand      `yaml:"command,omitempty" json:"command,omitempty"`
	DependsOn     NameList          `yaml:"depends_on,omitempty" json:"dependsOn,omitempty"`
	User          string            `yaml:"user,omitempty" json:"user,omitempty"`
	ContainerName string            `yaml:"container_name,omitempty" json:"containerName,omitempty"`
	Networks      NameList          `yaml:"networks,omitempty" json:"networks,omitempty"`
	Hostname      string            `yaml:"hostname,omitempty" json:"hostname,omitempty"`
	Entrypoint    ShellCommand      `yaml:"entrypoint,omitempty" json:"entrypoint,omitempty"`
	Privileged    bool              `yaml:"privileged,omitempty" json:"privileged,omitempty"`
	ReadOnly      bool              `yaml:"read_only,omitempty" json:"readOnly,omitempty"`
	WorkingDir    string            `yaml:"working_dir,omitempty" json:"workingDir,omitempty"`
	Configs       []FileReference   `yaml:"configs,omitempty" json:"configs,omitempty"`
	Secrets       []FileReference   `yaml:"secrets,omitempty" json:"secrets,omitempty"`
	StdinOpen     bool              `yaml:"stdin_open,omitempty" json:"stdinOpen,omitempty"`
	Tty           bool              `yaml:"tty,omitempty" json:"tty,omitempty"`
}

// BuildSpec describes how to build a service image
type BuildSpec struct {
	Context    string  `yaml:"context" json:"context"`
	Dockerfile string  `yaml:"dockerfile,omitempty" json:"dockerfile,omitempty"`
	Args       Mapping `yaml:"args,omitempty" json:"args,omitempty"`
}

// HealthCheck is carried through the model but never enforced
type HealthCheck struct {
	Test        StringList `yaml:"test,omitempty" json:"test,omitempty"`
	Interval    string     `yaml:"interval,omitempty" json:"interval,omitempty"`
	Timeout     string     `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	StartPeriod string     `yaml:"start_period,omitempty" json:"startPeriod,omitempty"`
	Retries     *uint64    `yaml:"retries,omitempty" json:"retries,omitempty"`
	Disable     bool       `yaml:"disable,omitempty" json:"disable,omitempty"`
}

// FileReference is a service-scoped usage of a top-level config or secret
type FileReference struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target,omitempty" json:"target,omitempty"`
	UID    string `yaml:"uid,omitempty" json:"uid,omitempty"`
	GID    string `yaml:"gid,omitempty" json:"gid,omitempty"`
	Mode   string `yaml:"mode,omitempty" json:"mode,omitempty"`
}

// Validate checks the image-or-build invariant
func (s Service) Validate() error {
	if s.Image == "" && s.Build == nil {
		return ErrServiceNoImage
	}
	return nil
}

// HasBuild reports whether the service is built from source
func (s Service) HasBuild() bool {
	return s.Build != nil
}

// ImageRef returns the image the service runs. Services without an explicit
// image run the tag produced by their build.
func (s Service) ImageRef(serviceName string) string {
	if s.Image != "" {
		return s.Image
	}
	return serviceName + ":latest"
}
