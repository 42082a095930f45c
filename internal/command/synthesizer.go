package command

// NetworkSpec is a resolved top-level network
type NetworkSpec struct {
	Name       string
	Driver     string
	Options    map[string]string
	Labels     map[string]string
	Attachable bool
	IPv6       bool
	Internal   bool
}

// VolumeSpec is a resolved top-level volume
type VolumeSpec struct {
	Name    string
	Driver  string
	Options map[string]string
	Labels  map[string]string
}

// BuildSpec is a resolved image build
type BuildSpec struct {
	Tag        string
	Context    string
	Dockerfile string
	Args       map[string]string
}

// RunSpec is a resolved container launch
type RunSpec struct {
	Detach        bool
	ContainerName string
	User          string
	Mounts        []string // host:dest pairs
	Environment   map[string]string
	Networks      []string
	Hostname      string
	WorkingDir    string
	Privileged    bool
	ReadOnly      bool
	Interactive   bool
	TTY           bool
	Image         string
	Entrypoint    []string
	Command       []string
}

// NetworkCreate builds:
//
//	network create [--driver D] [--opt K=V]* [--attachable] [--ipv6] [--internal] [--label K=V]* <name>
func NetworkCreate(key string, spec NetworkSpec) Command {
	args := []string{"network", "create"}
	if spec.Driver != "" {
		args = append(args, "--driver", spec.Driver)
	}
	args = appendPairs(args, "--opt", spec.Options)
	if spec.Attachable {
		args = append(args, "--attachable")
	}
	if spec.IPv6 {
		args = append(args, "--ipv6")
	}
	if spec.Internal {
		args = append(args, "--internal")
	}
	args = appendPairs(args, "--label", spec.Labels)
	args = append(args, spec.Name)

	return Command{Kind: KindNetworkCreate, Subject: key, Args: args}
}

// VolumeCreate builds:
//
//	volume create [--driver D] [--opt K=V]* [--label K=V]* <name>
func VolumeCreate(key string, spec VolumeSpec) Command {
	args := []string{"volume", "create"}
	if spec.Driver != "" {
		args = append(args, "--driver", spec.Driver)
	}
	args = appendPairs(args, "--opt", spec.Options)
	args = appendPairs(args, "--label", spec.Labels)
	args = append(args, spec.Name)

	return Command{Kind: KindVolumeCreate, Subject: key, Args: args}
}

// Build builds:
//
//	build --tag <tag> <context> [--file <dockerfile>] [--build-arg K=V]*
func Build(service string, spec BuildSpec) Command {
	args := []string{"build", "--tag", spec.Tag, spec.Context}
	if spec.Dockerfile != "" {
		args = append(args, "--file", spec.Dockerfile)
	}
	args = appendPairs(args, "--build-arg", spec.Args)

	return Command{Kind: KindBuild, Subject: service, Args: args}
}

// Run builds the run command. The order of the flags is fixed and the image
// is always the token right before the entrypoint or command tail. An
// entrypoint suppresses the command.
func Run(service string, spec RunSpec) Command {
	args := []string{"run"}
	if spec.Detach {
		args = append(args, "-d")
	}
	args = append(args, "--name", spec.ContainerName)
	if spec.User != "" {
		args = append(args, "--user", spec.User)
	}
	for _, mount := range spec.Mounts {
		args = append(args, "-v", mount)
	}
	args = appendPairs(args, "-e", spec.Environment)
	for _, network := range spec.Networks {
		args = append(args, "--network", network)
	}
	if spec.Hostname != "" {
		args = append(args, "--hostname", spec.Hostname)
	}
	if spec.WorkingDir != "" {
		args = append(args, "--workdir", spec.WorkingDir)
	}
	if spec.Privileged {
		args = append(args, "--privileged")
	}
	if spec.ReadOnly {
		args = append(args, "--read-only")
	}
	if spec.Interactive {
		args = append(args, "-i")
	}
	if spec.TTY {
		args = append(args, "-t")
	}

	args = append(args, spec.Image)

	if len(spec.Entrypoint) > 0 {
		args = append(args, "--entrypoint")
		args = append(args, spec.Entrypoint...)
	} else {
		args = append(args, spec.Command...)
	}

	return Command{Kind: KindRun, Subject: service, Args: args}
}

// ContainerName returns the override when set, otherwise project-service,
// or the bare service name when no project name is known
func ContainerName(project, service, override string) string {
	if override != "" {
		return override
	}
	if project == "" {
		return service
	}
	return project + "-" + service
}
