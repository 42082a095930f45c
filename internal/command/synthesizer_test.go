package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkCreate(t *testing.T) {
	cmd := NetworkCreate("front", NetworkSpec{
		Name:       "front",
		Driver:     "bridge",
		Options:    map[string]string{"mtu": "1400", "com.example.a": "b"},
		Labels:     map[string]string{"tier": "web"},
		Attachable: true,
		IPv6:       true,
		Internal:   true,
	})

	assert.Equal(t, KindNetworkCreate, cmd.Kind)
	assert.Equal(t, []string{
		"network", "create",
		"--driver", "bridge",
		"--opt", "com.example.a=b",
		"--opt", "mtu=1400",
		"--attachable", "--ipv6", "--internal",
		"--label", "tier=web",
		"front",
	}, cmd.Args)
}

func TestNetworkCreate_Minimal(t *testing.T) {
	cmd := NetworkCreate("default", NetworkSpec{Name: "demo_default"})
	assert.Equal(t, []string{"network", "create", "demo_default"}, cmd.Args)
	assert.Equal(t, "default", cmd.Subject)
}

func TestVolumeCreate(t *testing.T) {
	cmd := VolumeCreate("data", VolumeSpec{
		Name:    "pgdata",
		Driver:  "local",
		Options: map[string]string{"size": "10G"},
		Labels:  map[string]string{"backup": "daily"},
	})

	assert.Equal(t, KindVolumeCreate, cmd.Kind)
	assert.Equal(t, []string{
		"volume", "create", "--driver", "local", "--opt", "size=10G", "--label", "backup=daily", "pgdata",
	}, cmd.Args)
}

func TestBuild(t *testing.T) {
	cmd := Build("api", BuildSpec{
		Tag:        "api:latest",
		Context:    "/proj/api",
		Dockerfile: "/proj/api/Dockerfile.prod",
		Args:       map[string]string{"VERSION": "1.0", "COMMIT": "abc"},
	})

	assert.Equal(t, KindBuild, cmd.Kind)
	assert.Equal(t, []string{
		"build", "--tag", "api:latest", "/proj/api",
		"--file", "/proj/api/Dockerfile.prod",
		"--build-arg", "COMMIT=abc",
		"--build-arg", "VERSION=1.0",
	}, cmd.Args)
}

func TestBuild_Minimal(t *testing.T) {
	cmd := Build("api", BuildSpec{Tag: "api:latest", Context: "."})
	assert.Equal(t, []string{"build", "--tag", "api:latest", "."}, cmd.Args)
}

func TestRun_FullFlagOrder(t *testing.T) {
	cmd := Run("web", RunSpec{
		Detach:        true,
		ContainerName: "demo-web",
		User:          "1000:1000",
		Mounts:        []string{"/proj/data:/data", "/proj/logs:/logs"},
		Environment:   map[string]string{"B": "2", "A": "1"},
		Networks:      []string{"front", "back"},
		Hostname:      "web.local",
		WorkingDir:    "/app",
		Privileged:    true,
		ReadOnly:      true,
		Interactive:   true,
		TTY:           true,
		Image:         "nginx:1.25",
		Command:       []string{"nginx", "-g", "daemon off;"},
	})

	assert.Equal(t, KindRun, cmd.Kind)
	assert.Equal(t, []string{
		"run", "-d",
		"--name", "demo-web",
		"--user", "1000:1000",
		"-v", "/proj/data:/data",
		"-v", "/proj/logs:/logs",
		"-e", "A=1",
		"-e", "B=2",
		"--network", "front",
		"--network", "back",
		"--hostname", "web.local",
		"--workdir", "/app",
		"--privileged",
		"--read-only",
		"-i", "-t",
		"nginx:1.25",
		"nginx", "-g", "daemon off;",
	}, cmd.Args)
}

func TestRun_EntrypointWinsOverCommand(t *testing.T) {
	cmd := Run("job", RunSpec{
		ContainerName: "job",
		Image:         "alpine",
		Entrypoint:    []string{"/bin/sh", "-c"},
		Command:       []string{"echo", "ignored"},
	})

	assert.Equal(t, []string{"run", "--name", "job", "alpine", "--entrypoint", "/bin/sh", "-c"}, cmd.Args)
}

func TestRun_ImagePrecedesTail(t *testing.T) {
	specs := []RunSpec{
		{ContainerName: "a", Image: "img"},
		{ContainerName: "b", Image: "img", Command: []string{"img", "--flag"}},
		{ContainerName: "c", Image: "img", Entrypoint: []string{"run"}, Detach: true, TTY: true},
		{ContainerName: "d", Image: "img", Environment: map[string]string{"X": "img"}, Mounts: []string{"/a:/b"}},
	}

	for _, spec := range specs {
		cmd := Run(spec.ContainerName, spec)

		tail := spec.Command
		if len(spec.Entrypoint) > 0 {
			tail = append([]string{"--entrypoint"}, spec.Entrypoint...)
		}
		imageAt := len(cmd.Args) - len(tail) - 1
		assert.Equal(t, spec.Image, cmd.Args[imageAt], spec.ContainerName)
		assert.Equal(t, append([]string{}, tail...), append([]string{}, cmd.Args[imageAt+1:]...), spec.ContainerName)
	}
}

func TestContainerName(t *testing.T) {
	assert.Equal(t, "custom", ContainerName("demo", "web", "custom"))
	assert.Equal(t, "demo-web", ContainerName("demo", "web", ""))
	assert.Equal(t, "web", ContainerName("", "web", ""))
}
