package interpreter

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/command"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/dockerfile"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/environment"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/schema"
)

const defaultDockerfile = "Dockerfile"

func (i *Interpreter) upService(ctx context.Context, plan *command.Plan, project *schema.Project, name, baseDir string, global map[string]string) error {
	svc := project.Services[name]
	i.reportInert(plan, project, name, svc)

	image, err := i.env.Resolve(svc.ImageRef(name), global)
	if err != nil {
		return errors.Wrap(err, "image")
	}

	if svc.HasBuild() {
		build, err := i.buildSpec(plan, name, svc.Build, image, baseDir, global)
		if err != nil {
			return err
		}
		if err := i.execute(ctx, plan, command.Build(name, build)); err != nil {
			return err
		}
	}

	var mounts []string
	for _, spec := range svc.Volumes {
		m, err := i.volumes.Classify(spec, baseDir, global)
		if err != nil {
			return err
		}
		if !m.Accepted() {
			plan.Notice(fmt.Sprintf("Service %s: %s (%s)", name, m.Warning, m.Spec))
			continue
		}
		mounts = append(mounts, m.Arg())
	}

	env, err := i.serviceEnvironment(plan, name, svc, baseDir, global)
	if err != nil {
		return err
	}
	plan.Environments[name] = env

	networks, err := i.networks.ResolveAll(svc.Networks, project.Networks, global)
	if err != nil {
		return err
	}

	spec := command.RunSpec{
		Detach:      i.detach,
		Mounts:      mounts,
		Environment: env,
		Networks:    networks,
		Privileged:  svc.Privileged,
		ReadOnly:    svc.ReadOnly,
		Interactive: svc.StdinOpen,
		TTY:         svc.Tty,
		Image:       image,
	}

	override, err := i.env.Resolve(svc.ContainerName, global)
	if err != nil {
		return errors.Wrap(err, "container_name")
	}
	spec.ContainerName = command.ContainerName(project.Name, name, override)

	for _, field := range []struct {
		key    string
		value  string
		target *string
	}{
		{"user", svc.User, &spec.User},
		{"hostname", svc.Hostname, &spec.Hostname},
		{"working_dir", svc.WorkingDir, &spec.WorkingDir},
	} {
		resolved, err := i.env.Resolve(field.value, global)
		if err != nil {
			return errors.Wrap(err, field.key)
		}
		*field.target = resolved
	}

	if spec.Entrypoint, err = i.resolveCommand(svc.Entrypoint, global); err != nil {
		return errors.Wrap(err, "entrypoint")
	}
	if spec.Command, err = i.resolveCommand(svc.Command, global); err != nil {
		return errors.Wrap(err, "command")
	}

	return i.execute(ctx, plan, command.Run(name, spec))
}

// buildSpec resolves the build context against baseDir and the Dockerfile
// against the context. The image the service runs doubles as the build tag.
func (i *Interpreter) buildSpec(plan *command.Plan, name string, build *schema.BuildSpec, tag, baseDir string, global map[string]string) (command.BuildSpec, error) {
	buildContext, err := i.env.Resolve(build.Context, global)
	if err != nil {
		return command.BuildSpec{}, errors.Wrap(err, "build context")
	}
	buildContext = i.absolute(baseDir, buildContext)

	file, err := i.env.Resolve(build.Dockerfile, global)
	if err != nil {
		return command.BuildSpec{}, errors.Wrap(err, "dockerfile")
	}
	if file != "" {
		file = i.absolute(buildContext, file)
	}

	args, err := i.env.ResolveAll(build.Args, global)
	if err != nil {
		return command.BuildSpec{}, errors.Wrap(err, "build args")
	}

	dockerfilePath := file
	if dockerfilePath == "" {
		dockerfilePath = i.fs.Join(buildContext, defaultDockerfile)
	}
	i.checkBuildArgs(plan, name, dockerfilePath, args)

	return command.BuildSpec{
		Tag:        tag,
		Context:    buildContext,
		Dockerfile: file,
		Args:       args,
	}, nil
}

// checkBuildArgs warns about build arguments the Dockerfile never declares.
// A Dockerfile that cannot be read or parsed is left to the build to report.
func (i *Interpreter) checkBuildArgs(plan *command.Plan, name, path string, args map[string]string) {
	if len(args) == 0 {
		return
	}
	content, err := i.fs.ReadFile(path)
	if err != nil {
		i.logger.Debug("Skipping build argument check", zap.String("dockerfile", path), zap.Error(err))
		return
	}
	undeclared, err := dockerfile.UndeclaredArgs(content, args)
	if err != nil {
		i.logger.Debug("Skipping build argument check", zap.String("dockerfile", path), zap.Error(err))
		return
	}
	for _, arg := range undeclared {
		i.warn(plan, fmt.Sprintf("Service %s: build argument %s is not declared by an ARG instruction", name, arg),
			zap.String("service", name),
			zap.String("dockerfile", path))
	}
}

// serviceEnvironment layers the global environment, the service's env files
// in order and its inline environment, then resolves every value against
// the merged map
func (i *Interpreter) serviceEnvironment(plan *command.Plan, name string, svc schema.Service, baseDir string, global map[string]string) (map[string]string, error) {
	layers := []map[string]string{global}
	for _, file := range svc.EnvFile {
		path := i.absolute(baseDir, file)
		if _, err := i.fs.Stat(path); err != nil {
			i.warn(plan, fmt.Sprintf("Service %s: env file %s not found", name, file),
				zap.String("service", name),
				zap.String("path", path))
			continue
		}
		layers = append(layers, environment.LoadFile(i.fs, path))
	}
	fromFiles := environment.Merge(layers...)

	inline := make(map[string]string, len(svc.Environment))
	for key, value := range svc.Environment {
		if value != nil {
			inline[key] = *value
			continue
		}
		// a bare key takes its value from the environment, if any
		if v, ok := i.env.Lookup(key, fromFiles); ok {
			inline[key] = v
		}
	}

	merged := environment.Merge(fromFiles, inline)
	resolved := make(map[string]string, len(merged))
	for key, value := range merged {
		local := merged
		// FOO: ${FOO} refers to the layers below the inline value
		if _, ok := inline[key]; ok && strings.Contains(value, "${"+key) {
			local = environment.Merge(merged)
			if lower, ok := fromFiles[key]; ok {
				local[key] = lower
			} else {
				delete(local, key)
			}
		}
		v, err := i.env.Resolve(value, local)
		if err != nil {
			return nil, errors.Wrapf(err, "environment %s", key)
		}
		resolved[key] = v
	}
	return resolved, nil
}

// resolveCommand substitutes variables in the string form before splitting
// it, so a value containing spaces stays inside its word. List items are
// resolved one by one.
func (i *Interpreter) resolveCommand(c schema.ShellCommand, global map[string]string) ([]string, error) {
	if c.Raw == "" {
		return i.resolveTokens(c.List, global)
	}
	line, err := i.env.Resolve(c.Raw, global)
	if err != nil {
		return nil, err
	}
	return schema.SplitCommand(line)
}

func (i *Interpreter) resolveTokens(tokens []string, global map[string]string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, len(tokens))
	for n, token := range tokens {
		resolved, err := i.env.Resolve(token, global)
		if err != nil {
			return nil, err
		}
		out[n] = resolved
	}
	return out, nil
}
