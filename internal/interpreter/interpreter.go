// Package interpreter turns a decoded project into container tool
// invocations: networks and volumes first, then one build (when declared)
// and one run per service.
package interpreter

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/command"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/environment"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/filesystems"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/network"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/runner"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/schema"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/volumes"
)

// DefaultTool is the container CLI invoked when none is configured
const DefaultTool = "container"

type Interpreter struct {
	fs       filesystems.FileSystem
	env      *environment.Resolver
	volumes  *volumes.Classifier
	networks *network.Resolver
	runner   runner.Runner
	logger   *zap.Logger
	tool     string
	detach   bool
}

type Option func(*Interpreter)

func WithFileSystem(fsys filesystems.FileSystem) Option {
	return func(i *Interpreter) {
		i.fs = fsys
	}
}

func WithResolver(resolver *environment.Resolver) Option {
	return func(i *Interpreter) {
		i.env = resolver
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// WithTool sets the program every command is passed to
func WithTool(tool string) Option {
	return func(i *Interpreter) {
		if tool != "" {
			i.tool = tool
		}
	}
}

// WithDetach makes run commands start containers in the background
func WithDetach(detach bool) Option {
	return func(i *Interpreter) {
		i.detach = detach
	}
}

func New(r runner.Runner, opts ...Option) *Interpreter {
	i := &Interpreter{
		fs:     filesystems.NewLocalFS(),
		runner: r,
		logger: zap.NewNop(),
		tool:   DefaultTool,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.env == nil {
		i.env = environment.NewResolver(environment.WithLogger(i.logger))
	}
	i.volumes = volumes.NewClassifier(i.fs, i.env, i.logger)
	i.networks = network.NewResolver(i.env)
	return i
}

// Up interprets the project. Relative paths resolve against baseDir and
// envFile is the optional global environment file.
//
// Commands run one at a time in a fixed order. A command that exits non-zero
// is logged and interpretation continues. Failing to launch the tool or a
// required variable that is not set stops the run; the plan returned
// alongside the error holds what was issued until then.
func (i *Interpreter) Up(ctx context.Context, project *schema.Project, baseDir, envFile string) (*command.Plan, error) {
	plan := command.NewPlan(project.Name, i.tool)

	global := environment.LoadFile(i.fs, envFile)
	i.logger.Debug("Loaded global environment",
		zap.String("path", envFile),
		zap.Int("variables", len(global)))

	i.logger.Info("Bringing up project",
		zap.String("project", project.Name),
		zap.Int("services", len(project.Services)))

	if err := i.createNetworks(ctx, plan, project, global); err != nil {
		return plan, err
	}
	if err := i.createVolumes(ctx, plan, project, global); err != nil {
		return plan, err
	}
	i.reportFileResources(plan, project)

	for _, name := range project.ServiceNames() {
		if err := i.upService(ctx, plan, project, name, baseDir, global); err != nil {
			return plan, errors.Wrapf(err, "service %q", name)
		}
	}

	i.logger.Info("Project is up",
		zap.String("project", project.Name),
		zap.Int("commands", len(plan.Commands)))
	return plan, nil
}

// execute records c in the plan and runs it. Only a launch failure is
// returned; a non-zero exit is logged with the captured stderr.
func (i *Interpreter) execute(ctx context.Context, plan *command.Plan, c command.Command) error {
	plan.Add(c)

	line := runner.CommandLine(i.tool, environment.RedactArgs(c.Args))
	i.logger.Info("Running command",
		zap.String("kind", string(c.Kind)),
		zap.String("subject", c.Subject),
		zap.String("command", line))

	result, err := i.runner.Run(ctx, i.tool, c.Args)
	if err != nil {
		return errors.Wrapf(err, "%s %s", c.Kind, c.Subject)
	}

	if !result.Success() {
		i.logger.Error("Command failed, continuing",
			zap.String("kind", string(c.Kind)),
			zap.String("subject", c.Subject),
			zap.Int("exitCode", result.ExitCode),
			zap.String("stderr", result.Stderr))
		return nil
	}

	if result.Stdout != "" {
		i.logger.Debug("Command output",
			zap.String("subject", c.Subject),
			zap.String("stdout", result.Stdout))
	}
	return nil
}

// notice logs an informational message and keeps it in the plan
func (i *Interpreter) notice(plan *command.Plan, message string, fields ...zap.Field) {
	i.logger.Info(message, fields...)
	plan.Notice(message)
}

func (i *Interpreter) warn(plan *command.Plan, message string, fields ...zap.Field) {
	i.logger.Warn(message, fields...)
	plan.Notice(message)
}

// absolute makes p absolute against baseDir
func (i *Interpreter) absolute(baseDir, p string) string {
	if i.fs.IsAbs(p) {
		return i.fs.Join(p)
	}
	return i.fs.Join(baseDir, p)
}
