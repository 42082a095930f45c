package compose

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/discovery"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/export"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/filesystems"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/interpreter"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/logging"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/parser"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/runner"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Create networks and volumes, build images and start every service",
	Long: `Up interprets the compose file in the current directory. Networks and
volumes are created first, then each service is built (when it declares a
build) and started, in service name order.

With --dry-run nothing is executed: the commands are printed as a plan in
the chosen format instead.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUp(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(upCmd)

	flags := upCmd.Flags()
	flags.BoolP("detach", "d", false, "run containers in the background")
	flags.Bool("dry-run", false, "print the commands instead of running them")
	flags.String("format", "json", "plan format for --dry-run (env, json, toml, yaml)")

	bindFlag("detach", flags.Lookup("detach"))
	bindFlag("dry_run", flags.Lookup("dry-run"))
	bindFlag("format", flags.Lookup("format"))
}

func runUp(ctx context.Context, out io.Writer) error {
	logger := logging.New(viper.GetString("log_level"))
	defer func() { _ = logger.Sync() }()

	dryRun := viper.GetBool("dry_run")
	var exporter export.Exporter
	if dryRun {
		var err error
		if exporter, err = export.ForFormat(viper.GetString("format")); err != nil {
			return err
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}

	fsys := filesystems.NewLocalFS()
	locator := discovery.NewLocator(fsys)
	descriptor, err := locator.Locate(wd, viper.GetString("file"))
	if err != nil {
		return err
	}
	logger.Debug("Using compose file", zap.String("path", descriptor.Path))

	project, err := parser.NewComposeParser(fsys).Parse(descriptor)
	if err != nil {
		return err
	}
	if name := viper.GetString("project_name"); name != "" {
		project.Name = name
	}

	var r runner.Runner = runner.NewExecRunner(logger)
	var runFS filesystems.FileSystem = fsys
	if dryRun {
		r = runner.NewRecorder()
		runFS = filesystems.NewDryRunFS(fsys)
	}

	interp := interpreter.New(r,
		interpreter.WithFileSystem(runFS),
		interpreter.WithLogger(logger),
		interpreter.WithTool(viper.GetString("tool")),
		interpreter.WithDetach(viper.GetBool("detach")),
	)

	envFile := locator.EnvFile(descriptor, wd, viper.GetString("env_file"))
	plan, err := interp.Up(ctx, project, descriptor.Dir(), envFile)
	if err != nil {
		return err
	}

	if !dryRun {
		return nil
	}
	data, err := exporter.Export(plan)
	if err != nil {
		return errors.Wrapf(err, "failed to export plan as %s", exporter.Name())
	}
	_, err = out.Write(data)
	return err
}
