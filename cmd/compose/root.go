package compose

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/interpreter"
)

var cfgFile string

var errUsage = errors.New("a subcommand is required")

var rootCmd = &cobra.Command{
	Use:   "container-compose",
	Short: "Run compose projects with the container CLI",
	Long: `container-compose reads a compose file and drives the container CLI:
1. Create - Create the declared networks and volumes
2. Build - Build images for services that declare a build
3. Run - Start one container per service`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errUsage
	},
}

// Execute runs the root command and exits with status 1 on any error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.container-compose.yaml)")
	flags.StringP("file", "f", "", "compose file (default: compose.yaml, compose.yml, docker-compose.yml or docker-compose.yaml)")
	flags.String("env-file", "", "global environment file (default: .env next to the compose file)")
	flags.StringP("project-name", "p", "", "project name (default: the compose file's directory name)")
	flags.String("tool", interpreter.DefaultTool, "container CLI to invoke")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	bindFlag("file", flags.Lookup("file"))
	bindFlag("env_file", flags.Lookup("env-file"))
	bindFlag("project_name", flags.Lookup("project-name"))
	bindFlag("tool", flags.Lookup("tool"))
	bindFlag("log_level", flags.Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".container-compose")
	}

	viper.SetEnvPrefix("CONTAINER_COMPOSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func bindFlag(key string, flag *pflag.Flag) {
	cobra.CheckErr(viper.BindPFlag(key, flag))
}
