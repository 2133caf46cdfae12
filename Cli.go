package main

import (
	"io"

	"github.com/reaandrew/sqlpick/actions"
	"github.com/reaandrew/sqlpick/core"
	"github.com/reaandrew/sqlpick/loaders"
	"github.com/reaandrew/sqlpick/pickers"
	"github.com/reaandrew/sqlpick/tools"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Cli represents the command-line interface
type Cli struct {
	configPath string
	logLevel   string
	logFile    string
	height     int

	wait   bool
	client string
	dbPath string

	out    io.Writer
	picker core.Picker
	runner core.ProcessRunner
}

func NewCli(out io.Writer) *Cli {
	return &Cli{out: out}
}

// Execute sets up and runs the root command
func (cli *Cli) Execute() error {
	return cli.createRootCommand().Execute()
}

func (cli *Cli) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sqlpick",
		Short:         "Pick a named SQL query with a fuzzy finder and print it.",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cli.logLevel, cli.logFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.run(actions.PrintMode, DefaultYamlConfig)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cli.configPath, "config", "", "Query file (defaults to config.yml, or queries.toml for exec)")
	rootCmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cli.logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().IntVar(&cli.height, "height", pickers.DefaultHeightPercent, "Picker height as a percentage of the terminal")

	rootCmd.AddCommand(cli.createListCommand())
	rootCmd.AddCommand(cli.createExecCommand())
	rootCmd.AddCommand(cli.createSqliteCommand())
	return rootCmd
}

func (cli *Cli) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every configured query.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.run(actions.ListMode, DefaultYamlConfig)
		},
	}
}

func (cli *Cli) createExecCommand() *cobra.Command {
	execCmd := &cobra.Command{
		Use:   "exec",
		Short: "Pick a query and run it with the csql database client.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.run(actions.ExecMode, DefaultTomlConfig)
		},
	}

	execCmd.Flags().BoolVar(&cli.wait, "wait", false, "Wait for the client to exit and report its status")
	execCmd.Flags().StringVar(&cli.client, "client", tools.CsqlClient, "Database client executable")
	return execCmd
}

func (cli *Cli) createSqliteCommand() *cobra.Command {
	sqliteCmd := &cobra.Command{
		Use:   "sqlite",
		Short: "Pick a query and run it against a local SQLite database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.run(actions.SqliteMode, DefaultYamlConfig)
		},
	}

	sqliteCmd.Flags().StringVar(&cli.dbPath, "db", "", "SQLite database file (required)")
	return sqliteCmd
}

func (cli *Cli) run(mode string, defaultConfig string) error {
	configPath := cli.configPath
	if configPath == "" {
		configPath = defaultConfig
	}

	config, err := loaders.LoadConfigFile(configPath)
	if err != nil {
		return err
	}

	action, err := actions.CreateAction(mode, actions.Options{
		Picker: cli.createPicker(),
		Runner: cli.createRunner(),
		Client: cli.client,
		DBPath: cli.dbPath,
		Out:    cli.out,
	})
	if err != nil {
		return err
	}

	log.Debugf("Running %s action with %s", mode, configPath)
	return action.Run(config)
}

func (cli *Cli) createPicker() core.Picker {
	if cli.picker != nil {
		return cli.picker
	}
	return pickers.NewFuzzyPicker(cli.height)
}

func (cli *Cli) createRunner() core.ProcessRunner {
	if cli.runner != nil {
		return cli.runner
	}
	return tools.NewExecProcessRunner(cli.wait)
}
