// Package commands implements the CLI commands for the buildinfo tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/buildinfo/internal/app"
	"go.trai.ch/buildinfo/internal/build"
	"go.trai.ch/buildinfo/internal/core/domain"
)

// CLI represents the command line interface for buildinfo.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ParseAgent(token string) domain.BuildAgent
	Self() domain.BuildAgent
	Record(ctx context.Context, root string, opts app.RecordOptions) (domain.BuildInfo, error)
	Show(ctx context.Context, root, task string) (domain.BuildInfo, error)
	List(ctx context.Context, root string) ([]domain.BuildInfo, error)
	Render(w io.Writer, format string, v any) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           build.Name,
		Short:         "Record which build agent produced each task",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("root", "C", ".", "Project root directory")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text, json, yaml or xml")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newVersionCmd())
	rootCmd.AddCommand(c.newAgentCmd())
	rootCmd.AddCommand(c.newRecordCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newListCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetLogHook sets up a PersistentPreRun function that reads the log-json flag
// and calls the provided callback with its value.
func (c *CLI) SetLogHook(fn func(jsonLogs bool)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		jsonLogs, err := cmd.Flags().GetBool("log-json")
		if err != nil {
			return err
		}
		fn(jsonLogs)
		return nil
	}
}

func (c *CLI) render(cmd *cobra.Command, v any) error {
	format, _ := cmd.Flags().GetString("output")
	return c.app.Render(cmd.OutOrStdout(), format, v)
}

func projectRoot(cmd *cobra.Command) string {
	root, _ := cmd.Flags().GetString("root")
	return root
}
