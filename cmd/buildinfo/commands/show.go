package commands

import "github.com/spf13/cobra"

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show TASK",
		Short: "Show the recorded build information for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := c.app.Show(cmd.Context(), projectRoot(cmd), args[0])
			if err != nil {
				return err
			}
			return c.render(cmd, info)
		},
	}
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := c.app.List(cmd.Context(), projectRoot(cmd))
			if err != nil {
				return err
			}
			return c.render(cmd, infos)
		},
	}
}
