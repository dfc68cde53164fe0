package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newAgentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent [NAME/VERSION]",
		Short: "Parse a build agent token, or print this tool's own agent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agent := c.app.Self()
			if len(args) == 1 {
				agent = c.app.ParseAgent(args[0])
			}

			field, _ := cmd.Flags().GetString("field")
			switch field {
			case "":
				return c.render(cmd, agent)
			case "name":
				_, err := fmt.Fprintln(cmd.OutOrStdout(), agent.Name())
				return err
			case "version":
				_, err := fmt.Fprintln(cmd.OutOrStdout(), agent.Version())
				return err
			default:
				return zerr.With(domain.ErrUnknownAgentField, "field", field)
			}
		},
	}
	cmd.Flags().String("field", "", "Print a single field: name or version")
	return cmd
}
