package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/buildinfo/internal/app"
)

func (c *CLI) newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record TASK",
		Short: "Record build information for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agent, _ := cmd.Flags().GetString("agent")
			inputHash, _ := cmd.Flags().GetString("input-hash")
			outputHash, _ := cmd.Flags().GetString("output-hash")
			inputs, _ := cmd.Flags().GetStringSlice("inputs")
			outputs, _ := cmd.Flags().GetStringSlice("outputs")

			info, err := c.app.Record(cmd.Context(), projectRoot(cmd), app.RecordOptions{
				Task:       args[0],
				Agent:      agent,
				InputHash:  inputHash,
				OutputHash: outputHash,
				Inputs:     inputs,
				Outputs:    outputs,
			})
			if err != nil {
				return err
			}
			return c.render(cmd, info)
		},
	}
	cmd.Flags().StringP("agent", "a", "", "Build agent as NAME/VERSION (defaults to the configured agent)")
	cmd.Flags().String("input-hash", "", "Hash of the task inputs")
	cmd.Flags().String("output-hash", "", "Hash of the task outputs")
	cmd.Flags().StringSlice("inputs", nil, "Paths or globs to hash when --input-hash is not given")
	cmd.Flags().StringSlice("outputs", nil, "Paths or globs to hash when --output-hash is not given")
	return cmd
}
