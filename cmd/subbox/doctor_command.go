package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subbox/internal/deps"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Report which external tools are available",
		Long: `Check the external tools referenced by the configuration.

All tools are optional. Without ffprobe the default 1920x1080 canvas is used;
without a measurer every cue's text size is estimated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(deps.Requirements(cfg))

			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					missing++
					state = "missing"
				}
				detail := status.Description
				if status.Detail != "" {
					detail = status.Detail
				}
				rows = append(rows, []string{status.Name, status.Command, state, yesNo(status.Optional), detail})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Tool", "Command", "Status", "Optional", "Detail"}, rows, nil))
			if missing > 0 {
				fmt.Fprintf(out, "%d optional tool(s) unavailable; conversions fall back to defaults\n", missing)
			} else {
				fmt.Fprintln(out, "All tools available")
			}
			return nil
		},
	}
}
