package cli

import (
	"github.com/spf13/cobra"
)

// NewCmdServe creates the serve command.
func NewCmdServe(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Post availability polls on the POLL_SCHEDULE_CRON schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := load()
			if err != nil {
				return err
			}
			return rt.Serve(cmd.Context())
		},
	}
}
