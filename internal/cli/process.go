package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewProcessCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "process <file>...",
		Short: "Produce minutes for one or more recordings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := deps.build()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			var failed int
			for _, path := range args {
				reports, err := application.Processor.Process(ctx, path)
				if err != nil {
					application.Logger.Error(ctx, "%s: %v", path, err)
					failed++
					continue
				}
				for _, r := range reports {
					fmt.Fprintln(cmd.OutOrStdout(), r)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d recording(s) failed", failed, len(args))
			}
			return nil
		},
	}
}
