package zshboot

import (
	"github.com/arthur-debert/zshboot/pkg/bootstrap"
	"github.com/spf13/cobra"
)

func newBootstrapCmd(app func() *App) *cobra.Command {
	var (
		dryRun bool
		only   []string
	)

	cmd := &cobra.Command{
		Use:     "bootstrap",
		Short:   MsgBootstrapShort,
		Long:    MsgBootstrapLong,
		Example: MsgBootstrapExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			out := cmd.OutOrStdout()
			reporter := bootstrap.NewPrinterReporter(out, a.colorless(out))

			o := bootstrap.New(bootstrap.DefaultSteps(a.BootstrapEnv()))
			o.DryRun = dryRun
			o.Only = only
			o.Reporter = reporter

			report, err := o.Run(cmd.Context())
			reporter.Summary(report)
			return err
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().StringSliceVar(&only, "only", nil, MsgFlagOnly)
	return cmd
}
