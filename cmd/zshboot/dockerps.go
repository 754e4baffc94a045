package zshboot

import (
	"github.com/arthur-debert/zshboot/pkg/dockerps"
	"github.com/spf13/cobra"
)

func newDockerpsCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dockerps [--compose] [-h|--help] [docker ps args...]",
		Short: MsgDockerpsShort,
		Long:  dockerps.Usage,
		// every argument, including -h and --help, belongs to dockerps
		DisableFlagParsing: true,
		GroupID:            "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Lister(cmd.OutOrStdout()).Run(cmd.Context(), args)
		},
	}
}
