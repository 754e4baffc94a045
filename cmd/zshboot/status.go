package zshboot

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/zshboot/pkg/bootstrap"
	"github.com/arthur-debert/zshboot/pkg/rcsync"
	"github.com/arthur-debert/zshboot/pkg/style"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// statusReport is the machine readable form of `zshboot status`
type statusReport struct {
	Steps []bootstrap.Result `json:"steps" yaml:"steps"`
	Sync  syncStatus         `json:"sync" yaml:"sync"`
}

type syncStatus struct {
	rcsync.State `yaml:",inline"`
	Error        string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newStatusCmd(app func() *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()

			o := bootstrap.New(bootstrap.DefaultSteps(a.BootstrapEnv()))
			o.DryRun = true
			report, err := o.Run(cmd.Context())
			if err != nil {
				return err
			}

			st := statusReport{Steps: report.Results}
			state, err := a.Syncer(io.Discard).Check(cmd.Context())
			if err != nil {
				st.Sync.Error = err.Error()
			} else {
				st.Sync.State = state
			}

			return writeStatus(cmd.OutOrStdout(), a.Theme(cmd.OutOrStdout()), format, st)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", MsgFlagFormat)
	return cmd
}

func writeStatus(w io.Writer, t *style.Theme, format string, st statusReport) error {
	switch strings.ToLower(format) {
	case "text", "":
		return style.WriteStatus(w, t, statusLines(st))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(st); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	default:
		return fmt.Errorf(MsgUnknownFormat, format)
	}
}

func statusLines(st statusReport) []style.StatusLine {
	var lines []style.StatusLine
	for _, r := range st.Steps {
		s := style.StatusOK
		if r.Outcome != bootstrap.Satisfied {
			s = style.StatusMissing
		}
		lines = append(lines, style.StatusLine{Group: "bootstrap", Name: r.Step, Status: s})
	}

	sync := style.StatusLine{Group: "sync", Name: "zshrc"}
	switch {
	case st.Sync.Error != "":
		sync.Status = style.StatusUnknown
		sync.Detail = MsgSyncUnavailable
	case st.Sync.InSync:
		sync.Status = style.StatusOK
		sync.Detail = short(st.Sync.LocalHash)
	default:
		sync.Status = style.StatusDrift
		sync.Detail = fmt.Sprintf(MsgStatusSyncDetail, short(st.Sync.LocalHash), short(st.Sync.RemoteHash))
	}
	return append(lines, sync)
}

func short(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
