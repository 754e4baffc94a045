package zshboot

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Bootstrap and sync a zsh environment"
	MsgBootstrapShort   = "Install whatever the shell setup is missing"
	MsgUpdateShort      = "Replace ~/.zshrc with the remote copy"
	MsgDiffShort        = "Diff ~/.zshrc against the remote copy"
	MsgSyncCheckShort   = "Warn when ~/.zshrc differs from the remote copy"
	MsgDockerpsShort    = "List containers as an aligned, colored table"
	MsgInitShort        = "Print the shell glue for eval in ~/.zshrc"
	MsgStatusShort      = "Show tool and sync status"
	MsgConfigShort      = "Print the effective configuration"
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate man pages"
	MsgVersionShort     = "Print version information"
	MsgHookShort        = "Print the lines a minimal ~/.zshrc needs"
	MsgUpdateLong       = "Update fetches the remote copy, overwrites ~/.zshrc with it and records its digest as both the local and the remote digest."
	MsgDiffLong         = "Diff fetches the remote copy and shows how ~/.zshrc differs, using delta, colordiff or diff when installed."
	MsgStatusLong       = "Status reports which bootstrap steps are satisfied and whether ~/.zshrc matches the remote copy. It never installs anything."
	MsgInitLong         = "Init prints environment exports, PATH entries, the oh-my-zsh setup, helper functions and aliases. Add eval \"$(zshboot init zsh)\" to ~/.zshrc."
	MsgVersionFormat    = "zshboot version %s\n  commit: %s\n  built:  %s\n"
	MsgUpdateInSync     = "zshrc already in sync (%s)\n"
	MsgUpdateWritten    = "zshrc updated (%s)\n"
	MsgManWritten       = "Wrote man pages to %s\n"
	MsgFatalPrefix      = "Error: "
	MsgNoCommand        = "no command specified"
	MsgUnknownFormat    = "unknown format %q (want text, yaml or json)"
	MsgSyncUnavailable  = "remote unavailable"
	MsgStatusSyncDetail = "local %s remote %s"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/zshboot/config.toml)"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagDryRun  = "Report what would be installed without installing"
	MsgFlagOnly    = "Only run the named steps or step groups (e.g. cargo,fzf)"
	MsgFlagFormat  = "Output format: text, yaml or json"
	MsgFlagManDir  = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/bootstrap-long.txt
	msgBootstrapLongRaw string
	MsgBootstrapLong    = strings.TrimSpace(msgBootstrapLongRaw)

	//go:embed msgs/bootstrap-example.txt
	msgBootstrapExampleRaw string
	MsgBootstrapExample    = strings.TrimRight(msgBootstrapExampleRaw, "\n")

	//go:embed msgs/sync-check-long.txt
	msgSyncCheckLongRaw string
	MsgSyncCheckLong    = strings.TrimSpace(msgSyncCheckLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
