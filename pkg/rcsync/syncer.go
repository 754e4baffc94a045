package rcsync

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/internal/hashutil"
	"github.com/arthur-debert/zshboot/pkg/logging"
	"github.com/arthur-debert/zshboot/pkg/style"
	"github.com/rs/zerolog"
)

// Hint commands printed when the rc file is out of sync
const (
	DiffCommand   = "zshboot zshrc-diff"
	UpdateCommand = "zshboot update-zshrc"
)

const (
	driftNotice = "[warning]zshrc differs from the remote copy[/warning]\n" +
		"  local:  [code]{{local}}[/code]\n" +
		"  remote: [code]{{remote}}[/code]\n" +
		"Review with [bold]{{diff}}[/bold], apply with [bold]{{update}}[/bold].\n"
	forcedNotice = "[success]zshrc updated to[/success] [code]{{digest}}[/code]\n"
)

// State compares the local rc file to the remote copy
type State struct {
	LocalHash  string `json:"local_hash" yaml:"local_hash"`
	RemoteHash string `json:"remote_hash" yaml:"remote_hash"`
	InSync     bool   `json:"in_sync" yaml:"in_sync"`
}

func newState(local, remote []byte) State {
	l, r := hashutil.Checksum(local), hashutil.Checksum(remote)
	return State{LocalHash: l, RemoteHash: r, InSync: l == r}
}

// UpdateResult describes what Update did
type UpdateResult struct {
	State   State
	Written bool
}

// Syncer runs the check, update and diff flows
type Syncer struct {
	Fetcher Fetcher
	Store   Store
	Differ  *Differ
	// Force makes SyncCheck apply the update instead of only warning
	Force bool
	// Out receives the human-readable warnings of SyncCheck, styled by Markup
	Out    io.Writer
	Markup *style.MarkupParser
	Logger zerolog.Logger
}

// New creates a Syncer logging as the sync component
func New(fetcher Fetcher, store Store, differ *Differ) *Syncer {
	return &Syncer{
		Fetcher: fetcher,
		Store:   store,
		Differ:  differ,
		Out:     io.Discard,
		Markup:  style.NewMarkupParser(style.Plain()),
		Logger:  logging.GetLogger("sync"),
	}
}

// Check fetches the remote text and compares digests
func (s *Syncer) Check(ctx context.Context) (State, error) {
	_, _, state, err := s.load(ctx)
	return state, err
}

// SyncCheck is the passive check run at shell startup. Fetch failures are
// logged and swallowed; a mismatch is reported with both digests, and only
// applied when Force is set.
func (s *Syncer) SyncCheck(ctx context.Context) (State, error) {
	_, remote, state, err := s.load(ctx)
	if errors.HasErrorCode(err, errors.ErrFetch) {
		s.Logger.Warn().Err(err).Msg("Skipping rc sync check")
		return State{}, nil
	}
	if err != nil {
		return State{}, err
	}
	if state.InSync {
		s.Logger.Debug().Str("digest", state.LocalHash).Msg("rc file in sync")
		return state, nil
	}

	s.Logger.Warn().
		Str("local", state.LocalHash).
		Str("remote", state.RemoteHash).
		Msg("rc file differs from remote")

	if !s.Force {
		fmt.Fprint(s.Out, s.Markup.RenderTemplate(driftNotice, map[string]string{
			"local":  state.LocalHash,
			"remote": state.RemoteHash,
			"diff":   DiffCommand,
			"update": UpdateCommand,
		}))
		return state, nil
	}

	res, err := s.apply(remote, state)
	if err != nil {
		return state, err
	}
	fmt.Fprint(s.Out, s.Markup.RenderTemplate(forcedNotice, map[string]string{"digest": res.State.LocalHash}))
	return res.State, nil
}

// Update overwrites the rc file with the remote copy and records the new
// digest. When everything already matches nothing is written.
func (s *Syncer) Update(ctx context.Context) (UpdateResult, error) {
	_, remote, state, err := s.load(ctx)
	if err != nil {
		return UpdateResult{}, asFatal(err)
	}
	return s.apply(remote, state)
}

func (s *Syncer) apply(remote []byte, state State) (UpdateResult, error) {
	records, err := s.Store.Records()
	if err != nil {
		return UpdateResult{State: state}, err
	}
	if state.InSync && records.Local == state.RemoteHash && records.Remote == state.RemoteHash {
		s.Logger.Info().Str("digest", state.RemoteHash).Msg("Already in sync")
		return UpdateResult{State: state}, nil
	}

	if !state.InSync {
		if err := s.Store.WriteRC(remote); err != nil {
			return UpdateResult{State: state}, err
		}
	}
	if err := s.Store.SaveRecords(state.RemoteHash); err != nil {
		return UpdateResult{State: state}, err
	}
	s.Logger.Info().Str("digest", state.RemoteHash).Str("path", s.Store.Paths.RCFile()).Msg("rc file updated")

	synced := State{LocalHash: state.RemoteHash, RemoteHash: state.RemoteHash, InSync: true}
	return UpdateResult{State: synced, Written: true}, nil
}

// Diff writes a diff of the local rc file against the remote copy to w
func (s *Syncer) Diff(ctx context.Context, w io.Writer) (State, error) {
	local, remote, state, err := s.load(ctx)
	if err != nil {
		return State{}, asFatal(err)
	}
	if state.InSync {
		fmt.Fprintln(w, "zshrc is in sync with the remote copy")
		return state, nil
	}
	d := s.Differ
	if d == nil {
		d = &Differ{}
	}
	if err := d.Diff(ctx, w, Document{Name: s.Store.Paths.RCFile(), Content: local}, Document{Name: "remote", Content: remote}); err != nil {
		return state, err
	}
	return state, nil
}

func (s *Syncer) load(ctx context.Context) (local, remote []byte, state State, err error) {
	remote, err = s.Fetcher.Fetch(ctx)
	if err != nil {
		return nil, nil, State{}, err
	}
	local, err = s.Store.ReadRC()
	if err != nil {
		return nil, nil, State{}, err
	}
	return local, remote, newState(local, remote), nil
}

func asFatal(err error) error {
	if be, ok := err.(*errors.BootError); ok {
		return be.AsFatal()
	}
	return errors.Wrap(err, errors.ErrFetch, "sync failed").AsFatal()
}
