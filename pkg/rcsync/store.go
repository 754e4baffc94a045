package rcsync

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/paths"
	"github.com/arthur-debert/zshboot/pkg/types"
)

// Records are the digests persisted by the last update
type Records struct {
	Local  string
	Remote string
}

// Store reads and writes the rc file and its digest records
type Store struct {
	FS    types.FS
	Paths paths.Paths
}

// ReadRC returns the local rc file. A missing file reads as empty.
func (s Store) ReadRC() ([]byte, error) {
	data, err := s.FS.ReadFile(s.Paths.RCFile())
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", s.Paths.RCFile())
	}
	return data, nil
}

// WriteRC replaces the rc file through a sibling temp file and rename
func (s Store) WriteRC(data []byte) error {
	target := s.Paths.RCFile()
	tmp := target + ".zshboot-tmp"
	if err := s.FS.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", tmp)
	}
	if err := s.FS.Rename(tmp, target); err != nil {
		_ = s.FS.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to replace %s", target)
	}
	return nil
}

// Records loads both digest records; missing files read as empty digests
func (s Store) Records() (Records, error) {
	local, err := s.readRecord(s.Paths.LocalHashFile())
	if err != nil {
		return Records{}, err
	}
	remote, err := s.readRecord(s.Paths.RemoteHashFile())
	if err != nil {
		return Records{}, err
	}
	return Records{Local: local, Remote: remote}, nil
}

// SaveRecords writes digest as both the local and the remote record
func (s Store) SaveRecords(digest string) error {
	for _, path := range []string{s.Paths.LocalHashFile(), s.Paths.RemoteHashFile()} {
		if err := s.FS.WriteFile(path, []byte(digest+"\n"), 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
		}
	}
	return nil
}

func (s Store) readRecord(path string) (string, error) {
	data, err := s.FS.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	return strings.TrimSpace(string(data)), nil
}
