package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/zshboot/pkg/types"
	"github.com/spf13/afero"
)

// Afero adapts an afero.Fs to types.FS
type Afero struct {
	base afero.Fs
}

// Wrap returns fsys as a types.FS
func Wrap(fsys afero.Fs) *Afero {
	return &Afero{base: fsys}
}

// NewOS is the real filesystem
func NewOS() types.FS {
	return Wrap(afero.NewOsFs())
}

// NewMemory returns an empty in-memory tree
func NewMemory() types.FS {
	return Wrap(afero.NewMemMapFs())
}

// Base exposes the wrapped afero.Fs, e.g. for afero.TempDir
func (a *Afero) Base() afero.Fs { return a.base }

func (a *Afero) Stat(name string) (fs.FileInfo, error) {
	return a.base.Stat(name)
}

// ReadFile refuses directories on every backend; MemMapFs would otherwise
// return an empty slice.
func (a *Afero) ReadFile(name string) ([]byte, error) {
	if info, err := a.base.Stat(name); err != nil {
		return nil, err
	} else if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.base, name)
}

func (a *Afero) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.base, name, data, perm)
}

func (a *Afero) MkdirAll(path string, perm fs.FileMode) error {
	return a.base.MkdirAll(path, perm)
}

func (a *Afero) Remove(name string) error {
	return a.base.Remove(name)
}

func (a *Afero) Rename(oldpath, newpath string) error {
	return a.base.Rename(oldpath, newpath)
}

var _ types.FS = (*Afero)(nil)
