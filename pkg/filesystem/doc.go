// Package filesystem backs types.FS with afero: the OS filesystem in
// production and a MemMapFs in tests.
package filesystem
