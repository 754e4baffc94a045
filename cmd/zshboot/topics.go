package zshboot

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var guideFiles embed.FS

func guideFS() fs.FS {
	sub, err := fs.Sub(guideFiles, "topics")
	if err != nil {
		return guideFiles
	}
	return sub
}
