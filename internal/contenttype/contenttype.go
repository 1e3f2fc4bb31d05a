// Package contenttype maps asset file names to the Content-Type they are
// served with.
package contenttype

import (
	"path/filepath"
	"strings"
)

const Default = "application/octet-stream"

var byExt = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".json": "application/json",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

func Resolve(filename string) string {
	if ct, ok := byExt[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return Default
}
