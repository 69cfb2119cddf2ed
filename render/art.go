package render

import (
	_ "embed"
	"strings"
)

//go:embed art.txt
var artText string

// ArtWidth is the column width the art is padded to.
const ArtWidth = 45

// Art returns the lines of the logo.
func Art() []string {
	return strings.Split(strings.TrimSuffix(artText, "\n"), "\n")
}
