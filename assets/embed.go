package assets

import "embed"

//go:embed data/content.json
var FS embed.FS

// ContentFile is the path of the bundled game content inside FS.
const ContentFile = "data/content.json"

// Content returns the bundled game content.
func Content() ([]byte, error) {
	return FS.ReadFile(ContentFile)
}
