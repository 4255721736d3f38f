package fsworkspace

import "embed"

//go:embed templates/nodesort.yaml templates/nodes.txt
var templatesFS embed.FS
