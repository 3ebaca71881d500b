// Package content embeds the default world, item and enemy definitions.
package content

import "embed"

// File names inside FS.
const (
	WorldFile   = "world.yaml"
	ItemsFile   = "items.yaml"
	EnemiesFile = "enemies.yaml"
)

// FS holds the default content files.
//
//go:embed *.yaml
var FS embed.FS
