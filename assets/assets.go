// Package assets embeds the data files shipped with the game.
package assets

import (
	"embed"
	"fmt"

	"github.com/spacehole-rogue/alien_invasion/internal/settings"
)

// Settings holds the JSON game configurations.
//
//go:embed settings/*.json
var Settings embed.FS

// DefaultSettings is the path of the stock configuration inside Settings.
const DefaultSettings = "settings/default.json"

// Preset loads the embedded configuration settings/<name>.json.
func Preset(name string) (*settings.Base, error) {
	data, err := Settings.ReadFile("settings/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	return settings.Load(data)
}

// LoadSettings reads path from disk when it is set and falls back to the
// embedded preset otherwise.
func LoadSettings(preset, path string) (*settings.Base, error) {
	if path != "" {
		return settings.LoadFile(path)
	}
	return Preset(preset)
}
