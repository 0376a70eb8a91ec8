package presets

import (
	"maps"
	"slices"

	"seehuhn.de/go/slotdots"
)

// All contains the known slot configurations, keyed by preset name.
// Names use lowercase a-z and _ only; they double as file name stems.
var All = map[string]slotdots.Config{
	"light_bulb":   slotdots.DefaultConfig(),
	"large_corner": largeCorner(),
	"wide_border":  wideBorder(),
	"square":       square(),
	"tall":         tall(),
}

// Names returns the preset names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(All))
}

// Get returns the named preset.
func Get(name string) (slotdots.Config, bool) {
	cfg, ok := All[name]
	return cfg, ok
}
