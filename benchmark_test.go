package slotdots_test

import (
	"testing"

	"seehuhn.de/go/slotdots"
	"seehuhn.de/go/slotdots/presets"
)

// BenchmarkNewLayout measures the full pipeline from configuration to
// SVG fragments.
func BenchmarkNewLayout(b *testing.B) {
	for _, name := range presets.Names() {
		cfg := presets.All[name]
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := slotdots.NewLayout(cfg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
