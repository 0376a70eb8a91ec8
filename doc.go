// Package slotdots places decorative dots along the rounded border of a
// slot graphic.
//
// The slot is a rectangle with rounded corners, given in design units
// (rem). Its border is drawn in an SVG image whose viewBox defines the
// render units. [ResolveCorners] maps the corner geometry into render
// space, [Sample] distributes dots along each corner arc of the border
// centerline, and an [Emitter] turns every dot into a small filled
// circle in SVG path syntax. [NewLayout] runs all three steps for a
// [Config].
//
// The dots are spliced into an existing asset by package
// seehuhn.de/go/slotdots/svgpatch.
package slotdots

//go:generate go run ./presets/genpdf
