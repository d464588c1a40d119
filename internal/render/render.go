// Package render turns a computed route and the current waypoints into a
// declarative scene description: markers, colored segments and a viewport.
// It carries no vocabulary of any particular mapping library; a thin adapter
// in the browser draws whatever this package emits.
package render

import (
	"fmt"
	"math"

	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/pkg/errors"
)

const (
	// Segment styling matches the original trip view.
	segmentWeight  = 5
	segmentOpacity = 0.9

	// ViewportPadding is the pixel margin applied when fitting the route.
	ViewportPadding = 50

	startLabel = "INICIO"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// CSS renders the color as an rgb() string.
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Segment is one drawable piece of the route polyline.
type Segment struct {
	From    domain.LatLng `json:"from"`
	To      domain.LatLng `json:"to"`
	Color   string        `json:"color"`
	Weight  int           `json:"weight"`
	Opacity float64       `json:"opacity"`
}

// MarkerKind tells the adapter which icon to use.
type MarkerKind string

const (
	MarkerStart MarkerKind = "start"
	MarkerStop  MarkerKind = "stop"
)

// Marker describes one waypoint pin.
type Marker struct {
	Position domain.LatLng `json:"position"`
	Kind     MarkerKind    `json:"kind"`
	Label    string        `json:"label"`
}

// Viewport refits the map to bound the route with a fixed padding.
type Viewport struct {
	Bounds  domain.BoundingBox `json:"bounds"`
	Padding int                `json:"padding"`
}

// Scene is a full redraw description. Each render replaces the previous
// scene wholesale; nothing accumulates across computations.
type Scene struct {
	Markers  []Marker  `json:"markers"`
	Segments []Segment `json:"segments"`
	Viewport *Viewport `json:"viewport,omitempty"`
}

// ColorAt interpolates the progress hue: red fades out and blue fades in
// linearly with progress, green stays at zero. Exact channel formulas are
// kept for visual parity with the original gradient.
func ColorAt(progress float64) Color {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return Color{
		R: uint8(math.Round(255 * (1 - progress))),
		G: 0,
		B: uint8(math.Round(255 * progress)),
	}
}

// RouteSegments splits K route coordinates into exactly K-1 segments,
// colored by position along the route.
func RouteSegments(coords []domain.LatLng) ([]Segment, error) {
	if len(coords) < 2 {
		return nil, errors.ErrEmptyRoute
	}

	total := len(coords) - 1
	segments := make([]Segment, 0, total)
	for i := 0; i < total; i++ {
		progress := float64(i) / float64(total)
		segments = append(segments, Segment{
			From:    coords[i],
			To:      coords[i+1],
			Color:   ColorAt(progress).CSS(),
			Weight:  segmentWeight,
			Opacity: segmentOpacity,
		})
	}
	return segments, nil
}

// Markers builds the pin list for the current waypoints: a distinct start
// marker at position 0 and numbered stops ("P1", "P2", ...) after it.
func Markers(waypoints []domain.LatLng) []Marker {
	markers := make([]Marker, 0, len(waypoints))
	for i, p := range waypoints {
		if i == 0 {
			markers = append(markers, Marker{Position: p, Kind: MarkerStart, Label: startLabel})
			continue
		}
		markers = append(markers, Marker{Position: p, Kind: MarkerStop, Label: fmt.Sprintf("P%d", i)})
	}
	return markers
}

// FitViewport bounds all route coordinates with the fixed padding.
func FitViewport(coords []domain.LatLng) *Viewport {
	if len(coords) == 0 {
		return nil
	}
	return &Viewport{
		Bounds:  domain.BoundsOf(coords),
		Padding: ViewportPadding,
	}
}

// BuildScene composes the full redraw for a computed route.
func BuildScene(waypoints, routeCoords []domain.LatLng) (*Scene, error) {
	segments, err := RouteSegments(routeCoords)
	if err != nil {
		return nil, err
	}
	return &Scene{
		Markers:  Markers(waypoints),
		Segments: segments,
		Viewport: FitViewport(routeCoords),
	}, nil
}

// MarkerScene composes a markers-only redraw for trips without a computed
// route (clicks, clears).
func MarkerScene(waypoints []domain.LatLng) *Scene {
	return &Scene{
		Markers:  Markers(waypoints),
		Segments: []Segment{},
	}
}
