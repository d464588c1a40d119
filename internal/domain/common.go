package domain

// LatLng is a geographic point in double-precision degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Pair returns the point as [lat, lng] for the routing wire format.
func (p LatLng) Pair() []float64 {
	return []float64{p.Lat, p.Lng}
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// Extend grows the box to include the given point.
func (b *BoundingBox) Extend(p LatLng) {
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
	if p.Lng < b.MinLng {
		b.MinLng = p.Lng
	}
	if p.Lng > b.MaxLng {
		b.MaxLng = p.Lng
	}
}

// BoundsOf returns the bounding box of a non-empty coordinate list.
func BoundsOf(points []LatLng) BoundingBox {
	box := BoundingBox{
		MinLat: points[0].Lat,
		MaxLat: points[0].Lat,
		MinLng: points[0].Lng,
		MaxLng: points[0].Lng,
	}
	for _, p := range points[1:] {
		box.Extend(p)
	}
	return box
}
