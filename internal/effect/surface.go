package effect

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Tint selects a palette entry of the drawing surface.
type Tint int

const (
	TintGlow Tint = iota // violet halo
	TintCore             // near-white
)

// Surface is the 2D layer the effect paints on. Opacities may exceed 1 while a
// particle is boosted; implementations saturate.
type Surface interface {
	Size() (width, height int)
	Resize(width, height int)
	Clear()
	// Glow paints a radial gradient fading from the glow tint at the center
	// to transparent at radius.
	Glow(x, y, radius, opacity float64)
	// Disc paints a solid core disc.
	Disc(x, y, radius, opacity float64)
	// Stroke paints a polyline. blur is the softness radius of the edge.
	Stroke(path []Point, width, blur float64, tint Tint, opacity float64)
}
