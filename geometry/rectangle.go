package geometry

// RectangleVertices returns the four corners of an axis-aligned rectangle
// in local (u, v) coordinates, in fixed counter-clockwise order:
// bottom-left, bottom-right, top-right, top-left.
func RectangleVertices(centerU, centerV, halfWidth, halfHeight float64) (verts [][2]float64) {
	verts = [][2]float64{
		{centerU - halfWidth, centerV - halfHeight},
		{centerU + halfWidth, centerV - halfHeight},
		{centerU + halfWidth, centerV + halfHeight},
		{centerU - halfWidth, centerV + halfHeight},
	}
	return
}
