package paint

// Kind tags the variant stored in an Object.
type Kind uint8

const (
	KindPoint Kind = iota
	KindLine
	KindCircle
	KindRect
	KindTriangle
)

// Object is one drawable primitive in normalized object space. Which fields
// are meaningful depends on Kind:
//
//	Point:    X1,Y1
//	Line:     X1,Y1 - X2,Y2
//	Circle:   center X1,Y1, radius R
//	Rect:     upper-left X1,Y1, lower-right X2,Y2
//	Triangle: X1,Y1 - X2,Y2 - X3,Y3
type Object struct {
	Kind  Kind
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
	X3    float64
	Y3    float64
	R     float64
	Fill  bool
	Color Color
}

// MakePoint builds a point primitive.
func MakePoint(x, y float64, col Color) Object {
	return Object{Kind: KindPoint, X1: x, Y1: y, Color: col}
}

// MakeLine builds a line segment primitive.
func MakeLine(x1, y1, x2, y2 float64, col Color) Object {
	return Object{Kind: KindLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: col}
}

// MakeCircle builds a circle primitive centered at (cx, cy).
func MakeCircle(cx, cy, r float64, fill bool, col Color) Object {
	return Object{Kind: KindCircle, X1: cx, Y1: cy, R: r, Fill: fill, Color: col}
}

// MakeRect builds a rectangle primitive from its upper-left and lower-right
// corners.
func MakeRect(ulx, uly, lrx, lry float64, fill bool, col Color) Object {
	return Object{Kind: KindRect, X1: ulx, Y1: uly, X2: lrx, Y2: lry, Fill: fill, Color: col}
}

// MakeTriangle builds a triangle primitive.
func MakeTriangle(x1, y1, x2, y2, x3, y3 float64, fill bool, col Color) Object {
	return Object{
		Kind: KindTriangle,
		X1:   x1, Y1: y1,
		X2: x2, Y2: y2,
		X3: x3, Y3: y3,
		Fill: fill, Color: col,
	}
}
