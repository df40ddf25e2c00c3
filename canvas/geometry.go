package canvas

import "math"

// WingAngle is the offset of each arrowhead wing from the reversed direction.
const WingAngle = math.Pi / 6

// curveBend scales the control point offset to the segment length.
const curveBend = 0.3

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Direction returns the angle of the vector from p to q.
func Direction(p, q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// ArrowheadWings returns the free ends of the two wings drawn back from tip
// for a line travelling at angle theta.
func ArrowheadWings(tip Point, theta, length float64) (Point, Point) {
	left := Point{
		X: tip.X - length*math.Cos(theta-WingAngle),
		Y: tip.Y - length*math.Sin(theta-WingAngle),
	}
	right := Point{
		X: tip.X - length*math.Cos(theta+WingAngle),
		Y: tip.Y - length*math.Sin(theta+WingAngle),
	}
	return left, right
}

// CurveControl returns the control point of the quadratic route between
// from and to. The curve bows toward increasing y when to lies below from and
// toward decreasing y otherwise; vertical segments bow toward +x going down
// and -x going up.
func CurveControl(from, to Point) Point {
	mid := midpoint(from, to)
	d := to.Sub(from)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return mid
	}

	n := Point{-d.Y / l, d.X / l}
	down := d.Y > 0
	if d.X == 0 {
		if down != (n.X > 0) {
			n = n.Scale(-1)
		}
	} else if down != (n.Y > 0) {
		n = n.Scale(-1)
	}
	return mid.Add(n.Scale(curveBend * l))
}

// quadAt evaluates the quadratic Bézier from p0 through control c to p1.
func quadAt(p0, c, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

func midpoint(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// shrink pulls both ends toward each other by n. Segments too short to
// shrink are returned unchanged.
func shrink(from, to Point, n float64) (Point, Point) {
	if n <= 0 {
		return from, to
	}
	d := to.Sub(from)
	l := math.Hypot(d.X, d.Y)
	if l <= 2*n {
		return from, to
	}
	u := d.Scale(n / l)
	return from.Add(u), to.Sub(u)
}
