package models

import "fmt"

// Point is an integer position on the plane. Used for both devices and link stations.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// LinkStation is a candidate station that can serve any device closer than Reach.
type LinkStation struct {
	Point
	Reach int
}

func NewLinkStation(x, y, reach int) LinkStation {
	return LinkStation{Point: Point{X: x, Y: y}, Reach: reach}
}
