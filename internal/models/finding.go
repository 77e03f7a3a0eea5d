package models

// Finding is the outcome of a most suitable link station search.
// The zero value means no station was within reach.
type Finding struct {
	Found   bool
	Station Point
	Power   float64
}

func NotFound() Finding {
	return Finding{}
}

func FoundStation(station Point, power float64) Finding {
	return Finding{Found: true, Station: station, Power: power}
}

// Tuple returns the finding as an (x, y, power) triple. A missing station is (0, 0, 0.0).
func (f Finding) Tuple() (int, int, float64) {
	if !f.Found {
		return 0, 0, 0.0
	}
	return f.Station.X, f.Station.Y, f.Power
}
