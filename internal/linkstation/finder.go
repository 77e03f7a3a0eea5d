package linkstation

import (
	"context"
	"github.com/bbernstein/linkstation/backend-go/internal/models"
	"github.com/bbernstein/linkstation/backend-go/internal/validation"
	"github.com/rs/zerolog/log"
	"math"
)

// Finder selects the link station offering a device the most power.
type Finder interface {
	FindMostSuitable(ctx context.Context, device models.Point, stations []models.LinkStation) (models.Finding, error)
}

type FinderFactory interface {
	NewFinder() (Finder, error)
}

type DefaultFinderFactory struct{}

func (f *DefaultFinderFactory) NewFinder() (Finder, error) {
	return NewDefaultFinder(), nil
}

// DefaultFinder scores stations with the quadratic reach falloff.
type DefaultFinder struct{}

var _ Finder = (*DefaultFinder)(nil)

func NewDefaultFinder() *DefaultFinder {
	return &DefaultFinder{}
}

func (f *DefaultFinder) FindMostSuitable(ctx context.Context, device models.Point, stations []models.LinkStation) (models.Finding, error) {
	finding, err := MostSuitable(device, stations)
	if err != nil {
		return models.NotFound(), err
	}

	x, y, power := finding.Tuple()
	log.Ctx(ctx).Debug().
		Str("device", device.String()).
		Int("station_count", len(stations)).
		Bool("found", finding.Found).
		Int("station_x", x).
		Int("station_y", y).
		Float64("power", power).
		Msg("Most suitable link station computed")

	return finding, nil
}

// Distance returns the straight-line distance between a device and a station position.
func Distance(device, station models.Point) float64 {
	// Convert before subtracting: opposite extreme coordinates overflow int.
	dx := math.Abs(float64(device.X) - float64(station.X))
	dy := math.Abs(float64(device.Y) - float64(station.Y))
	return math.Sqrt(dx*dx + dy*dy)
}

// Power returns the power a station with the given reach delivers at distance.
// A station reaches a device only when reach is strictly greater than distance.
func Power(distance, reach float64) (float64, error) {
	if err := validation.ValidateDistance(distance); err != nil {
		return 0, err
	}
	if err := validation.ValidateReach(reach); err != nil {
		return 0, err
	}

	power := 0.0
	if reach > distance {
		power = (reach - distance) * (reach - distance)
	}
	return power, nil
}

// MostSuitable walks the stations in order and keeps the first one with the
// highest strictly positive power.
func MostSuitable(device models.Point, stations []models.LinkStation) (models.Finding, error) {
	if err := validation.ValidateLinkStations(stations); err != nil {
		return models.NotFound(), err
	}

	best := models.NotFound()
	for _, station := range stations {
		distance := Distance(device, station.Point)
		power, err := Power(distance, float64(station.Reach))
		if err != nil {
			return models.NotFound(), err
		}

		if power > best.Power {
			best = models.FoundStation(station.Point, power)
		}
	}

	return best, nil
}
