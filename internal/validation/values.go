package validation

import (
	"github.com/bbernstein/linkstation/backend-go/internal/models"
	"math"
)

// ValidateLinkStations requires at least one station.
func ValidateLinkStations(stations []models.LinkStation) error {
	if len(stations) < 1 {
		return NewInvalidInputError(MsgInvalidLinkStations)
	}
	return nil
}

func ValidateDistance(distance float64) error {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return NewInvalidInputError(MsgInvalidDistance)
	}
	return nil
}

func ValidateReach(reach float64) error {
	if math.IsNaN(reach) || math.IsInf(reach, 0) {
		return NewInvalidInputError(MsgInvalidReach)
	}
	return nil
}

// ValidateFinding checks that a finding is internally consistent: a found station
// carries a positive finite power and a missing one carries nothing at all.
func ValidateFinding(finding models.Finding) error {
	if finding.Found {
		if math.IsNaN(finding.Power) || math.IsInf(finding.Power, 0) || finding.Power <= 0 {
			return NewInvalidInputError(MsgInvalidFinding)
		}
		return nil
	}

	if finding.Power != 0 || finding.Station != (models.Point{}) {
		return NewInvalidInputError(MsgInvalidFinding)
	}
	return nil
}
