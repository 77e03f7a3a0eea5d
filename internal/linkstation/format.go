package linkstation

import (
	"fmt"
	"github.com/bbernstein/linkstation/backend-go/internal/models"
	"github.com/bbernstein/linkstation/backend-go/internal/validation"
	"strconv"
	"strings"
)

// FormatFinding renders a finding as the sentence returned to callers.
func FormatFinding(device models.Point, finding models.Finding) (string, error) {
	if err := validation.ValidateFinding(finding); err != nil {
		return "", err
	}

	if finding.Power > 0.0 {
		return fmt.Sprintf("Best link station for point %s is %s with power %s",
			device, finding.Station, FormatPower(finding.Power)), nil
	}
	return fmt.Sprintf("No link station within reach for point %s", device), nil
}

// FormatPower prints the shortest decimal that round-trips to p, always with a
// fractional part (100 prints as 100.0). Exponent form is used below 1e-4 and from 1e16 up.
func FormatPower(p float64) string {
	if p == 0 {
		return "0.0"
	}

	exponent := decimalExponent(p)
	if exponent < -4 || exponent >= 16 {
		return strconv.FormatFloat(p, 'e', -1, 64)
	}

	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func decimalExponent(p float64) int {
	_, exp, _ := strings.Cut(strconv.FormatFloat(p, 'e', -1, 64), "e")
	n, err := strconv.Atoi(exp)
	if err != nil {
		return 0
	}
	return n
}
