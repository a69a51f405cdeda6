package scene

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned for text that is not a finite number.
var ErrInvalidNumber = errors.New("invalid number")

// ParseLength parses a measurement typed by the user. A trailing "m" unit is
// accepted. The value is not range-checked.
func ParseLength(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimSpace(strings.TrimSuffix(s, "m"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", text, ErrInvalidNumber)
	}
	return v, nil
}
