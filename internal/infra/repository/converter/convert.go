package converter

import (
	"fmt"
	"math"
)

// ToInt32 narrows quantities for int4 columns.
func ToInt32(v int) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("value out of int32 range: %d", v)
	}
	return int32(v), nil
}
