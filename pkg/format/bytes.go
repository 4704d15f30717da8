package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Bytes renders a byte count with base-2 units ("512 B", "1.5 KiB", "3.0 GiB").
// A nil value counts as zero bytes; non-numeric values, NaN, infinities and
// magnitudes of 2^64 or more are rejected with ErrNotNumeric.
func Bytes(value any) (string, error) {
	if value == nil {
		return humanize.IBytes(0), nil
	}
	f, err := MustFloat(value)
	if err != nil {
		return "", err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.Exp2(64) {
		return "", fmt.Errorf("%w: %v is out of range for a byte count", ErrNotNumeric, value)
	}
	if f < 0 {
		return "-" + humanize.IBytes(uint64(math.Round(-f))), nil
	}
	return humanize.IBytes(uint64(math.Round(f))), nil
}
