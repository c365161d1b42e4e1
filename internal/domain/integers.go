package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseIntegers parses one base-10 integer per line. Surrounding whitespace is
// ignored. Blank lines are errors unless skipBlank is set.
func ParseIntegers(lines []string, skipBlank bool) ([]int64, error) {
	values := make([]int64, 0, len(lines))
	for i, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" && skipBlank {
			continue
		}

		value, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrParse, i+1, text)
		}
		values = append(values, value)
	}
	return values, nil
}

// SumIntegers adds values, failing instead of wrapping around.
func SumIntegers(values []int64) (int64, error) {
	var total int64
	for _, v := range values {
		if (v > 0 && total > math.MaxInt64-v) || (v < 0 && total < math.MinInt64-v) {
			return 0, ErrOverflow
		}
		total += v
	}
	return total, nil
}
