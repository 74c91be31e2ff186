package handlers

import (
	"fmt"
	"strconv"
	"strings"
)

// parseLimitParam reads a positive limit, applying def when absent and
// capping at limitCap.
func parseLimitParam(limitStr string, def, limitCap int64) (int64, error) {
	limitStr = strings.TrimSpace(limitStr)
	if limitStr == "" {
		return def, nil
	}

	l, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || l < 1 {
		return 0, fmt.Errorf("invalid limit: %s", limitStr)
	}
	if limitCap > 0 && l > limitCap {
		l = limitCap
	}
	return l, nil
}
