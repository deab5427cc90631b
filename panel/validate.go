package panel

import (
	"regexp"
	"strconv"

	"github.com/lixenwraith/coloradjuster/model"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// ParseValue accepts one or more ASCII digits whose value is at most MaxValue
// Leading zeros are allowed; signs, spaces and anything that overflows int are not
func ParseValue(s string) (int, bool) {
	if !digitsOnly.MatchString(s) {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v > model.MaxValue {
		return 0, false
	}
	return v, true
}
