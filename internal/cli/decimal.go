package cli

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// decimalPattern accepts an optional sign followed by digit groups that may
// be joined with underscores, e.g. "16", "+24", "1_024".
var decimalPattern = regexp.MustCompile(`^[-+]?\d+(?:_\d+)*$`)

var errNotDecimal = errors.New("not a decimal integer")

// decimalValue is a pflag.Value for base-10 integers only. pflag's own Int
// flag parses with base 0 and would accept "0x18" or "030".
type decimalValue int

func newDecimalValue(val int, p *int) *decimalValue {
	*p = val
	return (*decimalValue)(p)
}

func (d *decimalValue) Set(s string) error {
	v, err := parseDecimal(s)
	if err != nil {
		return err
	}
	*d = decimalValue(v)
	return nil
}

func (d *decimalValue) Type() string {
	return "int"
}

func (d *decimalValue) String() string {
	return strconv.Itoa(int(*d))
}

func parseDecimal(s string) (int, error) {
	if !decimalPattern.MatchString(s) {
		return 0, errNotDecimal
	}
	v, err := strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 10, strconv.IntSize)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	return int(v), nil
}
