// Package jsonnum decodes loosely typed numeric JSON fields. Engine payloads
// and community data tables mix numbers, numeric strings and nulls; all of
// them decode here and anything absent or unparsable becomes zero.
package jsonnum

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Float is a float64 that tolerates strings and null
type Float float64

// UnmarshalJSON implements json.Unmarshaler
func (f *Float) UnmarshalJSON(data []byte) error {
	*f = Float(parse(data))
	return nil
}

// Int is an int that tolerates strings, floats and null
type Int int

// UnmarshalJSON implements json.Unmarshaler
func (i *Int) UnmarshalJSON(data []byte) error {
	*i = Int(math.Trunc(parse(data)))
	return nil
}

func parse(data []byte) float64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0
		}
		data = []byte(strings.TrimSpace(s))
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
