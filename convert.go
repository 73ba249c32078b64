package argbind

import "strconv"

// Value is the closed set of scalar types a value binding can target.
type Value interface {
	string | bool | int | int64 | uint | uint64 | float64
}

// boolLiterals is the exact set of recognized boolean spellings.
// Anything else is a conversion error, including "1" and "yes".
var boolLiterals = map[string]bool{
	"true": true, "True": true, "TRUE": true,
	"false": false, "False": false, "FALSE": false,
}

// convert parses raw into T, failing with *ConversionError on malformed
// input. The zero value is returned alongside any error; callers must
// not assign it through on failure.
func convert[T Value](raw string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *string:
		*p = raw
	case *bool:
		b, ok := boolLiterals[raw]
		if !ok {
			return v, &ConversionError{Raw: raw, Type: "bool"}
		}
		*p = b
	case *int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return v, &ConversionError{Raw: raw, Type: "int"}
		}
		*p = n
	case *int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return v, &ConversionError{Raw: raw, Type: "int64"}
		}
		*p = n
	case *uint:
		n, err := strconv.ParseUint(raw, 10, strconv.IntSize)
		if err != nil {
			return v, &ConversionError{Raw: raw, Type: "uint"}
		}
		*p = uint(n)
	case *uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return v, &ConversionError{Raw: raw, Type: "uint64"}
		}
		*p = n
	case *float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return v, &ConversionError{Raw: raw, Type: "float64"}
		}
		*p = f
	}
	return v, nil
}
