package format

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// expCrossover is the magnitude at which fixed-precision float rendering
// switches to exponential notation. The exact threshold is not contractual;
// it only has to be stable.
const expCrossover = 1e21

// renderRadix renders an integer argument in the given base with no padding
// and no prefix.
func renderRadix(v any, base int, code byte) (string, error) {
	switch x := v.(type) {
	case int:
		return strconv.FormatInt(int64(x), base), nil
	case int8:
		return strconv.FormatInt(int64(x), base), nil
	case int16:
		return strconv.FormatInt(int64(x), base), nil
	case int32:
		return strconv.FormatInt(int64(x), base), nil
	case int64:
		return strconv.FormatInt(x, base), nil
	case uint:
		return strconv.FormatUint(uint64(x), base), nil
	case uint8:
		return strconv.FormatUint(uint64(x), base), nil
	case uint16:
		return strconv.FormatUint(uint64(x), base), nil
	case uint32:
		return strconv.FormatUint(uint64(x), base), nil
	case uint64:
		return strconv.FormatUint(x, base), nil
	case *big.Int:
		return x.Text(base), nil
	}
	return "", fmt.Errorf("%w: directive ~%c requires an integer, got %T", ErrTypeMismatch, code, v)
}

// renderFixed implements the ~F directive for one argument.
func renderFixed(v any, tok token) (string, error) {
	if s, ok := v.(string); ok {
		// Strings ignore the precision and are never truncated.
		return padLeft(s, tok.width, tok.hasWidth), nil
	}
	var text string
	var err error
	if tok.hasPrec {
		text, err = fixedPrecision(v, tok.prec)
	} else {
		text, err = naturalNumber(v)
	}
	if err != nil {
		return "", err
	}
	return padLeft(text, tok.width, tok.hasWidth), nil
}

// fixedPrecision renders a number with exactly d digits after the decimal
// point, coercing exact values to an inexact rendering first.
func fixedPrecision(v any, d int) (string, error) {
	switch x := v.(type) {
	case int:
		return new(big.Rat).SetInt64(int64(x)).FloatString(d), nil
	case int8:
		return new(big.Rat).SetInt64(int64(x)).FloatString(d), nil
	case int16:
		return new(big.Rat).SetInt64(int64(x)).FloatString(d), nil
	case int32:
		return new(big.Rat).SetInt64(int64(x)).FloatString(d), nil
	case int64:
		return new(big.Rat).SetInt64(x).FloatString(d), nil
	case uint:
		return new(big.Rat).SetUint64(uint64(x)).FloatString(d), nil
	case uint8:
		return new(big.Rat).SetUint64(uint64(x)).FloatString(d), nil
	case uint16:
		return new(big.Rat).SetUint64(uint64(x)).FloatString(d), nil
	case uint32:
		return new(big.Rat).SetUint64(uint64(x)).FloatString(d), nil
	case uint64:
		return new(big.Rat).SetUint64(x).FloatString(d), nil
	case *big.Int:
		return new(big.Rat).SetInt(x).FloatString(d), nil
	case *big.Rat:
		return x.FloatString(d), nil
	case float32:
		return fixedFloat(float64(x), d), nil
	case float64:
		return fixedFloat(x, d), nil
	case complex64:
		return fixedComplex(complex128(x), d), nil
	case complex128:
		return fixedComplex(x, d), nil
	}
	return "", fmt.Errorf("%w: directive ~F requires a number or string, got %T", ErrTypeMismatch, v)
}

// naturalNumber renders a number without coercion: exact values keep their
// exact textual form.
func naturalNumber(v any) (string, error) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		*big.Int, *big.Rat, float32, float64, complex64, complex128:
		return writeText(v), nil
	}
	return "", fmt.Errorf("%w: directive ~F requires a number or string, got %T", ErrTypeMismatch, v)
}

func fixedFloat(f float64, d int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if math.Abs(f) >= expCrossover {
		return strconv.FormatFloat(f, 'e', d, 64)
	}
	return strconv.FormatFloat(f, 'f', d, 64)
}

func fixedComplex(c complex128, d int) string {
	im := imag(c)
	sign := "+"
	if math.Signbit(im) {
		sign = "-"
		im = -im
	}
	return fixedFloat(real(c), d) + sign + fixedFloat(im, d) + "i"
}

// naturalFloat renders a float in its shortest form, keeping a decimal point
// so the result still reads as inexact.
func naturalFloat(f float64, bits int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func naturalComplex(c complex128) string {
	im := imag(c)
	sign := "+"
	if math.Signbit(im) {
		sign = "-"
		im = -im
	}
	return naturalFloat(real(c), 64) + sign + naturalFloat(im, 64) + "i"
}

// padLeft pads s with spaces to the given display width. Over-length text is
// returned unchanged, never truncated.
func padLeft(s string, width int, hasWidth bool) string {
	if !hasWidth {
		return s
	}
	if n := runewidth.StringWidth(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
