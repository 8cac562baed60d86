// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// numread package reads numbers typed by a user.
//
// Parsing follows stream extraction rules: leading whitespace is skipped, the
// longest numeric prefix is converted and whatever follows it is left alone.
// So "42abc" parses as 42. Use ParseStrict when trailing garbage must fail.
package numread

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type, chosen at the call site.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrNotANumber is the only parse failure: malformed numeric input.
var ErrNotANumber = errors.New("not a number")

// whitespace skipped before a number, same set as C isspace
const whitespace = " \t\n\v\f\r"

// Parse string->T, ok is false if line has no valid numeric prefix for T.
//
// On failure the value is zero.
func Parse[T Number](line string) (T, bool) {
	return Try[T](line).Get()
}

// ParseStrict is Parse, but fails if anything other than whitespace follows the number.
func ParseStrict[T Number](line string) (T, bool) {
	o := Try[T](line)
	if o.OK && strings.TrimLeft(o.Rest, whitespace) != "" {
		var zero T
		return zero, false
	}
	return o.Get()
}

// Try parses line and returns the whole outcome, including the unconsumed rest.
func Try[T Number](line string) Outcome[T] {
	o := Outcome[T]{Raw: line}
	kind := kindOf[T]()
	s := strings.TrimLeft(line, whitespace)
	n, reason := scanNumber(s, kind.float)
	o.Rest = s[n:]
	if reason != "" {
		o.Rest = s
		o.reason = reason
		return o
	}
	o.Value, o.reason = convert[T](s[:n], kind)
	o.OK = o.reason == ""
	return o
}

// scanNumber returns the length of the numeric prefix of s, or a reason it has none.
func scanNumber(s string, float bool) (int, string) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := countDigits(s[i:])
	i += digits
	if !float {
		if digits == 0 {
			return 0, "no digits"
		}
		return i, ""
	}
	if i < len(s) && s[i] == '.' {
		frac := countDigits(s[i+1:])
		i += 1 + frac
		digits += frac
	}
	if digits == 0 {
		return 0, "no digits"
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := countDigits(s[j:])
		if exp == 0 {
			// the marker is consumed by extraction, so "1e" fails
			return 0, "exponent has no digits"
		}
		i = j + exp
	}
	return i, ""
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

type numKind struct {
	name     string
	bits     int
	float    bool
	unsigned bool
}

func kindOf[T Number]() numKind {
	var zero T
	t := reflect.TypeOf(zero)
	k := numKind{name: t.String(), bits: t.Bits()}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		k.float = true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		k.unsigned = true
	}
	return k
}

// convert a scanned literal, reason is empty on success
func convert[T Number](lit string, k numKind) (T, string) {
	var zero T
	switch {
	case k.float:
		f, err := strconv.ParseFloat(lit, k.bits)
		if err != nil {
			return zero, "out of range"
		}
		return T(f), ""
	case k.unsigned:
		if strings.HasPrefix(lit, "-") {
			return zero, "negative value for unsigned type"
		}
		u, err := strconv.ParseUint(strings.TrimPrefix(lit, "+"), 10, k.bits)
		if err != nil {
			return zero, "out of range"
		}
		return T(u), ""
	default:
		i, err := strconv.ParseInt(lit, 10, k.bits)
		if err != nil {
			return zero, "out of range"
		}
		return T(i), ""
	}
}

// Format returns the canonical text of v: base 10 for integers, shortest
// round-trip %g form for floats.
func Format[T Number](v T) string {
	k := kindOf[T]()
	switch {
	case k.float:
		return strconv.FormatFloat(float64(v), 'g', -1, k.bits)
	case k.unsigned:
		return strconv.FormatUint(uint64(v), 10)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}

// TypeName is the name of T as shown in errors, eg "int" or "float64".
func TypeName[T Number]() string {
	return kindOf[T]().name
}
