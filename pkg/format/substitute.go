package format

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrArgumentCount is returned when a pattern and its arguments disagree on
// the number of substitutions.
var ErrArgumentCount = errors.New("format: argument count does not match pattern")

// Substitute performs positional substitution of value into pattern.
//
// A nil value leaves the pattern untouched. Slices and arrays are spread into
// positional arguments in order; any other value is a single argument. Verbs
// follow fmt (including explicit %[n] indexes) and arguments are coerced the
// way a template author expects, so "%s" accepts numbers and "%d" accepts
// numeric strings.
func Substitute(pattern string, value any) (string, error) {
	if value == nil {
		return pattern, nil
	}
	return SubstituteArgs(pattern, Arguments(value)...)
}

// SubstituteArgs formats pattern with an explicit argument list.
func SubstituteArgs(pattern string, args ...any) (string, error) {
	directives, expected := parseDirectives(pattern)
	if expected != len(args) {
		return "", fmt.Errorf("%w: pattern %q expects %d argument(s), got %d", ErrArgumentCount, pattern, expected, len(args))
	}
	if expected == 0 {
		return strings.ReplaceAll(pattern, "%%", "%"), nil
	}

	coerced := make([]any, len(args))
	copy(coerced, args)
	for _, d := range directives {
		coerced[d.arg] = coerceArgument(d.verb, coerced[d.arg])
	}
	return fmt.Sprintf(pattern, coerced...), nil
}

// Arguments spreads value into a positional argument list.
func Arguments(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out
	case []byte:
		return []any{string(v)}
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{value}
}

type directive struct {
	arg  int
	verb rune
}

// parseDirectives walks pattern the way fmt does and returns every verb with
// the argument index it consumes, plus the number of arguments required.
func parseDirectives(pattern string) ([]directive, int) {
	var (
		out      []directive
		next     int
		required int
	)
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		i++
		if i >= len(pattern) {
			break
		}
		if pattern[i] == '%' {
			continue
		}
		for i < len(pattern) && strings.IndexByte("+-# 0", pattern[i]) >= 0 {
			i++
		}
		i, next = explicitIndex(pattern, i, next)
		for i < len(pattern) && isDigit(pattern[i]) {
			i++
		}
		if i < len(pattern) && pattern[i] == '.' {
			i++
			for i < len(pattern) && isDigit(pattern[i]) {
				i++
			}
		}
		i, next = explicitIndex(pattern, i, next)
		if i >= len(pattern) {
			break
		}

		verb, size := utf8.DecodeRuneInString(pattern[i:])
		out = append(out, directive{arg: next, verb: verb})
		next++
		if next > required {
			required = next
		}
		i += size - 1
	}
	return out, required
}

func explicitIndex(pattern string, i, next int) (int, int) {
	if i >= len(pattern) || pattern[i] != '[' {
		return i, next
	}
	end := strings.IndexByte(pattern[i:], ']')
	if end < 0 {
		return i, next
	}
	n, err := strconv.Atoi(pattern[i+1 : i+end])
	if err != nil || n < 1 {
		return i + end + 1, next
	}
	return i + end + 1, n - 1
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func coerceArgument(verb rune, arg any) any {
	switch verb {
	case 's', 'q':
		switch v := arg.(type) {
		case string, fmt.Stringer, error:
			return v
		case nil:
			return ""
		default:
			return fmt.Sprint(v)
		}
	case 'd', 'b', 'o', 'x', 'X', 'c':
		if s, ok := arg.(string); ok {
			if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
				return n
			}
		}
		if f, ok := arg.(float64); ok && f == float64(int64(f)) {
			return int64(f)
		}
	case 'e', 'E', 'f', 'F', 'g', 'G':
		if f, ok := ToFloat(arg); ok {
			return f
		}
	}
	return arg
}
