package format

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   any
		want    string
	}{
		{name: "nil value keeps pattern", pattern: "Page %s of %s", value: nil, want: "Page %s of %s"},
		{name: "slice spreads positionally", pattern: "Page %s of %s", value: []any{2, 5}, want: "Page 2 of 5"},
		{name: "typed slice", pattern: "%s/%s", value: []string{"a", "b"}, want: "a/b"},
		{name: "int slice", pattern: "%d-%d", value: []int{3, 4}, want: "3-4"},
		{name: "scalar", pattern: "Hello %s", value: "Ada", want: "Hello Ada"},
		{name: "numeric string for integer verb", pattern: "#%d", value: "42", want: "#42"},
		{name: "explicit index", pattern: "%[2]s before %[1]s", value: []any{"b", "a"}, want: "a before b"},
		{name: "escaped percent", pattern: "100%% of %s", value: "it", want: "100% of it"},
		{name: "no verbs literal percent", pattern: "50%%", value: []any{}, want: "50%"},
		{name: "float verb with int", pattern: "%.1f", value: 3, want: "3.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Substitute(tt.pattern, tt.value)
			if err != nil {
				t.Fatalf("substitute: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSubstituteArgumentMismatch(t *testing.T) {
	for _, value := range []any{[]any{1}, []any{1, 2, 3}} {
		_, err := Substitute("Page %s of %s", value)
		if !errors.Is(err, ErrArgumentCount) {
			t.Fatalf("expected ErrArgumentCount for %v, got %v", value, err)
		}
	}
	if _, err := Substitute("no verbs", "extra"); !errors.Is(err, ErrArgumentCount) {
		t.Fatalf("expected ErrArgumentCount for extra scalar, got %v", err)
	}
}

func TestContentEscapesPlainText(t *testing.T) {
	if got := Content("<b>x</b>", ContentTypePlain); got != "&lt;b&gt;x&lt;/b&gt;" {
		t.Fatalf("unexpected plain content %q", got)
	}
	if got := Content("<b>x</b>", ContentTypeMarkup); got != "<b>x</b>" {
		t.Fatalf("unexpected markup content %q", got)
	}
	if got := Content("<i>", ""); got != "&lt;i&gt;" {
		t.Fatalf("zero content type must escape, got %q", got)
	}
}

func TestParseContentType(t *testing.T) {
	for raw, want := range map[string]ContentType{
		"text/xml":   ContentTypeMarkup,
		"markup":     ContentTypeMarkup,
		"HTML":       ContentTypeMarkup,
		"text/plain": ContentTypePlain,
		"":           ContentTypePlain,
	} {
		if got := ParseContentType(raw); got != want {
			t.Fatalf("ParseContentType(%q): expected %q, got %q", raw, want, got)
		}
	}
}

func TestSanitizeMarkup(t *testing.T) {
	got := SanitizeMarkup(`<p class="lead" onclick="x()">Hi<script>alert(1)</script></p>`)
	if strings.Contains(got, "script") || strings.Contains(got, "onclick") {
		t.Fatalf("expected unsafe markup stripped, got %q", got)
	}
	if !strings.Contains(got, `<p class="lead">Hi</p>`) {
		t.Fatalf("expected safe markup kept, got %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		locale    string
		value     float64
		precision int
		want      string
	}{
		{locale: "en", value: 1234.5, precision: 2, want: "1,234.50"},
		{locale: "en_US", value: 25.6, precision: 1, want: "25.6"},
		{locale: "", value: 3, precision: 0, want: "3"},
		{locale: "de", value: 1234.5, precision: 2, want: "1.234,50"},
		{locale: "en", value: 0.125, precision: AutoPrecision, want: "0.125"},
		{locale: "not a locale!", value: 10, precision: 1, want: "10.0"},
	}
	for _, tt := range tests {
		got := DefaultNumberFormatter.FormatNumber(tt.locale, tt.value, tt.precision)
		if got != tt.want {
			t.Fatalf("FormatNumber(%q, %v, %d): expected %q, got %q", tt.locale, tt.value, tt.precision, tt.want, got)
		}
	}
}

func TestToFloat(t *testing.T) {
	for _, value := range []any{1, int64(2), uint8(3), 4.5, float32(1.5), "6.25", " 7 ", "-1.5e3", "+.5", "1E-2", json.Number("12")} {
		if _, ok := ToFloat(value); !ok {
			t.Fatalf("expected %v (%T) to be numeric", value, value)
		}
	}
	for _, value := range []any{
		nil, "", "abc", true, []int{1},
		"NaN", "Nan", "nan", "Inf", "inf", "+Inf", "-Infinity", "Infinity",
		"0x1A", "0x1p-2", "1_000", ".", "-", "1e", "1e400", "1-2", json.Number("NaN"),
	} {
		if IsNumeric(value) {
			t.Fatalf("expected %v (%T) to be non-numeric", value, value)
		}
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{value: nil, want: "0 B"},
		{value: 512, want: "512 B"},
		{value: 1024, want: "1.0 KiB"},
		{value: int64(1536), want: "1.5 KiB"},
		{value: "1048576", want: "1.0 MiB"},
		{value: -2048, want: "-2.0 KiB"},
	}
	for _, tt := range tests {
		got, err := Bytes(tt.value)
		if err != nil {
			t.Fatalf("bytes(%v): %v", tt.value, err)
		}
		if got != tt.want {
			t.Fatalf("bytes(%v): expected %q, got %q", tt.value, tt.want, got)
		}
	}

	for _, value := range []any{"lots", "Nan", "Infinity", math.NaN(), math.Inf(1), math.Inf(-1), 1e30, -1e30, math.Exp2(64)} {
		if got, err := Bytes(value); !errors.Is(err, ErrNotNumeric) {
			t.Fatalf("bytes(%v): expected ErrNotNumeric, got %q, %v", value, got, err)
		}
	}
	if _, err := Bytes(math.Exp2(63)); err != nil {
		t.Fatalf("bytes(2^63): %v", err)
	}
}
