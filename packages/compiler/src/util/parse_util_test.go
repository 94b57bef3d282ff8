package util_test

import (
	"testing"

	"github.com/VLVLKY/svelte/packages/compiler/src/util"
)

func span(content, url string, start, end int) *util.ParseSourceSpan {
	file := util.NewParseSourceFile(content, url)
	return util.NewParseSourceSpan(
		util.NewParseLocation(file, start, 0, start),
		util.NewParseLocation(file, end, 0, end),
		nil,
	)
}

func TestParseSourceSpanString(t *testing.T) {
	s := span("<input bind:value='count'>", "App.html", 7, 25)
	if got := s.String(); got != "bind:value='count'" {
		t.Errorf("String() = %q, want %q", got, "bind:value='count'")
	}
}

func TestParseLocationString(t *testing.T) {
	file := util.NewParseSourceFile("abc", "App.html")

	t.Run("with offset", func(t *testing.T) {
		loc := util.NewParseLocation(file, 1, 3, 9)
		if got := loc.String(); got != "App.html@3:9" {
			t.Errorf("String() = %q, want %q", got, "App.html@3:9")
		}
	})

	t.Run("unknown offset falls back to the file", func(t *testing.T) {
		loc := util.NewParseLocation(file, -1, 0, 0)
		if got := loc.String(); got != "App.html" {
			t.Errorf("String() = %q, want %q", got, "App.html")
		}
	})
}

func TestParseError(t *testing.T) {
	t.Run("includes the location", func(t *testing.T) {
		s := span("abcdef", "App.html", 2, 4)
		err := util.NewParseError(s, "invalid binding target")
		if got := err.Error(); got != "invalid binding target: App.html@0:2" {
			t.Errorf("Error() = %q", got)
		}
		if err.Level != util.ParseErrorLevelError {
			t.Errorf("Level = %d, want error", err.Level)
		}
	})

	t.Run("spanless errors carry the message alone", func(t *testing.T) {
		err := util.NewParseError(nil, "invalid binding target")
		if got := err.Error(); got != "invalid binding target" {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("warnings keep their level", func(t *testing.T) {
		err := util.NewParseWarning(nil, "unused binding")
		if err.Level != util.ParseErrorLevelWarning {
			t.Errorf("Level = %d, want warning", err.Level)
		}
	})
}
