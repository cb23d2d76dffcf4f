package errors

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(errors.New("boom")); got != "Error: boom" {
		t.Errorf("Format() = %q, want %q", got, "Error: boom")
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("bad value %q", "x")
	want := `Error: bad value "x"`
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}
