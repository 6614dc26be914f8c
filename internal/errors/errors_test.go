package errors

import (
	stderrors "errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: ""},
		{name: "plain error", err: stderrors.New("person not found"), want: "Error: person not found"},
		{name: "wrapped detail", err: stderrors.New("open storage: permission denied"), want: "Error: open storage: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("no gift with id %q", "abc123")
	want := `Error: no gift with id "abc123"`
	if got != want {
		t.Errorf("Formatf = %q, want %q", got, want)
	}
}
