package greet

import (
	"reflect"
	"testing"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name      string
		uppercase bool
		want      string
	}{
		{"World", false, "Hello, World!"},
		{"gopher", false, "Hello, gopher!"},
		{"gopher", true, "HELLO, GOPHER!"},
	}

	for _, tt := range tests {
		if got := Message(tt.name, tt.uppercase); got != tt.want {
			t.Errorf("Message(%q, %v) = %q, want %q", tt.name, tt.uppercase, got, tt.want)
		}
	}
}

func TestLinesSingle(t *testing.T) {
	got := Lines("World", 1, false)
	want := []string{"Hello, World!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %v, want %v", got, want)
	}
}

func TestLinesNumbered(t *testing.T) {
	got := Lines("World", 3, false)
	want := []string{
		"Hello, World! (1)",
		"Hello, World! (2)",
		"Hello, World! (3)",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %v, want %v", got, want)
	}
}

func TestLinesZero(t *testing.T) {
	if got := Lines("World", 0, false); len(got) != 0 {
		t.Errorf("Lines with count 0 = %v, want empty", got)
	}
}
