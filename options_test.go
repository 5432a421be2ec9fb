package actson_test

import (
	"testing"

	"github.com/mcvoid/actson"
)

func TestOptionsBuilder(t *testing.T) {
	o := actson.NewOptionsBuilder().WithMaxDepth(16).WithStreaming(true).Build()
	if o.MaxDepth() != 16 {
		t.Errorf("MaxDepth() = %v, want 16", o.MaxDepth())
	}
	if !o.Streaming() {
		t.Error("Streaming() = false, want true")
	}
}

func TestDefaultOptions(t *testing.T) {
	o := actson.DefaultOptions()
	if o.MaxDepth() != actson.DefaultMaxDepth {
		t.Errorf("MaxDepth() = %v, want %v", o.MaxDepth(), actson.DefaultMaxDepth)
	}
	if o.Streaming() {
		t.Error("Streaming() = true, want false by default")
	}
}

func TestWithOptions(t *testing.T) {
	built := actson.NewOptionsBuilder().WithMaxDepth(8).Build()
	applied := actson.DefaultOptions()
	actson.WithOptions(built)(&applied)
	if applied.MaxDepth() != 8 {
		t.Errorf("MaxDepth() = %v, want 8", applied.MaxDepth())
	}
}
