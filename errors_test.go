package actson_test

import (
	"errors"
	"testing"

	"github.com/mcvoid/actson"
	"github.com/mcvoid/actson/feeder"
)

func TestParseErrorUnwrapsAndReportsPosition(t *testing.T) {
	p := actson.NewParser(feeder.NewSliceFeeder([]byte(`{"a": 1 2}`)))
	var err error
	for {
		_, err = p.NextEvent()
		if err != nil {
			break
		}
	}

	if !errors.Is(err, actson.ErrSyntaxError) {
		t.Fatalf("expected ErrSyntaxError, got %v", err)
	}

	var pe *actson.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *actson.ParseError, got %T", err)
	}
	if pe.Pos != p.ParsedBytes() {
		t.Errorf("ParseError.Pos = %v, want %v", pe.Pos, p.ParsedBytes())
	}
}

func TestIllegalInputReportsOffendingByte(t *testing.T) {
	p := actson.NewParser(feeder.NewSliceFeeder([]byte("\"\x01\"")))
	var err error
	for {
		_, err = p.NextEvent()
		if err != nil {
			break
		}
	}
	if !errors.Is(err, actson.ErrIllegalInput) {
		t.Fatalf("expected ErrIllegalInput, got %v", err)
	}
	var pe *actson.ParseError
	if errors.As(err, &pe) {
		if !pe.HasByte || pe.Byte != 0x01 {
			t.Errorf("expected offending byte 0x01, got %v (hasByte=%v)", pe.Byte, pe.HasByte)
		}
	}
}
