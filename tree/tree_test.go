package tree

import (
	"fmt"
	"testing"

	"github.com/mcvoid/actson"
	"github.com/mcvoid/actson/feeder"
)

func parse(t *testing.T, input string) *Value {
	t.Helper()
	p := actson.NewParser(feeder.NewSliceFeeder([]byte(input)))
	v, err := Build(p, nil)
	if err != nil {
		t.Fatalf("Build(%q): %v", input, err)
	}
	return v
}

func TestTypeStrings(t *testing.T) {
	for _, test := range []struct {
		input    Type
		expected string
	}{
		{Null, typeStrings[Null]},
		{Array, typeStrings[Array]},
		{Object, typeStrings[Object]},
		{Boolean, typeStrings[Boolean]},
		{Integer, typeStrings[Integer]},
		{Number, typeStrings[Number]},
		{String, typeStrings[String]},
		{numTypes, "<unknown>"},
		{1000, "<unknown>"},
		{-1, "<unknown>"},
	} {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			if actual := test.input.String(); actual != test.expected {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestAsNull(t *testing.T) {
	v := parse(t, `null`)
	if _, err := v.AsNull(); err != nil {
		t.Errorf("expected no error got %v", err)
	}
	v = parse(t, `true`)
	if _, err := v.AsNull(); err == nil {
		t.Error("expected error got none")
	}
}

func TestAsNumber(t *testing.T) {
	v := parse(t, `5.0`)
	num, err := v.AsNumber()
	if err != nil || num != 5 {
		t.Errorf("expected 5 nil got %v %v", num, err)
	}

	v = parse(t, `5`)
	num, err = v.AsNumber()
	if err != nil || num != 5 {
		t.Errorf("expected 5 nil got %v %v", num, err)
	}

	v = parse(t, `true`)
	if _, err := v.AsNumber(); err == nil {
		t.Error("expected error got none")
	}
}

func TestAsInteger(t *testing.T) {
	v := parse(t, `5`)
	n, err := v.AsInteger()
	if err != nil || n != 5 {
		t.Errorf("expected 5 nil got %v %v", n, err)
	}

	v = parse(t, `true`)
	if _, err := v.AsInteger(); err == nil {
		t.Error("expected error got none")
	}
}

func TestAsString(t *testing.T) {
	v := parse(t, `"5"`)
	s, err := v.AsString()
	if err != nil || s != "5" {
		t.Errorf("expected 5 nil got %v %v", s, err)
	}

	v = parse(t, `true`)
	if _, err := v.AsString(); err == nil {
		t.Error("expected error got none")
	}
}

func TestAsBoolean(t *testing.T) {
	v := parse(t, `true`)
	b, err := v.AsBoolean()
	if err != nil || !b {
		t.Errorf("expected true nil got %v %v", b, err)
	}

	v = parse(t, `null`)
	if _, err := v.AsBoolean(); err == nil {
		t.Error("expected error got none")
	}
}

func TestAsArray(t *testing.T) {
	v := parse(t, `[null]`)
	a, err := v.AsArray()
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	if a[0].Type() != Null {
		t.Errorf("expected null got %v", a[0])
	}

	v = parse(t, `null`)
	if _, err := v.AsArray(); err == nil {
		t.Error("expected error got none")
	}
}

func TestAsObject(t *testing.T) {
	v := parse(t, `{"a": null}`)
	o, err := v.AsObject()
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	if o["a"].Type() != Null {
		t.Errorf("expected null got %v", o["a"])
	}

	v = parse(t, `null`)
	if _, err := v.AsObject(); err == nil {
		t.Error("expected error got none")
	}
}

func TestString(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected string
	}{
		{`null`, "null"},
		{`-5`, `-5`},
		{`-5.0`, `-5`},
		{`-5.1`, `-5.1`},
		{`-5.12`, `-5.12`},
		{`"-5.12"`, `"-5.12"`},
		{`true`, `true`},
		{`false`, `false`},
		{`[null,-5,"-5.12",true]`, `[null,-5,"-5.12",true]`},
		{`{"a":null,"b":-5,"c":"-5.12","d":true}`, `{"a":null,"b":-5,"c":"-5.12","d":true}`},
	} {
		t.Run(test.input, func(t *testing.T) {
			if actual := parse(t, test.input).String(); actual != test.expected {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	v := parse(t, `[[[true, false]]]`)
	for _, test := range []struct {
		actual   *Value
		wantType Type
		wantBool bool
	}{
		{v.Index(0).Index(0).Index(0), Boolean, true},
		{v.Index(0).Index(0).Index(1), Boolean, false},
		{v.Index(0).Index(0).Index(2), typeUnknown, false},
		{v.Index(0).Index(1).Index(2), typeUnknown, false},
		{v.Index(-1).Index(1).Index(2), typeUnknown, false},
	} {
		if test.actual.Type() != test.wantType {
			t.Errorf("expected type %v got %v", test.wantType, test.actual.Type())
			continue
		}
		if test.wantType == Boolean {
			if b, _ := test.actual.AsBoolean(); b != test.wantBool {
				t.Errorf("expected %v got %v", test.wantBool, b)
			}
		}
	}
}

func TestKey(t *testing.T) {
	v := parse(t, `{"a": {"b": {"c": true, "d":false}}}`)
	for _, test := range []struct {
		actual   *Value
		wantType Type
		wantBool bool
	}{
		{v.Key("a").Key("b").Key("c"), Boolean, true},
		{v.Key("a").Key("b").Key("d"), Boolean, false},
		{v.Key("a").Key("b").Key("e"), typeUnknown, false},
		{v.Key("a").Key("e").Key("d"), typeUnknown, false},
		{v.Key("e").Key("b").Key("d"), typeUnknown, false},
	} {
		if test.actual.Type() != test.wantType {
			t.Errorf("expected type %v got %v", test.wantType, test.actual.Type())
			continue
		}
		if test.wantType == Boolean {
			if b, _ := test.actual.AsBoolean(); b != test.wantBool {
				t.Errorf("expected %v got %v", test.wantBool, b)
			}
		}
	}
}
