package actson

import "testing"

func TestClassify(t *testing.T) {
	for _, test := range []struct {
		b     byte
		class charClass
	}{
		{' ', cSpace},
		{'\t', cWhite},
		{'\n', cWhite},
		{'{', cLCurB},
		{'}', cRCurB},
		{'[', cLSqrB},
		{']', cRSqrB},
		{':', cColon},
		{',', cComma},
		{'"', cQuote},
		{'\\', cBacks},
		{'0', cZero},
		{'5', cDigit},
		{'-', cMinus},
		{'+', cPlus},
		{'.', cPoint},
		{'e', cLowE},
		{'E', cCapE},
		{'a', cLowA},
		{'A', cABCDF},
		{'z', cEtc},
		{0x01, classError},
		{0x7f, classError},
	} {
		if got := classify(test.b); got != test.class {
			t.Errorf("classify(%q) = %v, want %v", test.b, got, test.class)
		}
	}
	if got := classify(0xFF); got != cEtc {
		t.Errorf("classify(0xFF) = %v, want cEtc (non-ASCII is always cEtc)", got)
	}
}

func TestKeywordContinuations(t *testing.T) {
	for _, test := range []struct {
		from  state
		class charClass
		want  state
	}{
		{t1, cLowR, t2},
		{t2, cLowU, t3},
		{t3, cLowE, ok},
		{f1, cLowA, f2},
		{f2, cLowL, f3},
		{f3, cLowS, f4},
		{f4, cLowE, ok},
		{n1, cLowU, n2},
		{n2, cLowL, n3},
		{n3, cLowL, ok},
	} {
		if got := transitionTable[test.from][test.class]; got != test.want {
			t.Errorf("transitionTable[%v][%v] = %v, want %v", test.from, test.class, got, test.want)
		}
	}
}

func TestScalarAccepting(t *testing.T) {
	for _, s := range []state{in, ze, fr, e3, t3, f4, n3} {
		if !scalarAccepting(s) {
			t.Errorf("scalarAccepting(%v) = false, want true", s)
		}
	}
	for _, s := range []state{goState, ok, ob, ke, co, va, ar, st, es, u1, mi, f0, e1, e2, t1, t2, f1, f2, f3, n1, n2} {
		if scalarAccepting(s) {
			t.Errorf("scalarAccepting(%v) = true, want false", s)
		}
	}
}

func TestInScalarBuffer(t *testing.T) {
	for _, s := range []state{st, es, u1, u2, u3, u4, mi, ze, in, f0, fr, e1, e2, e3} {
		if !inScalarBuffer(s) {
			t.Errorf("inScalarBuffer(%v) = false, want true", s)
		}
	}
	for _, s := range []state{goState, ok, ob, ke, co, va, ar, t1, t2, t3, f1, f2, f3, f4, n1, n2, n3} {
		if inScalarBuffer(s) {
			t.Errorf("inScalarBuffer(%v) = true, want false", s)
		}
	}
}
