package actson

// state identifies a node in the JSON grammar's deterministic automaton.
// Negative table entries are not states; they are out-of-band action codes
// handled by performAction (see §4.3 of the design notes).
type state int8

// Automaton states. The grammar and table layout are ported directly from
// the character-class/state-transition design of the original Java/Rust
// actson parser, generalized from the teacher's smaller 24-state table to
// the fuller 31-state grammar (adds frac0 as its own state so a lone
// trailing '.' with no following digit is rejected).
const (
	goState state = iota // start
	ok                   // ok: top of stack is DONE or the enclosing collection
	ob                   // just opened '{', expecting a key or '}'
	ke                   // after ',' in an object, expecting an object key (string)
	co                   // just closed a key string, expecting ':'
	va                   // expecting a value (after ':' or ',')
	ar                   // just opened '[', expecting a value or ']'
	st                   // inside a string
	es                   // just saw '\' inside a string
	u1                   // first hex digit of \uXXXX
	u2                   // second hex digit of \uXXXX
	u3                   // third hex digit of \uXXXX
	u4                   // fourth hex digit of \uXXXX
	mi                   // just saw the leading '-' of a number
	ze                   // leading digit of a number is '0'
	in                   // accumulating integer digits
	f0                   // just saw '.', expecting at least one fraction digit
	fr                   // accumulating fraction digits
	e1                   // just saw 'e'/'E'
	e2                   // just saw the exponent's sign
	e3                   // accumulating exponent digits
	t1                   // "t"
	t2                   // "tr"
	t3                   // "tru" -- next char completes `true`
	f1                   // "f"
	f2                   // "fa"
	f3                   // "fal"
	f4                   // "fals" -- next char completes `false`
	n1                   // "n"
	n2                   // "nu"
	n3                   // "nul" -- next char completes `null`
	numStates
)

// charClass is one of 31 equivalence classes that the byte classifier maps
// every ASCII byte onto. Grouping bytes into classes keeps the transition
// table small and cache-friendly (31 x numStates) instead of 256 x numStates.
type charClass int8

const (
	cSpace charClass = iota // ' '
	cWhite                  // \t \n \r
	cLCurB                  // {
	cRCurB                  // }
	cLSqrB                  // [
	cRSqrB                  // ]
	cColon                  // :
	cComma                  // ,
	cQuote                  // "
	cBacks                  // \
	cSlash                  // /
	cPlus                   // +
	cMinus                  // -
	cPoint                  // .
	cZero                   // 0
	cDigit                  // 1-9
	cLowA                   // a
	cLowB                   // b
	cLowC                   // c
	cLowD                   // d
	cLowE                   // e
	cLowF                   // f
	cLowL                   // l
	cLowN                   // n
	cLowR                   // r
	cLowS                   // s
	cLowT                   // t
	cLowU                   // u
	cABCDF                  // A B C D F (uppercase hex digits other than E)
	cCapE                   // E
	cEtc                    // everything else, including bytes >= 128
	numClasses

	classError charClass = -1
)

// asciiClass maps each of the 128 ASCII bytes to its class. Non-whitespace
// C0 control characters have no class and are rejected as illegal input
// before ever reaching the transition table.
var asciiClass = [128]charClass{
	classError, classError, classError, classError, classError, classError, classError, classError,
	classError, cWhite, cWhite, classError, classError, cWhite, classError, classError,
	classError, classError, classError, classError, classError, classError, classError, classError,
	classError, classError, classError, classError, classError, classError, classError, classError,

	cSpace, cEtc, cQuote, cEtc, cEtc, cEtc, cEtc, cEtc,
	cEtc, cEtc, cEtc, cPlus, cComma, cMinus, cPoint, cSlash,
	cZero, cDigit, cDigit, cDigit, cDigit, cDigit, cDigit, cDigit,
	cDigit, cDigit, cColon, cEtc, cEtc, cEtc, cEtc, cEtc,

	cEtc, cABCDF, cABCDF, cABCDF, cABCDF, cCapE, cABCDF, cEtc,
	cEtc, cEtc, cEtc, cEtc, cEtc, cEtc, cEtc, cEtc,
	cEtc, cEtc, cEtc, cEtc, cEtc, cEtc, cEtc, cEtc,
	cEtc, cEtc, cEtc, cLSqrB, cBacks, cRSqrB, cEtc, cEtc,

	cEtc, cLowA, cLowB, cLowC, cLowD, cLowE, cLowF, cEtc,
	cEtc, cEtc, cEtc, cEtc, cLowL, cEtc, cLowN, cEtc,
	cEtc, cEtc, cLowR, cLowS, cLowT, cLowU, cEtc, cEtc,
	cEtc, cEtc, cEtc, cLCurB, cEtc, cRCurB, cEtc, cEtc,
}

// classify maps a byte to its character class. Bytes >= 128 are always
// cEtc: they are legal only inside strings, where the fast path and the
// string-interior table row both accept cEtc freely.
func classify(b byte) charClass {
	if b >= 128 {
		return cEtc
	}
	return asciiClass[b]
}

// Negative cells in the transition table are action codes rather than
// states. Each corresponds to a structural side effect in performAction.
const (
	actErr     state = -1 // universal error
	actEndKey  state = -2 // ':' -- pop KEY, push OBJECT, expect a value
	actEndElem state = -3 // ',' -- end an array element or object pair
	actEndStr  state = -4 // closing '"' -- end a string or field name
	actStartAr state = -5 // '[' -- start an array
	actStartOb state = -6 // '{' -- start an object
	actEndAr   state = -7 // ']' -- end an array
	actEndOb   state = -8 // '}' -- end a non-empty object
	actEndObEm state = -9 // '}' -- end an empty object
)

// transitionTable maps (state, class) to either a non-negative next state or
// one of the negative action codes above. Ported from the character-class x
// state design of the reference implementation; the frac0 row (f0) is the
// one addition beyond the teacher's table, closing the gap where a lone
// trailing '.' was silently accepted.
var transitionTable = [numStates][numClasses]state{
	/*                sp   wh   {    }    [    ]    :    ,    "    \    /    +    -    .    0    1-9  a    b    c    d    e    f    l    n    r    s    t    u    ABCDF E    etc */
	/* go */ {goState, goState, actStartOb, actErr, actStartAr, actErr, actErr, actErr, st, actErr, actErr, actErr, mi, actErr, ze, in, actErr, actErr, actErr, actErr, actErr, f1, actErr, n1, actErr, actErr, t1, actErr, actErr, actErr, actErr},
	/* ok */ {ok, ok, actErr, actEndOb, actErr, actEndAr, actErr, actEndElem, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* ob */ {ob, ob, actErr, actEndObEm, actErr, actErr, actErr, actErr, st, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* ke */ {ke, ke, actErr, actErr, actErr, actErr, actErr, actErr, st, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* co */ {co, co, actErr, actErr, actErr, actErr, actEndKey, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* va */ {va, va, actStartOb, actErr, actStartAr, actErr, actErr, actErr, st, actErr, actErr, actErr, mi, actErr, ze, in, actErr, actErr, actErr, actErr, actErr, f1, actErr, n1, actErr, actErr, t1, actErr, actErr, actErr, actErr},
	/* ar */ {ar, ar, actStartOb, actErr, actStartAr, actEndAr, actErr, actErr, st, actErr, actErr, actErr, mi, actErr, ze, in, actErr, actErr, actErr, actErr, actErr, f1, actErr, n1, actErr, actErr, t1, actErr, actErr, actErr, actErr},
	/* st */ {st, actErr, st, st, st, st, st, st, actEndStr, es, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st, st},
	/* es */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, st, st, st, actErr, actErr, actErr, actErr, actErr, actErr, st, actErr, actErr, actErr, st, actErr, st, st, actErr, st, u1, actErr, actErr, actErr},
	/* u1 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, u2, u2, u2, u2, u2, u2, u2, u2, actErr, actErr, actErr, actErr, actErr, actErr, u2, u2, actErr},
	/* u2 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, u3, u3, u3, u3, u3, u3, u3, u3, actErr, actErr, actErr, actErr, actErr, actErr, u3, u3, actErr},
	/* u3 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, u4, u4, u4, u4, u4, u4, u4, u4, actErr, actErr, actErr, actErr, actErr, actErr, u4, u4, actErr},
	/* u4 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, st, st, st, st, st, st, st, st, actErr, actErr, actErr, actErr, actErr, actErr, st, st, actErr},
	/* mi */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, ze, in, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* ze */ {ok, ok, actErr, actEndOb, actErr, actEndAr, actErr, actEndElem, actErr, actErr, actErr, actErr, actErr, f0, actErr, actErr, actErr, actErr, actErr, actErr, e1, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, e1, actErr},
	/* in */ {ok, ok, actErr, actEndOb, actErr, actEndAr, actErr, actEndElem, actErr, actErr, actErr, actErr, actErr, f0, in, in, actErr, actErr, actErr, actErr, e1, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, e1, actErr},
	/* f0 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, fr, fr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* fr */ {ok, ok, actErr, actEndOb, actErr, actEndAr, actErr, actEndElem, actErr, actErr, actErr, actErr, actErr, actErr, fr, fr, actErr, actErr, actErr, actErr, e1, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, e1, actErr},
	/* e1 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, e2, e2, actErr, e3, e3, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* e2 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, e3, e3, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* e3 */ {ok, ok, actErr, actEndOb, actErr, actEndAr, actErr, actEndElem, actErr, actErr, actErr, actErr, actErr, actErr, e3, e3, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* t1 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* t2 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* t3 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* f1 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* f2 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* f3 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* f4 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, ok, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* n1 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* n2 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
	/* n3 */ {actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr, actErr},
}

func init() {
	// The single-letter continuations of true/false/null can't be expressed
	// compactly in the table literal above without per-class repetition; set
	// them here instead of hand-indexing 31-wide rows for one cell each.
	transitionTable[t1][cLowR] = t2
	transitionTable[t2][cLowU] = t3
	transitionTable[t3][cLowE] = ok
	transitionTable[f1][cLowA] = f2
	transitionTable[f2][cLowL] = f3
	transitionTable[f3][cLowS] = f4
	transitionTable[f4][cLowE] = ok
	transitionTable[n1][cLowU] = n2
	transitionTable[n2][cLowL] = n3
	transitionTable[n3][cLowL] = ok
}

// scalarAccepting reports whether s is a state in which a scalar value has
// been fully accumulated and is ready to be finalized into an event, either
// because input ended or because a following byte (comma, closing bracket)
// revealed the scalar's end without itself being part of it.
func scalarAccepting(s state) bool {
	switch s {
	case in, ze, fr, e3, t3, f4, n3:
		return true
	default:
		return false
	}
}

// inScalarBuffer reports whether s accumulates raw bytes into the value
// buffer as it's entered.
func inScalarBuffer(s state) bool {
	return s >= st && s <= e3
}
