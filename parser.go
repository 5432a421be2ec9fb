package actson

import (
	"unicode/utf8"

	"github.com/mcvoid/actson/feeder"
)

// Parser is a non-blocking, event-based JSON parser: a pushdown automaton
// driven one byte at a time by NextEvent. It never reads from an io.Reader
// or blocks on I/O itself -- all input arrives through a feeder.Feeder, and
// NextEvent returns NeedMoreInput rather than stalling when the feeder has
// nothing available right now.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	feeder feeder.Feeder
	opts   Options
	modes  *modeStack

	state state

	// buf accumulates the raw bytes of the scalar currently being parsed
	// (string contents, with escapes already decoded, or a number's
	// verbatim digit text). It is reused across scalars.
	buf []byte

	// event1/event2 implement the two-event lookahead queue: a single
	// input byte can complete a pending scalar AND close a collection (for
	// example the '}' in `{"a":1}`), which requires emitting two events
	// from one byte. event1 is always drained first; NeedMoreInput in
	// event1 means "nothing queued yet, keep consuming bytes."
	event1 JsonEvent
	event2 JsonEvent

	// putback holds at most one byte that streaming recovery pushed back
	// after finalizing a bare value, to be redispatched from goState on the
	// next iteration instead of pulling a fresh byte from the feeder.
	putback    byte
	hasPutback bool

	// expectingLow is set after a \uD800-\uDBFF high surrogate escape, and
	// cleared only by a matching \uDC00-\uDFFF low surrogate. Anything else
	// seen while it's set is a syntax error.
	expectingLow bool
	pendingHigh  uint16

	parsedBytes uint64

	// finished latches the terminal outcome (an error, or a clean Eof) so
	// that further NextEvent calls after it don't consume more bytes and
	// report a stable result, per the no-further-progress-after-terminal
	// contract.
	finished    bool
	finishedErr error
}

// NewParser creates a Parser reading from feed, applying the given Options.
func NewParser(feed feeder.Feeder, opts ...Option) *Parser {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{
		feeder: feed,
		opts:   o,
		modes:  newModeStack(o.maxDepth),
		state:  goState,
		event1: NeedMoreInput,
		event2: NeedMoreInput,
	}
}

// ParsedBytes returns the total number of bytes consumed from the feeder so
// far. A byte that was put back during streaming recovery and redispatched
// is counted once, at the point it was first read.
func (p *Parser) ParsedBytes() uint64 {
	return p.parsedBytes
}

// NextEvent advances the automaton until it can report an event, the feeder
// runs dry, or a terminal error occurs. It never blocks: if the feeder has
// no byte ready and hasn't declared itself done, it returns
// (NeedMoreInput, nil) immediately.
//
// Once NextEvent has returned a non-nil error, every subsequent call returns
// that same error; once it has returned Eof, every subsequent call returns
// ErrNoMoreInput. Neither consumes any further bytes.
func (p *Parser) NextEvent() (JsonEvent, error) {
	if p.finished {
		if p.finishedErr != nil {
			return 0, p.finishedErr
		}
		return 0, p.noMoreInput()
	}

	for p.event1 == NeedMoreInput {
		var b byte
		if p.hasPutback {
			b = p.putback
			p.hasPutback = false
		} else {
			next, ok := p.feeder.NextInput()
			if !ok {
				if p.feeder.IsDone() {
					return p.atEndOfInput()
				}
				return NeedMoreInput, nil
			}
			b = next
			p.parsedBytes++
		}

		if err := p.consume(b); err != nil {
			p.finished = true
			p.finishedErr = err
			return 0, err
		}
	}

	r := p.event1
	p.event1 = p.event2
	p.event2 = NeedMoreInput
	return r, nil
}

// atEndOfInput handles a feeder that has permanently run dry: it finalizes a
// trailing unterminated scalar if one is pending, confirms the document
// closed cleanly, and latches Eof as the terminal outcome.
func (p *Parser) atEndOfInput() (JsonEvent, error) {
	if p.state != ok {
		if !scalarAccepting(p.state) {
			err := p.noMoreInput()
			p.finished = true
			p.finishedErr = err
			return 0, err
		}
		ev := stateToEvent(p.state)
		p.state = ok
		return ev, nil
	}

	if !p.modes.pop(modeDone) {
		err := p.syntaxError()
		p.finished = true
		p.finishedErr = err
		return 0, err
	}
	p.finished = true
	p.finishedErr = nil
	return Eof, nil
}

// consume advances the automaton by one byte.
func (p *Parser) consume(b byte) error {
	if p.state == st && b >= 0x20 && b <= 0x7f && b != '"' && b != '\\' {
		if p.expectingLow {
			return p.syntaxError()
		}
		p.buf = append(p.buf, b)
		return nil
	}

	class := classify(b)
	if class == classError {
		return p.illegalInput(b)
	}
	return p.dispatch(p.state, b, class)
}

func (p *Parser) dispatch(from state, b byte, class charClass) error {
	next := transitionTable[from][class]
	if next >= 0 {
		return p.applyTransition(from, next, b, class)
	}
	return p.performAction(from, next, b, class)
}

func (p *Parser) applyTransition(from, next state, b byte, class charClass) error {
	if next == ok {
		ev := stateToEvent(from)
		p.state = ok
		if ev != NeedMoreInput {
			p.event1 = ev
		}
		return nil
	}

	if inScalarBuffer(next) {
		if err := p.bufferByte(from, next, b, class); err != nil {
			return err
		}
	}

	p.state = next
	return nil
}

// bufferByte appends b (or its decoded form) to the pending scalar's value
// buffer as the automaton moves from a scalar-interior state to another one.
func (p *Parser) bufferByte(from, next state, b byte, class charClass) error {
	if !inScalarBuffer(from) {
		p.buf = p.buf[:0]
		if next == st {
			// b is the opening quote delimiter, not part of the string's
			// value -- start the buffer empty instead of appending it.
			return nil
		}
	}

	if from == es && class != cLowU {
		if p.expectingLow {
			return p.syntaxError()
		}
		decoded, err := decodeSimpleEscape(class)
		if err != nil {
			return err
		}
		p.buf = p.buf[:len(p.buf)-1] // drop the buffered '\'
		p.buf = append(p.buf, decoded)
		return nil
	}

	// After a high surrogate only a '\' (opening the low surrogate's \u
	// escape) may follow.
	if from == st && p.expectingLow && class != cBacks {
		return p.syntaxError()
	}

	p.buf = append(p.buf, b)

	if from == u4 {
		return p.finalizeUnicodeEscape()
	}
	return nil
}

// finalizeUnicodeEscape interprets the \uXXXX escape whose six bytes
// (backslash, 'u', four hex digits) sit at the tail of the value buffer,
// replacing them with the UTF-8 encoding of the code point they denote --
// or, for a surrogate half, staging it to be combined with its pair.
func (p *Parser) finalizeUnicodeEscape() error {
	n := len(p.buf)
	unit, ok := parseHex4(p.buf[n-4:])
	if !ok {
		return p.syntaxError()
	}

	switch {
	case unit >= 0xD800 && unit <= 0xDBFF: // high surrogate
		if p.expectingLow {
			return p.syntaxError()
		}
		p.expectingLow = true
		p.pendingHigh = unit
		return nil

	case unit >= 0xDC00 && unit <= 0xDFFF: // low surrogate
		if !p.expectingLow {
			return p.syntaxError()
		}
		p.expectingLow = false
		cp := 0x10000 + (rune(p.pendingHigh)-0xD800)*0x400 + (rune(unit) - 0xDC00)
		if len(p.buf) < 12 {
			return p.syntaxError()
		}
		p.buf = p.buf[:len(p.buf)-12]
		p.buf = utf8.AppendRune(p.buf, cp)
		return nil

	default:
		if p.expectingLow {
			return p.syntaxError()
		}
		p.buf = p.buf[:n-6]
		p.buf = utf8.AppendRune(p.buf, rune(unit))
		return nil
	}
}

func parseHex4(digits []byte) (uint16, bool) {
	var v uint16
	for _, d := range digits {
		var nibble uint16
		switch {
		case d >= '0' && d <= '9':
			nibble = uint16(d - '0')
		case d >= 'a' && d <= 'f':
			nibble = uint16(d-'a') + 10
		case d >= 'A' && d <= 'F':
			nibble = uint16(d-'A') + 10
		default:
			return 0, false
		}
		v = v<<4 | nibble
	}
	return v, true
}

func decodeSimpleEscape(class charClass) (byte, error) {
	switch class {
	case cQuote:
		return '"', nil
	case cBacks:
		return '\\', nil
	case cSlash:
		return '/', nil
	case cLowB:
		return '\b', nil
	case cLowF:
		return '\f', nil
	case cLowN:
		return '\n', nil
	case cLowR:
		return '\r', nil
	case cLowT:
		return '\t', nil
	default:
		return 0, ErrSyntaxError
	}
}

// stateToEvent maps a scalar-accepting state to the event it finalizes.
// Called with the automaton's state just before it transitions away from
// that scalar, whether driven by a plain separator byte (applyTransition)
// or by a structural action (performAction).
func stateToEvent(s state) JsonEvent {
	switch s {
	case in, ze:
		return ValueInt
	case fr, e3:
		return ValueFloat
	case t3:
		return ValueTrue
	case f4:
		return ValueFalse
	case n3:
		return ValueNull
	default:
		return NeedMoreInput
	}
}

func (p *Parser) performAction(from state, act state, b byte, class charClass) error {
	switch act {
	case actEndObEm:
		if !p.modes.pop(modeKey) {
			return p.syntaxError()
		}
		p.state = ok
		p.event1 = EndObject

	case actEndOb:
		if !p.modes.pop(modeObject) {
			return p.syntaxError()
		}
		p.finalizeThenEmit(from, EndObject)
		p.state = ok

	case actEndAr:
		if !p.modes.pop(modeArray) {
			return p.syntaxError()
		}
		p.finalizeThenEmit(from, EndArray)
		p.state = ok

	case actStartOb:
		if !p.modes.push(modeKey) {
			return p.syntaxError()
		}
		p.state = ob
		p.event1 = StartObject

	case actStartAr:
		if !p.modes.push(modeArray) {
			return p.syntaxError()
		}
		p.state = ar
		p.event1 = StartArray

	case actEndStr:
		if p.expectingLow {
			return p.syntaxError()
		}
		if p.modes.peek() == modeKey {
			p.state = co
			p.event1 = FieldName
		} else {
			p.state = ok
			p.event1 = ValueString
		}

	case actEndElem:
		switch p.modes.peek() {
		case modeObject:
			if !p.modes.pop(modeObject) || !p.modes.push(modeKey) {
				return p.syntaxError()
			}
			p.finalizePending(from)
			p.state = ke
		case modeArray:
			p.finalizePending(from)
			p.state = va
		default:
			return p.syntaxError()
		}

	case actEndKey:
		if !p.modes.pop(modeKey) || !p.modes.push(modeObject) {
			return p.syntaxError()
		}
		p.state = va

	default: // actErr, or any other unmapped negative code
		return p.recoverOrFail(from, b, class)
	}
	return nil
}

// finalizeThenEmit fills the two-event queue for a closing brace/bracket: if
// a scalar was pending in from, it goes in event1 and the structural event
// in event2; otherwise the structural event alone goes in event1.
func (p *Parser) finalizeThenEmit(from state, structural JsonEvent) {
	if scalarAccepting(from) {
		p.event1 = stateToEvent(from)
		p.event2 = structural
	} else {
		p.event1 = structural
	}
}

// finalizePending fills event1 with a scalar finalized out of from, if any
// was pending. A comma has no event of its own: if nothing was pending
// (the previous element was itself a closed object/array), event1 stays
// NeedMoreInput and NextEvent's loop keeps consuming bytes.
func (p *Parser) finalizePending(from state) {
	if scalarAccepting(from) {
		p.event1 = stateToEvent(from)
	}
}

// recoverOrFail implements streaming-mode recovery (see Options.Streaming):
// at top level, a byte that doesn't fit the current value can instead begin
// a new one. A bare number has no fixed terminator, so the byte that reveals
// its end must be reprocessed rather than consumed as part of it.
func (p *Parser) recoverOrFail(from state, b byte, class charClass) error {
	if !p.opts.streaming || !p.modes.atTopLevel() {
		return p.syntaxError()
	}

	if from == ok {
		return p.dispatch(goState, b, class)
	}

	if scalarAccepting(from) {
		p.event1 = stateToEvent(from)
		p.state = ok
		return p.setPutback(b)
	}

	return p.syntaxError()
}

func (p *Parser) setPutback(b byte) error {
	if p.hasPutback {
		panic("actson: double putback")
	}
	p.putback = b
	p.hasPutback = true
	return nil
}

// CurrentString returns the decoded string for the field name or string
// value event just emitted. Escapes, including surrogate pairs, have
// already been resolved into the returned UTF-8 text.
func (p *Parser) CurrentString() (string, error) {
	if !utf8.Valid(p.buf) {
		return "", ErrInvalidStringValue
	}
	return string(p.buf), nil
}

// CurrentFloat returns the float64 value of the ValueFloat (or ValueInt)
// event just emitted.
func (p *Parser) CurrentFloat() (float64, error) {
	f, err := parseFloat(p.buf)
	if err != nil {
		return 0, ErrInvalidFloatValue
	}
	return f, nil
}

// CurrentInt64 returns the int64 value of the ValueInt event just emitted.
// It fails if the number's text doesn't fit in 64 bits.
func (p *Parser) CurrentInt64() (int64, error) {
	return CurrentInt[int64](p)
}

// signedInt constrains CurrentInt to Go's signed integer types.
type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// CurrentInt returns the current ValueInt event's value as any signed
// integer type T, reporting ErrInvalidIntValue on overflow. It's a free
// function, not a method, because Go methods can't carry their own type
// parameters.
func CurrentInt[T signedInt](p *Parser) (T, error) {
	v, err := parseInt(p.buf)
	if err != nil {
		return 0, ErrInvalidIntValue
	}
	r := T(v)
	if int64(r) != v {
		return 0, ErrInvalidIntValue
	}
	return r, nil
}
