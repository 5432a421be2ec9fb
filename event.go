package actson

// JsonEvent is one discrete parsing event emitted by Parser.NextEvent.
type JsonEvent int

// Possible events. NeedMoreInput and Eof are control events; the rest carry
// document structure or scalar values.
const (
	// NeedMoreInput means the feeder has no byte available right now but
	// hasn't declared itself done. Feed more bytes and call NextEvent again.
	NeedMoreInput JsonEvent = iota
	// StartObject is emitted on '{'.
	StartObject
	// EndObject is emitted on the '}' that closes an object.
	EndObject
	// StartArray is emitted on '['.
	StartArray
	// EndArray is emitted on the ']' that closes an array.
	EndArray
	// FieldName is emitted when an object key has just been parsed. Call
	// Parser.CurrentString to retrieve it.
	FieldName
	// ValueString is emitted when a string value has just been parsed. Call
	// Parser.CurrentString to retrieve it.
	ValueString
	// ValueInt is emitted when an integer value has just been parsed. Call
	// Parser.CurrentInt64 or CurrentInt to retrieve it.
	ValueInt
	// ValueFloat is emitted when a floating-point value has just been parsed.
	// Call Parser.CurrentFloat to retrieve it.
	ValueFloat
	// ValueTrue is emitted on the boolean literal `true`.
	ValueTrue
	// ValueFalse is emitted on the boolean literal `false`.
	ValueFalse
	// ValueNull is emitted on the literal `null`.
	ValueNull
	// Eof is emitted once, after a complete top-level value has been
	// accepted and the feeder is done.
	Eof
	numEvents
)

var eventStrings = [numEvents]string{
	"NeedMoreInput",
	"StartObject",
	"EndObject",
	"StartArray",
	"EndArray",
	"FieldName",
	"ValueString",
	"ValueInt",
	"ValueFloat",
	"ValueTrue",
	"ValueFalse",
	"ValueNull",
	"Eof",
}

// String returns a human-readable name for the event, for logging and
// diagnostics.
func (e JsonEvent) String() string {
	if e < 0 || e >= numEvents {
		return "<unknown event>"
	}
	return eventStrings[e]
}
