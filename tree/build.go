package tree

import (
	"errors"

	"github.com/mcvoid/actson"
)

// ErrWouldBlock is returned by Build when the parser reports NeedMoreInput
// and no refill function was supplied to obtain more bytes.
var ErrWouldBlock = errors.New("tree: would block waiting for more input")

// frame tracks the in-progress container (and, for an object, the pending
// field name) while Build walks the event stream.
type frame struct {
	container *Value
	pendingKey string
	hasKey    bool
}

// Build drains p's event stream into a single Value tree. p must not have
// been used to emit any events yet.
//
// refill is called whenever the parser returns NeedMoreInput, i.e. its
// feeder has no byte ready right now; it should block until more input has
// been supplied to that feeder (feeder.BufferedFeeder.FillBuf and
// feeder.AsyncFeeder.FillBuf are built for exactly this). Pass nil if the
// feeder is already fully loaded (feeder.SliceFeeder, or a feeder.PushFeeder
// that had Done called after all bytes were pushed) -- NeedMoreInput then
// becomes ErrWouldBlock instead of looping forever.
func Build(p *actson.Parser, refill func() error) (*Value, error) {
	var stack []frame
	var root *Value

	setValue := func(v *Value) error {
		if len(stack) == 0 {
			root = v
			return nil
		}
		top := &stack[len(stack)-1]
		switch top.container.Type() {
		case Array:
			top.container.arrayValue = append(top.container.arrayValue, v)
		case Object:
			if !top.hasKey {
				return errors.New("tree: value without a preceding field name")
			}
			top.container.objectValue = append(top.container.objectValue, pair{key: top.pendingKey, val: v})
			top.hasKey = false
		}
		return nil
	}

	for {
		ev, err := p.NextEvent()
		if err != nil {
			return nil, err
		}

		switch ev {
		case actson.NeedMoreInput:
			if refill == nil {
				return nil, ErrWouldBlock
			}
			if err := refill(); err != nil {
				return nil, err
			}

		case actson.StartObject:
			stack = append(stack, frame{container: &Value{typ: Object}})
		case actson.StartArray:
			stack = append(stack, frame{container: &Value{typ: Array}})

		case actson.EndObject, actson.EndArray:
			v := stack[len(stack)-1].container
			stack = stack[:len(stack)-1]
			if err := setValue(v); err != nil {
				return nil, err
			}

		case actson.FieldName:
			s, err := p.CurrentString()
			if err != nil {
				return nil, err
			}
			top := &stack[len(stack)-1]
			top.pendingKey = s
			top.hasKey = true

		case actson.ValueString:
			s, err := p.CurrentString()
			if err != nil {
				return nil, err
			}
			if err := setValue(&Value{typ: String, stringValue: s}); err != nil {
				return nil, err
			}

		case actson.ValueInt:
			n, err := actson.CurrentInt[int64](p)
			if err != nil {
				return nil, err
			}
			if err := setValue(&Value{typ: Integer, integerValue: n}); err != nil {
				return nil, err
			}

		case actson.ValueFloat:
			f, err := p.CurrentFloat()
			if err != nil {
				return nil, err
			}
			if err := setValue(&Value{typ: Number, numberValue: f}); err != nil {
				return nil, err
			}

		case actson.ValueTrue:
			if err := setValue(&Value{typ: Boolean, booleanValue: true}); err != nil {
				return nil, err
			}
		case actson.ValueFalse:
			if err := setValue(&Value{typ: Boolean, booleanValue: false}); err != nil {
				return nil, err
			}
		case actson.ValueNull:
			if err := setValue(&Value{typ: Null}); err != nil {
				return nil, err
			}

		case actson.Eof:
			return root, nil
		}
	}
}
