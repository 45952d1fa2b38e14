package option

import (
	"errors"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

// Type is implemented by optional markup values. A value is none if the
// author left it unset (e.g. `width=auto`). String writes the value in
// markup notation.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
	String() string
}

// MaybeOption labels the arms of a match which do not test for concrete
// values.
type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe matches `None` if a value is unset and `Some` if it is set. If the
// arm taken fails, the `Error` arm is tried.
type Maybe map[MaybeOption]interface{}

// Of matches concrete values first. Keys are handed to Type.Equals, so a
// size may be matched against its unit, a color against its model.
// Values which match no key fall through to the arms of Maybe.
type Of map[interface{}]interface{}

// Case computes the result of an arm from the matched value.
//
// Arms of a match are either plain results, or one of
//
//     Case
//     func(Type) (interface{}, error)
//     func(interface{}) (interface{}, error)
//     func(interface{}, MaybeOption) (interface{}, error)
//
type Case func(o Type) (interface{}, error)

// Match matches o against choices, which have to be of type Of or Maybe.
// Value types call it to implement Type.Match.
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

// Match matches o against concrete values first, then against None and Some.
// Keys are tested in no particular order; clients should not provide more
// than one concrete key o may be equal to.
func (of Of) Match(o Type) (interface{}, error) {
	tracer().Debugf("match %T %q", o, o.String())
	if !o.IsNone() {
		for key, expr := range of {
			if _, isLabel := key.(MaybeOption); isLabel || !o.Equals(key) {
				continue
			}
			return arm{expr, true}.eval(o, Some, of.arm(Error))
		}
	}
	return dispatch(o, of.arm)
}

// Match matches o against None and Some.
func (maybe Maybe) Match(o Type) (interface{}, error) {
	tracer().Debugf("match %T %q", o, o.String())
	return dispatch(o, maybe.arm)
}

func (of Of) arm(label MaybeOption) arm {
	expr, ok := of[label]
	return arm{expr, ok}
}

func (maybe Maybe) arm(label MaybeOption) arm {
	expr, ok := maybe[label]
	return arm{expr, ok}
}

func dispatch(o Type, arms func(MaybeOption) arm) (interface{}, error) {
	if o.IsNone() {
		a := arms(None)
		if !a.ok {
			return nil, ErrCannotMatchUnsetValue
		}
		return a.eval(o, None, arms(Error))
	}
	return arms(Some).eval(o, Some, arms(Error))
}

type arm struct {
	expr interface{}
	ok   bool
}

// eval computes the result of an arm. A missing or failing arm is caught
// by onError, if present.
func (a arm) eval(o Type, label MaybeOption, onError arm) (interface{}, error) {
	value, err := a.result(o, label)
	if err != nil && onError.ok {
		tracer().Debugf("match error: %v", err)
		return onError.result(o, Error)
	}
	return value, err
}

func (a arm) result(o Type, label MaybeOption) (interface{}, error) {
	if !a.ok {
		return nil, ErrCannotMatchValue
	}
	switch f := a.expr.(type) {
	case Case:
		return f(o)
	case func(Type) (interface{}, error):
		return f(o)
	case func(interface{}) (interface{}, error):
		return f(o)
	case func(interface{}, MaybeOption) (interface{}, error):
		return f(o, label)
	}
	return a.expr, nil
}

// Fail may be used as an arm, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// arm.
//
//     _, err := size.Match(option.Of{
//          option.None: …,
//          value.Rem:   option.Fail(errors.New("rem not supported")),
//          option.Some: …,
//     })
//
func Fail(err error) Case {
	return func(Type) (interface{}, error) {
		return nil, err
	}
}

// Attribute writes o as a markup attribute `key=value`. It returns false if
// o is unset or equals one of defaults, which are omitted from markup.
func Attribute(key string, o Type, defaults ...interface{}) (string, bool) {
	choices := Of{
		None: "",
		Some: Case(func(o Type) (interface{}, error) {
			return key + "=" + o.String(), nil
		}),
	}
	for _, d := range defaults {
		choices[d] = ""
	}
	attr, err := o.Match(choices)
	if err != nil {
		return "", false
	}
	s, _ := attr.(string)
	return s, s != ""
}
