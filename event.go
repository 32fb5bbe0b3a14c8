package qpgo

import "reflect"

// Payload is the application-defined value carried by an Event. It may be
// any type; the core never inspects it.
type Payload = any

// Event is an immutable (signal, value) pair. The core never mutates a
// payload it has been given.
//
// Go cannot enforce payload immutability statically for container types
// (slices, maps, pointers-to-struct): a handler that receives a payload by
// reference could mutate the caller's original value. Per spec.md §3,
// NewEvent defensively copies such payloads so that a handler cannot
// corrupt the caller's copy; an Event built as a struct literal carries
// its Value as given, without a copy. Scalars,
// strings and already-immutable values are passed through unchanged —
// copying them would be wasted work.
type Event struct {
	Signal Signal
	Value  Payload
}

// NewEvent constructs an Event, defensively deep-copying container-typed
// values so the returned Event's payload is independent of the caller's.
func NewEvent(signal Signal, value Payload) Event {
	return Event{Signal: signal, Value: deepCopyPayload(value)}
}

// reservedEvent builds one of the pre-allocated EMPTY/ENTRY/EXIT/INIT
// singletons: reserved events always carry a nil value, so no copy is
// needed.
func reservedEvent(signal Signal) Event {
	return Event{Signal: signal}
}

// Reserved event singletons. Value is always nil for these.
var (
	EventEmpty   = reservedEvent(SigEmpty)
	EventEntry   = reservedEvent(SigEntry)
	EventExit    = reservedEvent(SigExit)
	EventInit    = reservedEvent(SigInit)
	EventSIGINT  = reservedEvent(SigSIGINT)
	EventSIGTERM = reservedEvent(SigSIGTERM)
)

// deepCopyPayload returns an independent copy of v for kinds that can be
// mutated through a reference (pointer, slice, map, array, struct
// containing any of those). Scalars, strings, interfaces holding scalars,
// nil, funcs and chans are returned unchanged: either they are already
// immutable, or there is no meaningful way to copy them. Unexported
// struct fields are not copied; they are left at their zero value.
func deepCopyPayload(v Payload) Payload {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Ptr, reflect.Struct:
		return deepCopyValue(rv).Interface()
	default:
		return v
	}
}

func deepCopyValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return v
		}
		cp := reflect.New(v.Type().Elem())
		cp.Elem().Set(deepCopyValue(v.Elem()))
		return cp
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		cp := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			cp.Index(i).Set(deepCopyValue(v.Index(i)))
		}
		return cp
	case reflect.Array:
		cp := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			cp.Index(i).Set(deepCopyValue(v.Index(i)))
		}
		return cp
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		cp := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), deepCopyValue(iter.Value()))
		}
		return cp
	case reflect.Struct:
		cp := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			if !cp.Field(i).CanSet() {
				continue // unexported field: leave zero value
			}
			cp.Field(i).Set(deepCopyValue(v.Field(i)))
		}
		return cp
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		cp := reflect.New(v.Type()).Elem()
		cp.Set(reflect.ValueOf(deepCopyValue(v.Elem()).Interface()))
		return cp
	default:
		return v
	}
}
