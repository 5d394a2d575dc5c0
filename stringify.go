// Package jstringify serializes an abstract JSON-like value graph to
// JSON text, the way ECMA-262's JSON.stringify does: a host supplies a
// Value implementation (see value.go), and Stringify walks it, applying
// toJSON hooks, detecting cycles, and escaping strings per RFC 8259.
package jstringify

// Stringify serializes v to JSON text.
//
// ok is false (with s == "" and err == nil) when v serializes to
// ECMA-262 "undefined": v is nil, v.Kind() is KindFunction, or v's own
// toJSON hook returns such a value. (A nested value that is undefined
// becomes null in an array and is omitted from an object.) This mirrors
// JSON.stringify(undefined) === undefined rather than treating the
// case as an error.
//
// err is non-nil when the value graph contains a cycle (*CircularError),
// the recursion-depth guard trips (*StackOverflowError), a Value method
// returns an error (*HostError), or one of opts fails validation
// (*InvalidOptionError).
func Stringify(v Value, opts ...Option) (s string, ok bool, err error) {
	o := defaultOpts()
	if len(opts) != 0 {
		o.apply(opts...)
		if verr := o.validate(); verr != nil {
			return "", false, &InvalidOptionError{Err: verr}
		}
	}
	return stringify(v, o)
}
