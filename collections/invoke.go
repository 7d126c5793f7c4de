package collections

import (
	"fmt"
	"reflect"
)

// Invoke calls fn once per element with the element followed by args and
// returns the results in a collection of the same shape.
//
//	collections.Invoke(words, func(s string, args ...any) string {
//	    return strings.Repeat(s, args[0].(int))
//	}, 2)
func Invoke[T, R any](c *Collection[T], fn func(T, ...any) R, args ...any) *Collection[R] {
	return Map(c, func(v T, _ Key) R { return fn(v, args...) })
}

// InvokeMethod resolves name on every element and calls it with args.
//
// name is looked up, in order, as a method of the element (value or pointer
// receiver), an exported struct field, and an entry of a string-keyed map.
// Methods are called on the element; func-valued fields and entries are
// called as plain functions. A resolved value that is not a function is
// returned unchanged, and a name that does not resolve yields nil.
//
// A call returning nothing yields nil, a single result yields that value and
// several results yield a []any. The result has the same shape as c.
//
// An error wrapping [ErrInvokeArguments] is returned when args do not fit
// the signature of a resolved function.
func InvokeMethod[T any](c *Collection[T], name string, args ...any) (*Collection[any], error) {
	out := emptyLike[T, any](c)
	var err error
	Each(c, func(v T, k Key, _ *Collection[T]) {
		if err != nil {
			return
		}
		target, ok := resolve(any(v), name)
		if !ok {
			out.add(k, nil)
			return
		}
		res, callErr := call(target, args)
		if callErr != nil {
			err = fmt.Errorf("collections: invoke %q on element %s: %w", name, k, callErr)
			return
		}
		out.add(k, res)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func resolve(v any, name string) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if m := rv.MethodByName(name); m.IsValid() {
		return m, true
	}
	if rv.Kind() != reflect.Pointer {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		if m := ptr.MethodByName(name); m.IsValid() {
			return m, true
		}
	}

	ind := reflect.Indirect(rv)
	switch ind.Kind() {
	case reflect.Struct:
		f, ok := ind.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			return reflect.Value{}, false
		}
		fv, err := ind.FieldByIndexErr(f.Index)
		if err != nil {
			return reflect.Value{}, false
		}
		return unwrapInterface(fv), true
	case reflect.Map:
		kt := ind.Type().Key()
		if kt.Kind() != reflect.String {
			return reflect.Value{}, false
		}
		mv := ind.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !mv.IsValid() {
			return reflect.Value{}, false
		}
		return unwrapInterface(mv), true
	}
	return reflect.Value{}, false
}

func unwrapInterface(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		return v.Elem()
	}
	return v
}

// call invokes fv with args when it is a function and returns it verbatim
// otherwise.
func call(fv reflect.Value, args []any) (any, error) {
	if fv.Kind() != reflect.Func || fv.IsNil() {
		if fv.Kind() == reflect.Interface && fv.IsNil() {
			return nil, nil
		}
		return fv.Interface(), nil
	}

	t := fv.Type()
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: want at least %d, got %d", ErrInvokeArguments, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrInvokeArguments, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if i >= fixed {
			pt = t.In(fixed).Elem()
		} else {
			pt = t.In(i)
		}
		if a == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("%w: argument %d is %s, want %s", ErrInvokeArguments, i, av.Type(), pt)
		}
		in[i] = av
	}

	results := fv.Call(in)
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0].Interface(), nil
	}
	out := make([]any, len(results))
	for i, r := range results {
		out[i] = r.Interface()
	}
	return out, nil
}
