package funcs

import (
	"encoding/hex"
	"fmt"
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/crypto/blake2b"
)

// keyPrinter dumps a value with its dynamic type at every level, unexported
// fields included and strings quoted byte for byte. Map keys are sorted and
// pointers are followed without printing addresses, so deeply-equal values
// dump identically.
var keyPrinter = spew.ConfigState{
	Indent:                  " ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	SpewKeys:                true,
}

// argumentKey encodes an argument (or argument list) into a fixed-size
// cache key: the BLAKE2b-256 digest of its structural dump.
//
// Values holding a func, a channel, an unsafe pointer or a reference cycle
// have no structural form and return an error wrapping
// [ErrUnserializableArgs].
func argumentKey(v any) (string, error) {
	if err := checkEncodable(reflect.ValueOf(v), make(map[visit]struct{})); err != nil {
		return "", err
	}
	sum := blake2b.Sum256([]byte(keyPrinter.Sdump(v)))
	return hex.EncodeToString(sum[:]), nil
}

// visit marks a reference on the current path. len tells a slice apart from
// a shorter reslice of the same array.
type visit struct {
	typ reflect.Type
	ptr uintptr
	len int
}

func checkEncodable(v reflect.Value, path map[visit]struct{}) error {
	switch v.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Errorf("%w: %s value", ErrUnserializableArgs, v.Type())
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() || (v.Kind() == reflect.Slice && v.Len() == 0) {
			return nil
		}
		mark := visit{typ: v.Type(), ptr: v.Pointer()}
		if v.Kind() == reflect.Slice {
			mark.len = v.Len()
		}
		if _, seen := path[mark]; seen {
			return fmt.Errorf("%w: cycle through %s", ErrUnserializableArgs, v.Type())
		}
		path[mark] = struct{}{}
		defer delete(path, mark)
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		return checkEncodable(v.Elem(), path)
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if err := checkEncodable(iter.Key(), path); err != nil {
				return err
			}
			if err := checkEncodable(iter.Value(), path); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := checkEncodable(v.Index(i), path); err != nil {
				return err
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if err := checkEncodable(v.Field(i), path); err != nil {
				return err
			}
		}
	}
	return nil
}
