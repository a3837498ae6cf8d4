package state

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Patch is a partial document keyed by JSON field names. Nested Patch or
// map[string]any values merge into struct and map fields; anything else,
// slices included, replaces the field wholesale.
type Patch map[string]any

// deepCopy returns a copy of v that shares no pointers, slices or maps with it.
func deepCopy[T any](v T) T {
	var out T
	reflect.ValueOf(&out).Elem().Set(cloneValue(reflect.ValueOf(&v).Elem()))
	return out
}

func cloneValue(v reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		dup := reflect.New(v.Type().Elem())
		dup.Elem().Set(cloneValue(v.Elem()))
		return dup
	case reflect.Interface:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		dup := reflect.New(v.Type()).Elem()
		dup.Set(cloneValue(v.Elem()))
		return dup
	case reflect.Struct:
		dup := reflect.New(v.Type()).Elem()
		dup.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if !dup.Field(i).CanSet() {
				continue
			}
			dup.Field(i).Set(cloneValue(v.Field(i)))
		}
		return dup
	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		dup := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			dup.SetMapIndex(iter.Key(), cloneValue(iter.Value()))
		}
		return dup
	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		dup := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			dup.Index(i).Set(cloneValue(v.Index(i)))
		}
		return dup
	case reflect.Array:
		dup := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			dup.Index(i).Set(cloneValue(v.Index(i)))
		}
		return dup
	default:
		dup := reflect.New(v.Type()).Elem()
		dup.Set(v)
		return dup
	}
}

// fieldIndex finds an exported struct field by its JSON name, falling back to
// the Go field name when the field carries no tag.
func fieldIndex(t reflect.Type, name string) (int, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = f.Name
		}
		if tag == name {
			return i, true
		}
	}
	return -1, false
}

// setPath walks segs from v and assigns value at the leaf. Intermediate
// containers are only written back once the leaf assignment succeeded.
func setPath(v reflect.Value, segs []string, i int, value any, path string) error {
	if i == len(segs) {
		if !v.CanSet() {
			return notFound(path, segs[len(segs)-1])
		}
		if err := assign(v, value); err != nil {
			return mismatch(path, segs[len(segs)-1])
		}
		return nil
	}

	seg := segs[i]
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return notFound(path, seg)
		}
		return setPath(v.Elem(), segs, i, value, path)
	case reflect.Interface:
		if v.IsNil() {
			return notFound(path, seg)
		}
		tmp := reflect.New(v.Elem().Type()).Elem()
		tmp.Set(v.Elem())
		if err := setPath(tmp, segs, i, value, path); err != nil {
			return err
		}
		v.Set(tmp)
		return nil
	case reflect.Struct:
		idx, ok := fieldIndex(v.Type(), seg)
		if !ok {
			return notFound(path, seg)
		}
		return setPath(v.Field(idx), segs, i+1, value, path)
	case reflect.Slice, reflect.Array:
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 || n >= v.Len() {
			return notFound(path, seg)
		}
		return setPath(v.Index(n), segs, i+1, value, path)
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return notFound(path, seg)
		}
		key := reflect.ValueOf(seg).Convert(v.Type().Key())
		current := v.MapIndex(key)
		if !current.IsValid() {
			return notFound(path, seg)
		}
		tmp := reflect.New(v.Type().Elem()).Elem()
		tmp.Set(current)
		if err := setPath(tmp, segs, i+1, value, path); err != nil {
			return err
		}
		v.SetMapIndex(key, tmp)
		return nil
	default:
		return notFound(path, seg)
	}
}

// assign stores a deep copy of value into dst. A nil value zeroes nilable
// fields; a T value is accepted for a *T field.
func assign(dst reflect.Value, value any) error {
	if value == nil {
		switch dst.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		return ErrTypeMismatch
	}

	src := cloneValue(reflect.ValueOf(value))
	dt := dst.Type()
	if src.Type().AssignableTo(dt) {
		dst.Set(src)
		return nil
	}
	if converted, ok := convert(src, dt); ok {
		dst.Set(converted)
		return nil
	}
	if dt.Kind() == reflect.Pointer && src.Type().AssignableTo(dt.Elem()) {
		ptr := reflect.New(dt.Elem())
		ptr.Elem().Set(src)
		dst.Set(ptr)
		return nil
	}
	return ErrTypeMismatch
}

// convert converts src to dt when no information is lost. Named and
// underlying types of the same kind convert freely; numbers convert only
// when the value survives the round trip. Int to string is refused.
func convert(src reflect.Value, dt reflect.Type) (reflect.Value, bool) {
	st := src.Type()
	if !st.ConvertibleTo(dt) {
		return reflect.Value{}, false
	}
	if st.Kind() == dt.Kind() {
		return src.Convert(dt), true
	}
	if !isNumber(st.Kind()) || !isNumber(dt.Kind()) || !fitsNumber(src, dt) {
		return reflect.Value{}, false
	}
	return src.Convert(dt), true
}

// maxExactFloat is the largest integer magnitude float64 holds exactly.
const maxExactFloat = 1 << 53

// fitsNumber reports whether the numeric value src is representable in dt
// without truncation, wrap-around or rounding.
func fitsNumber(src reflect.Value, dt reflect.Type) bool {
	zero := reflect.Zero(dt)
	switch {
	case isInt(src.Kind()):
		i := src.Int()
		switch {
		case isInt(dt.Kind()):
			return !zero.OverflowInt(i)
		case isUint(dt.Kind()):
			return i >= 0 && !zero.OverflowUint(uint64(i))
		default:
			return i >= -maxExactFloat && i <= maxExactFloat
		}
	case isUint(src.Kind()):
		u := src.Uint()
		switch {
		case isInt(dt.Kind()):
			return u <= math.MaxInt64 && !zero.OverflowInt(int64(u))
		case isUint(dt.Kind()):
			return !zero.OverflowUint(u)
		default:
			return u <= maxExactFloat
		}
	default:
		f := src.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return !isInt(dt.Kind()) && !isUint(dt.Kind())
		}
		switch {
		case isInt(dt.Kind()):
			return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 && !zero.OverflowInt(int64(f))
		case isUint(dt.Kind()):
			return f == math.Trunc(f) && f >= 0 && f < math.MaxUint64 && !zero.OverflowUint(uint64(f))
		case dt.Kind() == reflect.Float64:
			return true
		default:
			return float64(float32(f)) == f
		}
	}
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func asPatch(value any) (map[string]any, bool) {
	switch p := value.(type) {
	case Patch:
		return p, true
	case map[string]any:
		return p, true
	}
	return nil, false
}

// mergeInto deep-merges patch into dst. Unlike setPath, merging may allocate a
// nil pointer or map on the way down: a merge describes a new shape.
func mergeInto(dst reflect.Value, patch map[string]any, prefix string) error {
	for dst.Kind() == reflect.Pointer {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		dst = dst.Elem()
	}

	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	switch dst.Kind() {
	case reflect.Struct:
		for _, k := range keys {
			path := prefix + "/" + k
			idx, ok := fieldIndex(dst.Type(), k)
			if !ok {
				return notFound(path, k)
			}
			if err := mergeField(dst.Field(idx), patch[k], path, k); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		if dst.Type().Key().Kind() != reflect.String {
			return mismatch(prefix, "")
		}
		if dst.IsNil() {
			dst.Set(reflect.MakeMap(dst.Type()))
		}
		for _, k := range keys {
			key := reflect.ValueOf(k).Convert(dst.Type().Key())
			tmp := reflect.New(dst.Type().Elem()).Elem()
			if current := dst.MapIndex(key); current.IsValid() {
				tmp.Set(cloneValue(current))
			}
			if err := mergeField(tmp, patch[k], prefix+"/"+k, k); err != nil {
				return err
			}
			dst.SetMapIndex(key, tmp)
		}
		return nil
	default:
		return mismatch(prefix, "")
	}
}

func mergeField(field reflect.Value, value any, path, seg string) error {
	if !field.CanSet() {
		return notFound(path, seg)
	}
	if nested, ok := asPatch(value); ok && mergeable(field.Type()) {
		return mergeInto(field, nested, path)
	}
	if err := assign(field, value); err != nil {
		return mismatch(path, seg)
	}
	return nil
}

func mergeable(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	}
	return false
}
