package binder

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var errNotStructPointer = errors.New("target must be a non-nil pointer to a struct")

// decode copies values into the fields of *v tagged with tag. Fields without
// the tag, or tagged "-", are left alone so several binders can fill one
// struct. Failures are wrapped in kind.
func decode(v any, tag string, values map[string][]string, kind error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %w", kind, errNotStructPointer)
	}
	rv = rv.Elem()

	for _, sf := range reflect.VisibleFields(rv.Type()) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get(tag), ",")
		if name == "" || name == "-" {
			continue
		}
		raw := values[name]
		if len(raw) == 0 {
			continue
		}
		if err := assign(rv.FieldByIndex(sf.Index), raw); err != nil {
			return fmt.Errorf("%w: field %s: %w", kind, sf.Name, err)
		}
	}
	return nil
}

// assign stores raw into dst. Slices take every value, split on commas;
// everything else takes the first one.
func assign(dst reflect.Value, raw []string) error {
	switch dst.Kind() {
	case reflect.Pointer:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assign(dst.Elem(), raw)

	case reflect.Slice:
		var items []string
		for _, r := range raw {
			for item := range strings.SplitSeq(r, ",") {
				items = append(items, strings.TrimSpace(item))
			}
		}
		out := reflect.MakeSlice(dst.Type(), len(items), len(items))
		for i, item := range items {
			if err := assign(out.Index(i), []string{item}); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	}

	return parseScalar(dst, raw[0])
}

func parseScalar(dst reflect.Value, s string) error {
	switch dst.Kind() {
	case reflect.String:
		dst.SetString(s)
	case reflect.Bool:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", s)
		}
		dst.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		dst.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", dst.Kind())
	}
	return nil
}

// parseBool also accepts the values browsers send for checkboxes.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", s)
	}
	return b, nil
}
