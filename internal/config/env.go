package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// envSetter parses raw into a field of one kind.
type envSetter func(field reflect.Value, raw string) error

var envSetters = map[reflect.Kind]envSetter{
	reflect.String: func(field reflect.Value, raw string) error {
		field.SetString(raw)
		return nil
	},
	reflect.Int: func(field reflect.Value, raw string) error {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", raw)
		}
		field.SetInt(int64(n))
		return nil
	},
	reflect.Bool: func(field reflect.Value, raw string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("expected a boolean, got %q", raw)
		}
		field.SetBool(b)
		return nil
	},
	// Comma separated, blanks dropped: "a, b,," is [a b].
	reflect.Slice: func(field reflect.Value, raw string) error {
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported list type %s", field.Type())
		}
		items := []string{}
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
		field.Set(reflect.ValueOf(items))
		return nil
	},
}

// applyEnv overrides every `env` tagged field of target whose variable is set.
// It returns the names of the variables it applied. All invalid values are
// reported together.
func applyEnv(target any) ([]string, error) {
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("env target must be a struct pointer, got %T", target)
	}

	var (
		applied []string
		errs    []error
	)
	var walk func(v reflect.Value)
	walk = func(v reflect.Value) {
		for i := 0; i < v.NumField(); i++ {
			field, meta := v.Field(i), v.Type().Field(i)
			if field.Kind() == reflect.Struct {
				walk(field)
				continue
			}

			name := meta.Tag.Get("env")
			if name == "" {
				continue
			}
			raw, ok := os.LookupEnv(name)
			if !ok {
				continue
			}

			set, known := envSetters[field.Kind()]
			if !known {
				errs = append(errs, fmt.Errorf("%s: unsupported field kind %s", name, field.Kind()))
				continue
			}
			if err := set(field, raw); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				continue
			}
			applied = append(applied, name)
		}
	}
	walk(val.Elem())

	return applied, errors.Join(errs...)
}
