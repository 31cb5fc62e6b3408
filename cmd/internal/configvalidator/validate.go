package configvalidator

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnknownField returns when an unknown field appears in the config.
var ErrUnknownField = errors.New("unknown field")

// CheckForUnknownFields validates the config map against the config struct.
// Keys are matched against `mapstructure` tags of the struct fields (or field
// names if there is no tag), nested maps are checked against nested structs.
func CheckForUnknownFields(configMap map[string]any, config any) error {
	return checkForUnknownFields(configMap, reflect.TypeOf(config), "")
}

func checkForUnknownFields(configMap map[string]any, t reflect.Type, currentPath string) error {
	fields := structFields(t)

	for key, val := range configMap {
		fullPath := key
		if currentPath != "" {
			fullPath = currentPath + "." + key
		}

		ft, ok := fields[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, fullPath)
		}

		nested, isMap := val.(map[string]any)
		if isMap != (ft.Kind() == reflect.Struct) {
			return fmt.Errorf("%w: %s", ErrUnknownField, fullPath)
		}

		if isMap {
			if err := checkForUnknownFields(nested, ft, fullPath); err != nil {
				return err
			}
		}
	}

	return nil
}

func structFields(t reflect.Type) map[string]reflect.Type {
	res := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if tag := f.Tag.Get("mapstructure"); tag != "" {
			res[tag] = f.Type
		} else {
			res[f.Name] = f.Type
		}
	}
	return res
}
