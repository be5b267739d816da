package config

import (
	"reflect"
	"strings"
)

// SettingInfo describes one settings key for `tcr config`
type SettingInfo struct {
	EnvVar  string
	Example any
	Key     string
}

// GetSettingsInfo uses reflection to describe every settings key.
// This automatically stays in sync when new fields are added to Settings.
func GetSettingsInfo() []SettingInfo {
	t := reflect.TypeOf(Settings{})
	defaults := reflect.ValueOf(*DefaultSettings())
	infos := make([]SettingInfo, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		infos = append(infos, SettingInfo{
			EnvVar:  strings.TrimSpace(strings.Split(field.Tag.Get("env"), ",")[0]),
			Example: exampleValue(field, defaults.Field(i)),
			Key:     strings.Split(jsonTag, ",")[0],
		})
	}

	return infos
}

// GetSettingsExample returns an example settings map keyed by JSON name
func GetSettingsExample() map[string]any {
	example := make(map[string]any)
	for _, info := range GetSettingsInfo() {
		example[info.Key] = info.Example
	}
	return example
}

// exampleValue prefers the init default and falls back to a value of the right kind
func exampleValue(field reflect.StructField, def reflect.Value) any {
	if def.Kind() == reflect.Ptr && !def.IsNil() {
		return def.Elem().Interface()
	}

	t := field.Type
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return false
	case reflect.Int:
		return 0
	case reflect.String:
		return "example"
	}
	return nil
}
