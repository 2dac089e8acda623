// FILE: vrsarin/argmap/scan.go
package argmap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes declared settings into the target struct or map using the
// "arg" struct tag, e.g.:
//
//	var s struct {
//	    Port    int           `arg:"local-port"`
//	    Timeout time.Duration `arg:"query-timeout"`
//	    Allowed []string      `arg:"allow-from"`
//	}
//	err := m.Scan("", &s)
//
// When prefix is non-empty, only settings starting with it are decoded and
// the prefix is stripped from the key ("carbon-" maps carbon-interval to
// tag "interval"). Values are strings in the registry; decoding is weakly
// typed with duration and comma-slice conversions.
func (m *Map) Scan(prefix string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	data := make(map[string]any)
	for name, value := range m.values {
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		data[strings.TrimPrefix(name, prefix)] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "arg",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to scan settings with prefix %q into %T: %w", prefix, target, err)
	}
	return nil
}
