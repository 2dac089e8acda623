package argmap

import (
	"fmt"
	"sort"
)

// Kind classifies how a declared setting is parsed and rendered.
type Kind int

const (
	// KindValue expects name=value assignments and renders as "--name=...".
	KindValue Kind = iota
	// KindSwitch is boolean-like; help shows both --name=yes and --name=no.
	KindSwitch
	// KindCommand is a flag that defaults to "no" and is excluded from
	// config dumps.
	KindCommand
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "Parameter"
	case KindSwitch:
		return "Switch"
	case KindCommand:
		return "Command"
	}
	return "Unknown"
}

// Map is the argument registry: one string value per setting name, with
// parallel metadata for defaults, help text, and kind, plus the record of
// unknown-but-tolerated settings.
//
// The cleared set and command list are scoped to a single top-level Parse
// invocation; everything else accumulates for the life of the Map.
type Map struct {
	values   map[string]string
	helptext map[string]string
	kinds    map[string]Kind
	defaults map[string]string
	unknown  map[string]string
	cleared  map[string]struct{}
	commands []string

	log      Logger
	resolver IdentityResolver
}

// New creates a registry with the single self-registered setting
// ignore-unknown-settings (empty by default).
func New() *Map {
	m := &Map{
		values:   make(map[string]string),
		helptext: make(map[string]string),
		kinds:    make(map[string]Kind),
		defaults: make(map[string]string),
		unknown:  make(map[string]string),
		cleared:  make(map[string]struct{}),
		log:      nopLogger{},
		resolver: OSResolver{},
	}
	m.Declare("ignore-unknown-settings", "Configuration settings to ignore if they are unknown", "")
	return m
}

// SetLogger replaces the warning/error sink. A nil logger silences output.
func (m *Map) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	m.log = l
}

// SetResolver replaces the user/group identity-resolution capability used
// by AsUID and AsGID.
func (m *Map) SetResolver(r IdentityResolver) {
	if r == nil {
		r = OSResolver{}
	}
	m.resolver = r
}

// declare records metadata for a name. Help text and kind are metadata,
// not state: the first declaration wins and later ones leave them alone.
func (m *Map) declare(name, help string, kind Kind) {
	if _, exists := m.helptext[name]; !exists {
		m.helptext[name] = help
		m.kinds[name] = kind
	}
	if _, exists := m.values[name]; !exists {
		m.values[name] = ""
	}
}

// Declare registers a value setting with help text and its initial value.
// Re-declaring an existing name updates the value only.
func (m *Map) Declare(name, help, value string) {
	m.declare(name, help, KindValue)
	m.values[name] = value
}

// DeclareSwitch registers a boolean-like setting ("yes"/"no"/"off"...).
func (m *Map) DeclareSwitch(name, help, value string) {
	m.declare(name, help, KindSwitch)
	m.values[name] = value
}

// DeclareCommand registers a command flag. Commands start at "no" and are
// excluded from config dumps.
func (m *Map) DeclareCommand(name, help string) {
	m.declare(name, help, KindCommand)
	m.values[name] = "no"
}

// SetDefault registers the default value for a name. The first registered
// default wins; later calls for the same name are ignored.
func (m *Map) SetDefault(name, value string) {
	if _, exists := m.defaults[name]; !exists {
		m.defaults[name] = value
	}
}

// SetDefaults bulk-registers a default, from the current value, for every
// declared name that does not have one yet. Call it after the declaration
// phase and before parsing overrides.
func (m *Map) SetDefaults() {
	for name, value := range m.values {
		if _, exists := m.defaults[name]; !exists {
			m.defaults[name] = value
		}
	}
}

// IsSet reports whether name has been declared or assigned.
func (m *Map) IsSet(name string) bool {
	_, exists := m.values[name]
	return exists
}

// IsEmpty reports whether name is unset or holds the empty string.
func (m *Map) IsEmpty(name string) bool {
	return m.values[name] == ""
}

// Get returns the current value of a setting, or ErrNotFound if the name
// was never declared or assigned.
func (m *Map) Get(name string) (string, error) {
	value, exists := m.values[name]
	if !exists {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return value, nil
}

// List returns all known setting names, sorted.
func (m *Map) List() []string {
	names := make([]string, 0, len(m.values))
	for name := range m.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Contains treats the stored value as a comma/space/tab-separated list and
// reports whether val is a member. Unset or empty settings contain nothing.
func (m *Map) Contains(name, val string) bool {
	stored, exists := m.values[name]
	if !exists || stored == "" {
		return false
	}
	for _, part := range tokenize(stored, ", \t") {
		if part == val {
			return true
		}
	}
	return false
}

// MustDo interprets a setting as an on/off mode: anything other than "no"
// or "off" (including empty) counts as on. The name must be set.
func (m *Map) MustDo(name string) (bool, error) {
	value, err := m.Get(name)
	if err != nil {
		return false, err
	}
	return value != "no" && value != "off", nil
}

// Commands returns the positional tokens collected by the last Parse, in
// encounter order.
func (m *Map) Commands() []string {
	return m.commands
}

// Unknown returns a copy of the unknown-but-tolerated settings recorded so
// far. These accumulate across parse invocations.
func (m *Map) Unknown() map[string]string {
	out := make(map[string]string, len(m.unknown))
	for name, value := range m.unknown {
		out[name] = value
	}
	return out
}
