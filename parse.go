package argmap

import (
	"fmt"
	"strings"
)

// deprecatedSettings maps retired names to their replacement. Two entries
// point at a protocol feature rather than a setting; the warning text
// carries them verbatim.
var deprecatedSettings = map[string]string{
	"stats-api-blacklist":         "stats-api-disabled-list",
	"stats-carbon-blacklist":      "stats-carbon-disabled-list",
	"stats-rec-control-blacklist": "stats-rec-control-disabled-list",
	"stats-snmp-blacklist":        "stats-snmp-disabled-list",
	"edns-subnet-whitelist":       "edns-subnet-allow-list",
	"new-domain-whitelist":        "new-domain-ignore-list",
	"snmp-master-socket":          "snmp-daemon-socket",
	"xpf-allow-from":              "Proxy Protocol",
	"xpf-rr-code":                 "Proxy Protocol",
}

// DeprecatedHint returns the replacement for a retired setting name, or ""
// if the name is current.
func (m *Map) DeprecatedHint(name string) string {
	return deprecatedSettings[name]
}

func (m *Map) warnIfDeprecated(name string) {
	if alt, ok := deprecatedSettings[name]; ok {
		m.log.Warn("option is deprecated and will be removed in a future release",
			"deprecatedName", name, "alternative", alt)
	}
}

// Parse overlays command-line arguments onto the registry. It resets the
// per-invocation cleared set and the command list, then applies each token
// in order. In lax mode unknown and deprecated settings are tolerated
// silently.
func (m *Map) Parse(args []string, lax bool) error {
	m.commands = m.commands[:0]
	m.cleared = make(map[string]struct{})
	for _, arg := range args {
		if err := m.parseOne(arg, "", lax); err != nil {
			return err
		}
	}
	return nil
}

// PreParse applies only the arguments naming the given setting, before a
// full parse. It is used to extract early settings such as the config or
// include directory location.
func (m *Map) PreParse(args []string, name string) error {
	prefix := "--" + name
	for _, arg := range args {
		if strings.HasPrefix(arg, prefix) {
			if err := m.parseOne(arg, "", false); err != nil {
				return err
			}
		}
	}
	return nil
}

// ParseOne applies a single argument token with full (non-lax) checking.
func (m *Map) ParseOne(arg string) error {
	return m.parseOne(arg, "", false)
}

// parseOne recognizes, in priority order: --name+=value, --name=value,
// --name, -name (length > 1), and otherwise appends the token to the
// command list. When only is non-empty, every other setting name is
// skipped entirely.
func (m *Map) parseOne(arg, only string, lax bool) error {
	var name, value string
	incremental := false

	switch {
	case strings.HasPrefix(arg, "--") && strings.Contains(arg, "+="):
		pos := strings.Index(arg, "+=")
		name = arg[2:pos]
		value = arg[pos+2:]
		incremental = true
	case strings.HasPrefix(arg, "--") && strings.Contains(arg, "="):
		pos := strings.Index(arg, "=")
		name = arg[2:pos]
		value = arg[pos+1:]
	case strings.HasPrefix(arg, "--"):
		name = arg[2:]
	case strings.HasPrefix(arg, "-") && len(arg) > 1:
		name = arg[1:]
	default:
		m.commands = append(m.commands, arg)
		return nil
	}

	name = strings.TrimSpace(name)
	if name == "" || (only != "" && name != only) {
		return nil
	}

	if !lax {
		m.warnIfDeprecated(name)
	}
	value = stripLeadingSpace(value)

	if _, declared := m.values[name]; declared {
		if incremental {
			if m.values[name] == "" {
				if _, wasCleared := m.cleared[name]; !wasCleared {
					return fmt.Errorf("%w: %q", ErrIncrementalWithoutParent, name)
				}
				m.values[name] = value
			} else {
				m.values[name] += ", " + value
			}
		} else {
			m.values[name] = value
			m.cleared[name] = struct{}{}
		}
		return nil
	}

	// Unknown setting: check the ignore list before failing.
	for _, tok := range tokenize(m.values["ignore-unknown-settings"], " ,\t\n\r") {
		if tok == name {
			m.unknown[name] = value
			m.log.Warn("ignoring unknown setting as requested", "name", name)
			return nil
		}
	}

	if !lax {
		return fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}
	return nil
}
