// File: vrsarin/argmap/dump.go
package argmap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// HelpText renders one block per declared setting whose name starts with
// prefix ("no" or "" means all): the --name form, with =... for value
// settings and both =yes/=no forms for switches, followed by a
// tab-indented help line.
func (m *Map) HelpText(prefix string) string {
	if prefix == "no" {
		prefix = ""
	}

	var b strings.Builder
	for _, name := range m.sortedHelpNames() {
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}

		b.WriteString("  --")
		b.WriteString(name)

		switch m.kinds[name] {
		case KindValue:
			b.WriteString("=...")
		case KindSwitch:
			b.WriteString(" | --" + name + "=yes")
			b.WriteString(" | --" + name + "=no")
		}

		b.WriteString("\n\t")
		b.WriteString(m.helptext[name])
		b.WriteString("\n")
	}
	return b.String()
}

// formatOne renders a single setting for ConfigString. Not running is the
// commented template form; running without full is the annotated live
// snapshot (defaults commented out); running with full is the changed-only
// diff of bare assignment lines.
func formatOne(running, full bool, name, help, def, current string) string {
	var b strings.Builder

	if !running || !full {
		b.WriteString("#################################\n")
		b.WriteString("# ")
		b.WriteString(name)
		b.WriteString("\t")
		b.WriteString(help)
		b.WriteString("\n#\n")
	} else if def == current {
		// Changed-settings diff: unchanged entries vanish entirely.
		return ""
	}

	if !running || def == current {
		b.WriteString("# ")
	}

	if running {
		b.WriteString(name + "=" + current + "\n")
		if !full {
			b.WriteString("\n")
		}
	} else {
		b.WriteString(name + "=" + def + "\n\n")
	}

	return b.String()
}

// ConfigString renders a re-parseable configuration document.
//
// Not running: a commented template carrying defaults and full help.
// Running and not full: the live state, with lines equal to the default
// commented out. Running and full: only settings that differ from their
// default. ignore-unknown-settings always comes first since it affects how
// the rest of the file would parse; command settings are excluded; a
// running dump appends any tolerated unknown settings.
//
// Every declared non-command setting must have a registered default, or
// the result is ErrMissingDefault.
func (m *Map) ConfigString(running, full bool) (string, error) {
	var b strings.Builder

	if running {
		b.WriteString("# Autogenerated configuration file based on running instance (" +
			time.Now().Format(time.ANSIC) + ")\n\n")
	} else {
		b.WriteString("# Autogenerated configuration file template\n\n")
	}

	// Affects parsing, should come first.
	const ignore = "ignore-unknown-settings"
	b.WriteString(formatOne(running, full, ignore, m.helptext[ignore], m.defaults[ignore], m.values[ignore]))

	for _, name := range m.sortedHelpNames() {
		if m.kinds[name] == KindCommand || name == ignore {
			continue
		}
		def, ok := m.defaults[name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrMissingDefault, name)
		}
		b.WriteString(formatOne(running, full, name, m.helptext[name], def, m.values[name]))
	}

	if running {
		names := make([]string, 0, len(m.unknown))
		for name := range m.unknown {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(formatOne(running, full, name, "unknown setting", "", m.unknown[name]))
		}
	}

	return b.String(), nil
}

// ExportTOML writes the effective non-command settings as a TOML document.
// Values stay strings; the document is a machine-readable snapshot, not a
// config-file replacement.
func (m *Map) ExportTOML(w io.Writer) error {
	data := make(map[string]string, len(m.values))
	for name, value := range m.values {
		if m.kinds[name] == KindCommand {
			continue
		}
		data[name] = value
	}
	return toml.NewEncoder(w).Encode(data)
}

// WriteConfig atomically writes a ConfigString rendering to path.
func (m *Map) WriteConfig(path string, running, full bool) error {
	doc, err := m.ConfigString(running, full)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, []byte(doc))
}

// sortedHelpNames returns the names of all declared settings (those with
// help text), sorted.
func (m *Map) sortedHelpNames() []string {
	names := make([]string, 0, len(m.helptext))
	for name := range m.helptext {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// atomicWriteFile writes data via a temp file and rename in the target
// directory.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
