// FILE: vrsarin/argmap/dump_test.go
package argmap

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDumpMap(t *testing.T) *Map {
	t.Helper()
	m := New()
	m.Declare("local-port", "The port on which to listen", "53")
	m.Declare("local-address", "Local IP address to bind to", "0.0.0.0")
	m.DeclareSwitch("daemon", "Operate as a daemon", "no")
	m.DeclareCommand("list", "List all settings")
	m.SetDefaults()
	return m
}

func TestHelpText(t *testing.T) {
	m := newDumpMap(t)

	t.Run("ValueSetting", func(t *testing.T) {
		help := m.HelpText("")
		assert.Contains(t, help, "  --local-port=...\n\tThe port on which to listen\n")
	})

	t.Run("SwitchShowsBothForms", func(t *testing.T) {
		help := m.HelpText("")
		assert.Contains(t, help, "  --daemon | --daemon=yes | --daemon=no\n\tOperate as a daemon\n")
	})

	t.Run("PrefixFilters", func(t *testing.T) {
		help := m.HelpText("local-")
		assert.Contains(t, help, "--local-port")
		assert.Contains(t, help, "--local-address")
		assert.NotContains(t, help, "--daemon")
	})

	t.Run("NoPrefixMeansAll", func(t *testing.T) {
		assert.Equal(t, m.HelpText(""), m.HelpText("no"))
	})
}

func TestConfigStringTemplate(t *testing.T) {
	m := newDumpMap(t)

	doc, err := m.ConfigString(false, false)
	require.NoError(t, err)

	t.Run("Banner", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(doc, "# Autogenerated configuration file template\n\n"))
	})

	t.Run("IgnoreUnknownSettingsFirst", func(t *testing.T) {
		first := strings.Index(doc, "ignore-unknown-settings")
		other := strings.Index(doc, "local-port")
		require.GreaterOrEqual(t, first, 0)
		require.GreaterOrEqual(t, other, 0)
		assert.Less(t, first, other)
	})

	t.Run("DefaultsCommentedWithHelp", func(t *testing.T) {
		assert.Contains(t, doc, "# local-port\tThe port on which to listen\n")
		assert.Contains(t, doc, "# local-port=53\n")
	})

	t.Run("CommandsExcluded", func(t *testing.T) {
		assert.NotContains(t, doc, "list=")
		assert.NotContains(t, doc, "# list\t")
	})
}

func TestConfigStringRunning(t *testing.T) {
	t.Run("ChangedValueUncommented", func(t *testing.T) {
		m := newDumpMap(t)
		require.NoError(t, m.Parse([]string{"--local-port=25"}, false))

		doc, err := m.ConfigString(true, false)
		require.NoError(t, err)
		assert.Contains(t, doc, "\nlocal-port=25\n")
		assert.Contains(t, doc, "# local-address=0.0.0.0\n") // default stays commented
	})

	t.Run("FullShowsOnlyChanged", func(t *testing.T) {
		m := newDumpMap(t)
		require.NoError(t, m.Parse([]string{"--local-port=25"}, false))

		doc, err := m.ConfigString(true, true)
		require.NoError(t, err)
		assert.Contains(t, doc, "local-port=25\n")
		assert.NotContains(t, doc, "local-address=")
	})

	t.Run("RunningBannerHasTimestamp", func(t *testing.T) {
		m := newDumpMap(t)
		doc, err := m.ConfigString(true, false)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(doc, "# Autogenerated configuration file based on running instance ("))
	})

	t.Run("UnknownSettingsAppended", func(t *testing.T) {
		m := newDumpMap(t)
		require.NoError(t, m.Parse([]string{"--ignore-unknown-settings=foo", "--foo=1"}, false))

		doc, err := m.ConfigString(true, false)
		require.NoError(t, err)
		assert.Contains(t, doc, "# foo\tunknown setting\n")
		assert.Contains(t, doc, "\nfoo=1\n")

		full, err := m.ConfigString(true, true)
		require.NoError(t, err)
		assert.Contains(t, full, "foo=1\n")
	})

	t.Run("MissingDefaultIsFatal", func(t *testing.T) {
		m := New()
		m.Declare("no-default", "A setting without a default", "x")

		_, err := m.ConfigString(false, false)
		assert.ErrorIs(t, err, ErrMissingDefault)
		assert.Contains(t, err.Error(), "no-default")
	})
}

// Parsing a running dump back through the file loader must reproduce the
// same effective values.
func TestConfigStringRoundTrip(t *testing.T) {
	m := newDumpMap(t)
	require.NoError(t, m.Parse([]string{"--local-port=25", "--daemon=yes"}, false))

	doc, err := m.ConfigString(true, false)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "roundtrip.conf")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	m2 := newDumpMap(t)
	ok, err := m2.File(path, false)
	require.NoError(t, err)
	require.True(t, ok)

	for _, name := range []string{"local-port", "local-address", "daemon", "ignore-unknown-settings"} {
		want, err := m.Get(name)
		require.NoError(t, err)
		got, err := m2.Get(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, "setting %q", name)
	}
}

func TestExportTOML(t *testing.T) {
	m := newDumpMap(t)
	require.NoError(t, m.Parse([]string{"--local-port=25"}, false))

	var buf bytes.Buffer
	require.NoError(t, m.ExportTOML(&buf))

	decoded := make(map[string]string)
	_, err := toml.Decode(buf.String(), &decoded)
	require.NoError(t, err)

	assert.Equal(t, "25", decoded["local-port"])
	assert.Equal(t, "no", decoded["daemon"])
	_, hasCommand := decoded["list"]
	assert.False(t, hasCommand)
}

func TestWriteConfig(t *testing.T) {
	m := newDumpMap(t)
	path := filepath.Join(t.TempDir(), "dump.conf")

	require.NoError(t, m.WriteConfig(path, false, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Autogenerated configuration file template")

	t.Run("MissingDefaultPropagates", func(t *testing.T) {
		bad := New()
		bad.Declare("no-default", "", "x")
		err := bad.WriteConfig(path, false, false)
		assert.ErrorIs(t, err, ErrMissingDefault)
	})
}
