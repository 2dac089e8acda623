// FILE: vrsarin/argmap/argmap_test.go
package argmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordLogger captures structured log calls for assertions.
type recordLogger struct {
	infos  []string
	warns  []string
	errors []string
}

func render(msg string, args []any) string {
	for i := 0; i+1 < len(args); i += 2 {
		msg += fmt.Sprintf(" %v=%v", args[i], args[i+1])
	}
	return msg
}

func (r *recordLogger) Info(msg string, args ...any)  { r.infos = append(r.infos, render(msg, args)) }
func (r *recordLogger) Warn(msg string, args ...any)  { r.warns = append(r.warns, render(msg, args)) }
func (r *recordLogger) Error(msg string, args ...any) { r.errors = append(r.errors, render(msg, args)) }

func TestDeclareAndGet(t *testing.T) {
	m := New()

	t.Run("SelfRegisteredIgnoreList", func(t *testing.T) {
		value, err := m.Get("ignore-unknown-settings")
		require.NoError(t, err)
		assert.Equal(t, "", value)
		assert.True(t, m.IsSet("ignore-unknown-settings"))
	})

	t.Run("DeclaredValue", func(t *testing.T) {
		m.Declare("local-port", "The port on which to listen", "53")
		value, err := m.Get("local-port")
		require.NoError(t, err)
		assert.Equal(t, "53", value)
	})

	t.Run("UndeclaredIsNotFound", func(t *testing.T) {
		_, err := m.Get("nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.False(t, m.IsSet("nonexistent"))
	})

	t.Run("CommandDefaultsToNo", func(t *testing.T) {
		m.DeclareCommand("list", "List all settings")
		value, err := m.Get("list")
		require.NoError(t, err)
		assert.Equal(t, "no", value)
	})

	t.Run("RedeclareKeepsMetadata", func(t *testing.T) {
		m.Declare("local-port", "Changed help", "5300")
		value, err := m.Get("local-port")
		require.NoError(t, err)
		assert.Equal(t, "5300", value)
		// First declaration's help text wins.
		assert.Contains(t, m.HelpText("local-port"), "The port on which to listen")
	})
}

func TestIsEmpty(t *testing.T) {
	m := New()
	m.Declare("empty", "An empty setting", "")
	m.Declare("filled", "A filled setting", "x")

	assert.True(t, m.IsEmpty("empty"))
	assert.False(t, m.IsEmpty("filled"))
	assert.True(t, m.IsEmpty("never-declared"))
}

func TestList(t *testing.T) {
	m := New()
	m.Declare("zeta", "", "")
	m.Declare("alpha", "", "")

	names := m.List()
	assert.Contains(t, names, "alpha")
	assert.Contains(t, names, "zeta")
	assert.Contains(t, names, "ignore-unknown-settings")
	assert.IsIncreasing(t, names)
}

func TestContains(t *testing.T) {
	m := New()
	m.Declare("allow-from", "ACL", "127.0.0.1, 10.0.0.1\tlocalhost")

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"comma separated member", "127.0.0.1", true},
		{"tab separated member", "localhost", true},
		{"space separated member", "10.0.0.1", true},
		{"non-member", "192.168.0.1", false},
		{"substring is not a member", "127.0.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Contains("allow-from", tt.candidate))
		})
	}

	t.Run("EmptyValueContainsNothing", func(t *testing.T) {
		m.Declare("empty", "", "")
		assert.False(t, m.Contains("empty", "anything"))
	})

	t.Run("UnsetContainsNothing", func(t *testing.T) {
		assert.False(t, m.Contains("never-declared", "anything"))
	})
}

func TestMustDo(t *testing.T) {
	m := New()
	m.DeclareSwitch("daemon", "Operate as a daemon", "no")
	m.DeclareSwitch("guardian", "Run within a guardian", "off")
	m.DeclareSwitch("cache", "Enable the cache", "yes")
	m.DeclareSwitch("implicit", "Empty counts as on", "")

	for name, want := range map[string]bool{
		"daemon":   false,
		"guardian": false,
		"cache":    true,
		"implicit": true,
	} {
		got, err := m.MustDo(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, "MustDo(%q)", name)
	}

	_, err := m.MustDo("never-declared")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDefaults(t *testing.T) {
	t.Run("SetDefaultFirstWriteWins", func(t *testing.T) {
		m := New()
		m.Declare("x", "", "1")
		m.SetDefault("x", "2")
		m.SetDefault("x", "3")

		doc, err := m.ConfigString(false, false)
		require.NoError(t, err)
		assert.Contains(t, doc, "# x=2\n")
	})

	t.Run("SetDefaultsFromCurrentValues", func(t *testing.T) {
		m := New()
		m.Declare("a", "help a", "va")
		m.Declare("b", "help b", "vb")
		m.SetDefault("a", "pre")
		m.SetDefaults()

		doc, err := m.ConfigString(false, false)
		require.NoError(t, err)
		assert.Contains(t, doc, "# a=pre\n")
		assert.Contains(t, doc, "# b=vb\n")
	})
}

func TestDeprecatedHint(t *testing.T) {
	m := New()
	assert.Equal(t, "stats-api-disabled-list", m.DeprecatedHint("stats-api-blacklist"))
	assert.Equal(t, "Proxy Protocol", m.DeprecatedHint("xpf-allow-from"))
	assert.Equal(t, "Proxy Protocol", m.DeprecatedHint("xpf-rr-code"))
	assert.Equal(t, "", m.DeprecatedHint("local-port"))
}
