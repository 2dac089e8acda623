// File: vrsarin/argmap/accessor.go
package argmap

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
)

// IdentityResolver resolves user and group names to numeric ids. It is the
// capability behind the AsUID/AsGID name fallback; the underlying OS lookup
// is not guaranteed thread-safe, so resolution must happen during startup.
type IdentityResolver interface {
	LookupUserID(name string) (uint32, error)
	LookupGroupID(name string) (uint32, error)
}

// OSResolver resolves names through the operating system's user database.
type OSResolver struct{}

func (OSResolver) LookupUserID(name string) (uint32, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return 0, err
	}
	uid, err := strconv.ParseUint(u.Uid, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("non-numeric uid %q for user %q: %w", u.Uid, name, err)
	}
	return uint32(uid), nil
}

func (OSResolver) LookupGroupID(name string) (uint32, error) {
	g, err := user.LookupGroup(name)
	if err != nil {
		return 0, err
	}
	gid, err := strconv.ParseUint(g.Gid, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("non-numeric gid %q for group %q: %w", g.Gid, name, err)
	}
	return uint32(gid), nil
}

// AsNum returns the stored value parsed as an integer (base auto-detected,
// so "0x1f" and "0755" work). An empty stored value returns def; a missing
// setting is still ErrNotFound. "0" is a valid zero, an unparsable string
// is ErrMalformedValue.
func (m *Map) AsNum(name string, def int) (int, error) {
	value, err := m.Get(name)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q value %q is not a valid number", ErrMalformedValue, name, value)
	}
	return int(n), nil
}

// AsDouble returns the stored value parsed as a float. An empty value is
// 0.0, not an error.
func (m *Map) AsDouble(name string) (float64, error) {
	value, err := m.Get(name)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q value %q is not a valid double", ErrMalformedValue, name, value)
	}
	return f, nil
}

// AsMode returns the stored value parsed as an octal file mode.
func (m *Map) AsMode(name string) (os.FileMode, error) {
	value, err := m.Get(name)
	if err != nil {
		return 0, err
	}
	mode, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q contains invalid octal mode %q", ErrMalformedValue, name, value)
	}
	return os.FileMode(mode), nil
}

// AsUID returns the stored value as a numeric user id. A value that does
// not parse as a number is resolved as a user name; if that also fails the
// result is ErrIdentityResolution.
func (m *Map) AsUID(name string) (uint32, error) {
	value, err := m.Get(name)
	if err != nil {
		return 0, err
	}
	if uid, err := strconv.ParseUint(value, 0, 32); err == nil {
		return uint32(uid), nil
	}
	uid, err := m.resolver.LookupUserID(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q contains invalid user %q", ErrIdentityResolution, name, value)
	}
	return uid, nil
}

// AsGID returns the stored value as a numeric group id, falling back to
// group-name resolution the same way AsUID does.
func (m *Map) AsGID(name string) (uint32, error) {
	value, err := m.Get(name)
	if err != nil {
		return 0, err
	}
	if gid, err := strconv.ParseUint(value, 0, 32); err == nil {
		return uint32(gid), nil
	}
	gid, err := m.resolver.LookupGroupID(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q contains invalid group %q", ErrIdentityResolution, name, value)
	}
	return gid, nil
}
