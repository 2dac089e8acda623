// File: vrsarin/argmap/errors.go
package argmap

import "errors"

// Every failure the registry can produce wraps one of these sentinels, so
// callers can classify with errors.Is while still getting a message that
// names the offending setting.
var (
	// ErrNotFound is returned when a value or accessor lookup names a
	// setting that was never declared or assigned.
	ErrNotFound = errors.New("undefined but needed argument")

	// ErrUnknownSetting is returned when a non-lax parse assigns to an
	// undeclared name that is not on the ignore-unknown-settings list.
	ErrUnknownSetting = errors.New("trying to set unknown setting")

	// ErrIncrementalWithoutParent is returned when a += assignment targets
	// a name with no existing value and no direct assignment earlier in
	// the same parse invocation.
	ErrIncrementalWithoutParent = errors.New("incremental setting without a parent")

	// ErrMalformedValue is returned when a typed accessor cannot parse the
	// stored string as the requested numeric form.
	ErrMalformedValue = errors.New("malformed value")

	// ErrIdentityResolution is returned when a uid/gid accessor fails both
	// the numeric parse and the user/group name lookup.
	ErrIdentityResolution = errors.New("identity resolution failed")

	// ErrMissingDefault is returned when a full config dump is requested
	// while a declared non-command setting has no registered default.
	ErrMissingDefault = errors.New("default for setting not set")

	// ErrDirectoryInaccessible is returned when the include directory
	// cannot be read, or an entry matching the include suffix is not a
	// regular parseable file.
	ErrDirectoryInaccessible = errors.New("include directory inaccessible")
)
