// File: vrsarin/argmap/doc.go

// Package argmap provides a runtime argument/settings registry that merges
// compiled-in defaults, configuration-file directives, and command-line
// arguments into a single string-typed key/value map with deterministic
// precedence, typed accessors, and introspection (help text and config dumps).
//
// Features:
//   - One map of setting name -> current value, with separate default,
//     help-text, and kind (value / switch / command) metadata
//   - Line-oriented config files with backslash continuation, comment
//     stripping, and include-dir expansion of *.conf files
//   - CLI overlay with --name=value, --name+=value (incremental append),
//     --name / -name switch forms, and positional command collection
//   - Unknown-setting allow-list (ignore-unknown-settings)
//   - Typed accessors with strict parse validation: numbers, doubles,
//     octal file modes, uid/gid with user/group name resolution fallback
//   - Re-parseable config dumps (template, live snapshot, changed-only
//     diff) plus TOML export and struct decoding
//
// Quick Start:
//
//	m := argmap.New()
//	m.Declare("local-port", "Port to listen on", "53")
//	m.DeclareSwitch("daemon", "Run in the background", "no")
//	m.SetDefaults()
//
//	if ok, err := m.File("/etc/myapp/myapp.conf", false); err != nil {
//	    log.Fatal(err)
//	} else if !ok {
//	    // missing file: the caller decides whether that is fatal
//	}
//	if err := m.Parse(os.Args[1:], false); err != nil {
//	    log.Fatal(err)
//	}
//
//	port, err := m.AsNum("local-port", 53)
//
// Precedence (highest to lowest):
//  1. Command-line arguments (--local-port=5300)
//  2. Configuration file and include-dir files, in parse order
//  3. Declared initial values
//
// Thread Safety:
// The registry is single-threaded by contract. All parsing is expected to
// run during process startup; uid/gid name resolution in particular must
// happen before the process goes multi-threaded. Once parsing is complete,
// concurrent reads are safe as long as no further mutation occurs.
package argmap
