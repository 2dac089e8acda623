// FILE: vrsarin/argmap/file.go
package argmap

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// IncludeSuffix is the filename suffix include-dir expansion matches,
// ASCII case-insensitively.
const IncludeSuffix = ".conf"

// ParseFile reads a configuration file line by line and feeds each logical
// line to the parser as if it were a --name=value argument. A line ending
// in a backslash continues onto the next physical line. Comments start at
// a # that is the first character or preceded by whitespace.
//
// A file that cannot be opened yields (false, nil); the caller decides
// whether that is fatal. Parse failures inside an opened file are errors.
// When only is non-empty, just that one setting is extracted.
func (m *Map) ParseFile(fname, only string, lax bool) (bool, error) {
	f, err := os.Open(fname)
	if err != nil {
		return false, nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Values such as large SQL query settings run well past the default
	// 64 KiB token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var line string
	for scanner.Scan() {
		pline := strings.TrimRight(scanner.Text(), " \t\r\n")

		if strings.HasSuffix(pline, `\`) {
			line += pline[:len(pline)-1]
			continue
		}
		line += pline

		line = stripComment(line)
		line = strings.TrimRight(line, " \t\r\n")
		line = strings.TrimLeft(line, " \t\r\n")

		if err := m.parseOne("--"+line, only, lax); err != nil {
			return true, err
		}
		line = ""
	}
	if err := scanner.Err(); err != nil {
		return true, fmt.Errorf("reading %s: %w", fname, err)
	}
	return true, nil
}

// PreParseFile seeds name with a default value and extracts only that
// setting from the file. Used to read an early directive such as
// include-dir before the main pass.
func (m *Map) PreParseFile(fname, name, def string) (bool, error) {
	m.values[name] = def
	return m.ParseFile(fname, name, false)
}

// File parses a configuration file and then, for a top-level file, expands
// include-dir: every regular *.conf file in that directory is parsed as an
// included file. Included files never re-trigger include-dir expansion.
//
// A missing file returns (false, nil); an unreadable include directory or
// an unparseable included file is an error.
func (m *Map) File(fname string, lax bool) (bool, error) {
	return m.file(fname, lax, false)
}

func (m *Map) file(fname string, lax bool, included bool) (bool, error) {
	if !m.IsSet("include-dir") {
		m.declare("include-dir", "Directory to include configuration files from", KindValue)
	}

	ok, err := m.ParseFile(fname, "", lax)
	if err != nil {
		return ok, err
	}
	if !ok {
		m.log.Warn("unable to open file", "name", fname)
		return false, nil
	}

	if !included && m.values["include-dir"] != "" {
		extras, err := m.gatherIncludes(m.values["include-dir"], IncludeSuffix)
		if err != nil {
			return false, err
		}
		for _, extra := range extras {
			ok, err := m.file(extra, lax, true)
			if err != nil {
				return false, err
			}
			if !ok {
				m.log.Error("unable to parse config file", "name", extra)
				return false, fmt.Errorf("%w: %s could not be parsed", ErrDirectoryInaccessible, extra)
			}
		}
	}
	return true, nil
}

// gatherIncludes lists the regular files in directory whose names end with
// suffix, sorted with the locale-independent case-fold comparator. Dot
// files are skipped. A matching entry that is not a regular file is fatal.
func (m *Map) gatherIncludes(directory, suffix string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		m.log.Error("directory is not accessible", "name", directory, "error", err)
		return nil, fmt.Errorf("%w: %s is not accessible: %v", ErrDirectoryInaccessible, directory, err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !hasSuffixFold(name, suffix) {
			continue
		}
		full := filepath.Join(directory, name)
		info, err := os.Stat(full)
		if err != nil || !info.Mode().IsRegular() {
			m.log.Error("unable to open non-regular file", "name", full)
			return nil, fmt.Errorf("%w: %s is not a regular file", ErrDirectoryInaccessible, full)
		}
		files = append(files, full)
	}

	sort.Slice(files, func(i, j int) bool { return ciLess(files[i], files[j]) })
	return files, nil
}

// stripComment truncates line at the first # that either starts the line
// or follows whitespace. A # embedded in a value token is preserved.
func stripComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if i == 0 || unicode.IsSpace(rune(line[i-1])) {
			return line[:i]
		}
	}
	return line
}
