// File: vrsarin/argmap/cmd/argdump/main.go
// argdump is a demonstration front end for the argmap registry. It declares
// a small server-style setting set, layers a config file and command-line
// overrides on top with the registry's own --name=value dialect, and prints
// help text or one of the config-dump renderings.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vrsarin/argmap"
)

var (
	warnPrefix  = color.New(color.FgYellow).SprintFunc()
	errorPrefix = color.New(color.FgRed).SprintFunc()
	infoPrefix  = color.New(color.FgBlue).SprintFunc()
)

// colorLogger prints the registry's structured warnings with color-coded
// prefixes, one key=value pair per field.
type colorLogger struct{}

func (colorLogger) Info(msg string, args ...any) {
	fmt.Fprintln(os.Stderr, infoPrefix("[INFO]")+" "+msg+fields(args))
}

func (colorLogger) Warn(msg string, args ...any) {
	fmt.Fprintln(os.Stderr, warnPrefix("[WARN]")+" "+msg+fields(args))
}

func (colorLogger) Error(msg string, args ...any) {
	fmt.Fprintln(os.Stderr, errorPrefix("[ERROR]")+" "+msg+fields(args))
}

func fields(args []any) string {
	out := ""
	for i := 0; i+1 < len(args); i += 2 {
		out += fmt.Sprintf(" %v=%v", args[i], args[i+1])
	}
	return out
}

// declareSettings registers the demo application's settings.
func declareSettings(m *argmap.Map) {
	m.Declare("config", "Location of configuration file to read", "")
	m.Declare("local-address", "Local IP address to bind to", "0.0.0.0")
	m.Declare("local-port", "The port on which to listen", "53")
	m.Declare("max-queries", "Maximum number of concurrent queries", "1000")
	m.Declare("carbon-interval", "Seconds between carbon updates", "30")
	m.Declare("load-factor", "Target load factor before shedding", "0.9")
	m.Declare("socket-mode", "Permissions for the control socket", "0640")
	m.Declare("setuid", "Change user id to this uid/user after binding", "")
	m.Declare("setgid", "Change group id to this gid/group after binding", "")
	m.Declare("allow-from", "Netmasks that may use the service", "127.0.0.0/8")
	m.DeclareSwitch("daemon", "Operate as a daemon", "no")
	m.DeclareCommand("list", "List all known settings and exit")
}

// load builds the fully merged registry from a config file (found via a
// pre-parse of --config) and the remaining arguments.
func load(args []string) (*argmap.Map, error) {
	probe := argmap.New()
	probe.SetLogger(colorLogger{})
	declareSettings(probe)
	if err := probe.PreParse(args, "config"); err != nil {
		return nil, err
	}
	file, err := probe.Get("config")
	if err != nil {
		return nil, err
	}

	return argmap.NewBuilder().
		WithLogger(colorLogger{}).
		WithSetup(declareSettings).
		WithFile(file).
		WithArgs(args).
		Build()
}

func newDumpCommand(use, short string, render func(*argmap.Map) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true, // overrides use the registry's own dialect
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := load(args)
			if err != nil {
				return err
			}
			if listAll, _ := m.MustDo("list"); listAll {
				for _, name := range m.List() {
					fmt.Println(name)
				}
				return nil
			}
			out, err := render(m)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "argdump",
		Short:         "Inspect the effective configuration of the argmap demo settings",
		Long:          "argdump declares a demo setting set, merges a config file and\n--name=value overrides, and prints help text or a config dump.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newDumpCommand("template", "Print a commented config-file template with defaults",
			func(m *argmap.Map) (string, error) { return m.ConfigString(false, false) }),
		newDumpCommand("current", "Print the live configuration, defaults commented out",
			func(m *argmap.Map) (string, error) { return m.ConfigString(true, false) }),
		newDumpCommand("diff", "Print only settings that differ from their default",
			func(m *argmap.Map) (string, error) { return m.ConfigString(true, true) }),
		newDumpCommand("helptext", "Print help for every declared setting",
			func(m *argmap.Map) (string, error) { return m.HelpText(""), nil }),
		newDumpCommand("toml", "Print the effective settings as a TOML document",
			func(m *argmap.Map) (string, error) {
				var b strings.Builder
				if err := m.ExportTOML(&b); err != nil {
					return "", err
				}
				return b.String(), nil
			}),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorPrefix("[ERROR]")+" "+err.Error())
		os.Exit(1)
	}
}
