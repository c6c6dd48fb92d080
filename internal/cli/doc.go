// Package cli defines the ttop command-line interface.
//
// The root command starts the dashboard directly; subcommands cover
// version info, config generation (init), and shell completion. Flags
// --plain, --no-color, and --config adjust how the dashboard renders,
// never what it samples.
package cli
