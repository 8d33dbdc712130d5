// Package cli implements the pchords command.
//
// The command has no subcommands and no flags. It seeds a generator, renders
// one chord line to stdout and exits. Diagnostics are logged with log/slog to
// stderr at Debug level, so a normal run writes nothing there.
package cli
