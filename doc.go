// Package clout provides leveled, colored console output for command
// line tools.
//
// It offers a logging-style API with a different focus: output is
// opinionated rather than pluggable, always goes to one stream (stdout
// by default), and is meant for messages the end user should see. Many
// libraries already log through a logging framework, and those records
// are rarely what you want on a user's terminal; clout lets a CLI emit
// user-facing messages without filtering library noise, and can be used
// alongside a logging framework that writes elsewhere.
//
// clout includes a Status level between Warn and Info, intended for
// most output. CLI tools conventionally offer three verbosity steps
// (-v, -vv, -vvv), and the usual logging levels only have two below
// Info; Status fills the gap.
//
// # Usage
//
// Configure once at startup, then emit from anywhere:
//
//	err := clout.Init().
//		WithVerbosity(verbose).
//		WithQuiet(quiet).
//		WithSilent(silent).
//		WithColorMode(clout.ColorAuto).
//		Done()
//	if err != nil {
//		// double initialization
//	}
//
//	clout.Status("deploying %s", name)
//	clout.Debug("request took %s", elapsed)
//
//	_ = clout.Shutdown()
//
// Emitting before Done panics; reconfiguring requires Shutdown first.
//
// # Levels and color
//
// Levels order Silent < Error < Warn < Status < Info < Debug < Trace.
// A message renders iff the configured threshold is at least its level.
// When color is enabled, errors render red bold, warnings yellow bold,
// info white, debug cyan and trace magenta; status messages are always
// unstyled. ColorAuto only colors interactive terminals, so piped
// output stays clean.
//
// All functions are safe for concurrent use; each message is written as
// one atomic style/write/reset sequence.
package clout
