// Package flagutil binds the conventional console-output flags
// (-v/--verbose counted, -q/--quiet, --silent, --color) to a pflag
// FlagSet and turns the parsed values into a configured clout Builder,
// eliminating duplicated flag boilerplate in host CLIs.
package flagutil

import (
	"github.com/spf13/pflag"

	"github.com/jongio/clout"
)

// Options holds the parsed values of the standard output flags.
type Options struct {
	Verbosity int
	Quiet     bool
	Silent    bool
	Color     string
}

// Register declares the standard output flags on the given FlagSet,
// typically a root cobra command's persistent flags.
func (o *Options) Register(flags *pflag.FlagSet) {
	flags.CountVarP(&o.Verbosity, "verbose", "v", "increase output verbosity (-v, -vv, -vvv)")
	flags.BoolVarP(&o.Quiet, "quiet", "q", false, "only show errors")
	flags.BoolVar(&o.Silent, "silent", false, "suppress all output, even errors")
	flags.StringVar(&o.Color, "color", "auto", "when to color output (auto, never, always)")
}

// Builder converts the parsed flag values into a clout Builder. Quiet
// and silent are applied after verbosity so they win when set, matching
// the usual CLI expectation that -q beats -vv.
func (o *Options) Builder() (clout.Builder, error) {
	mode, err := clout.ParseColorMode(o.Color)
	if err != nil {
		return clout.Builder{}, err
	}
	return clout.Init().
		WithVerbosity(o.Verbosity).
		WithQuiet(o.Quiet).
		WithSilent(o.Silent).
		WithColorMode(mode), nil
}

// Apply builds and installs the output state in one step. It returns
// the flag parsing or installation error, if any.
func (o *Options) Apply() error {
	b, err := o.Builder()
	if err != nil {
		return err
	}
	return b.Done()
}
