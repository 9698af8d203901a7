package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/clout"
)

// NewCommand creates a version command that displays the tool's version
// info through the clout console, so it participates in the host's
// quiet/silent settings.
func NewCommand(info *Info) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				clout.Status("%s", info.Version)
				return
			}
			clout.Status("%s", info)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Only print the version number")
	return cmd
}
