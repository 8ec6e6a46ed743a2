package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wealthpilot/wealthpilot"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore a JSON backup into the store" }
func (*importCmd) Usage() string {
	return `wp import -i <file>

  Restores a backup written by 'wp export'. Records present in the
  backup overwrite the stored ones; records absent from the backup are
  left untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Backup file to restore")
}

func (c *importCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "-i is required")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := wealthpilot.ImportBackup(OpenStore(), file); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring backup: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Backup restored")
	return subcommands.ExitSuccess
}
