// Command pchords prints one random jazz chord label.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/pchords/internal/cli"
	"github.com/roach88/pchords/internal/rng"
)

func main() {
	cmd := cli.NewRootCommand(&cli.RootOptions{Seeder: rng.TimeSeeder{}})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
