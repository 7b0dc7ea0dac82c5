package main

import (
	"fmt"
	"os"

	"github.com/onlyfix/admin/internal/interfaces/cli/admin"
	"github.com/onlyfix/admin/internal/interfaces/cli/devserver"
)

func main() {
	rootCmd := admin.NewRootCommand()
	rootCmd.AddCommand(devserver.NewCommand())

	if err := rootCmd.Execute(); err != nil {
		if !admin.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
