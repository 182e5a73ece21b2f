package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/importglob/internal/cli"
	"github.com/arthur-debert/importglob/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorIndicator(), style.Render("[error]Error:[/error] "+err.Error()))
		os.Exit(1)
	}
}
