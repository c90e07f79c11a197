package main

import (
	"fmt"
	"os"

	"github.com/fin-tools/tax-atlas/pkg/runtime/terminal"
	"github.com/fin-tools/tax-atlas/pkg/services/tax"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Planner: tax.NewEngine(tax.DefaultCatalog()),
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
