package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ┌─┐┌─┐┌┬┐
  ║  │ ││ ││││
  ╩═╝└─┘└─┘┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "loom",
		Short: "Fine-grained reactive UIs in Go",
		Long: `Loom builds UIs from signals and single-facet bindings.

The showcase app demonstrates the core: counters, derived values,
reactive attributes, classes, styles and raw HTML injection.

  • loom dev      serve the showcase with a live patch stream
  • loom export   write the showcase as static HTML
  • loom deploy   publish an export to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		devCmd(),
		exportCmd(),
		deployCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the loom ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
