// Command quillcheck runs the Quill declaration checkers over a resolved
// declaration tree description and prints the resulting diagnostics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

func main() {
	root := &cobra.Command{
		Use:           "quillcheck",
		Short:         "Declaration checks for the Quill front end",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the quillcheck version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("quillcheck %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "quillcheck: %v\n", err)
		os.Exit(1)
	}
}
