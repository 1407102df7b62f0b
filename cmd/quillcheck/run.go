package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/internal/checkers"
	"github.com/quill-lang/quill/internal/config"
	"github.com/quill-lang/quill/internal/declfile"
	"github.com/quill-lang/quill/internal/diag"
)

// errDiagnostics signals a clean exit with status 1 after diagnostics were
// already printed.
var errDiagnostics = errors.New("diagnostics reported")

func newRunCmd() *cobra.Command {
	var (
		configPath      string
		languageVersion string
		noColor         bool
		jobs            int
	)

	cmd := &cobra.Command{
		Use:   "run <tree.yaml>",
		Short: "Check a declaration tree and print diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if languageVersion != "" {
				v, err := config.ParseVersion(languageVersion)
				if err != nil {
					return err
				}
				cfg.LanguageVersion = v
			}

			file, graphs, err := declfile.Load(args[0])
			if err != nil {
				return err
			}

			bag := cfg.NewBag()
			checker := checkers.NewChecker(graphs, cfg, bag)
			if jobs > 1 {
				if err := checker.CheckFileConcurrent(cmd.Context(), file, jobs); err != nil {
					return err
				}
			} else {
				checker.CheckFile(file)
			}
			bag.SortBySpan()

			formatter := diag.NewFormatter(os.Stderr, !noColor)
			formatter.FormatAll(bag)

			n := len(bag.Diagnostics())
			slog.Debug("check complete", "tree", args[0], "diagnostics", n)
			if bag.HasErrors() {
				fmt.Fprintf(os.Stderr, "\n%d diagnostic(s) reported\n", n)
				return errDiagnostics
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a quillcheck config file")
	cmd.Flags().StringVar(&languageVersion, "language-version", "", "override the language version (MAJOR.MINOR)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "number of classes checked in parallel")
	return cmd
}
