package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fhirfactory/hestia-task/internal/models"
	"github.com/fhirfactory/hestia-task/internal/services"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Store every task of a Bundle or JSON array, - reads stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			srv := services.NewImportService(a.tasks, a.cfg.Import.NumWorkers)
			summary, err := srv.Import(cmd.Context(), r)
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), summary)
			if summary.Bad+summary.Failed > 0 {
				return fmt.Errorf("%d of %d tasks were not stored", summary.Bad+summary.Failed, summary.Total())
			}
			return nil
		},
	}
}

func printSummary(w io.Writer, s *services.ImportSummary) {
	good := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgYellow).SprintFunc()
	failed := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(w, "imported %d tasks: %s good, %s bad, %s failed\n",
		s.Total(), good(s.Good), bad(s.Bad), failed(s.Failed))

	for _, f := range s.Failures {
		mark := bad
		if f.Outcome != models.StoreOutcomeBad {
			mark = failed
		}
		id := f.ID
		if id == "" {
			id = "(no id)"
		}
		fmt.Fprintf(w, "  %s #%d %s: %v\n", mark(f.Outcome), f.Index, id, f.Err)
	}
}
