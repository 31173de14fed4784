package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fhirfactory/hestia-task/internal/models"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Print the stored task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.tasks.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(task)
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		params models.TaskSearchParams
		order  string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Print the tasks matching every given attribute, one document per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Direction = models.Direction(order)
			bodies, err := a.tasks.Search(cmd.Context(), params)
			if err != nil {
				return err
			}
			for _, b := range bodies {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&params.Status, "status", "", "task status code")
	fs.StringVar(&params.Location, "location", "", "location reference")
	fs.StringVar(&params.Code, "code", "", "code text")
	fs.StringVar(&params.PartOf, "part-of", "", "parent task reference")
	fs.StringVar(&params.BasedOn, "based-on", "", "request reference")
	fs.StringVar(&params.Owner, "owner", "", "owner reference")
	fs.StringVar(&params.Focus, "focus", "", "focus reference")
	fs.StringVar(&params.Limit, "limit", "", "maximum number of results")
	fs.StringVar(&order, "order", "", "asc or desc, applies with --limit")

	return cmd
}
