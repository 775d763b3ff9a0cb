package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yanqian/convertia/internal/domain/conversion"
)

func unitsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "units [category]",
		Short: "List the units of one category, or of all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			infos := opts.svc.Categories(ctx)
			if len(args) == 1 {
				info, err := opts.svc.Units(ctx, args[0])
				if err != nil {
					return err
				}
				infos = []conversion.CategoryInfo{info}
			}
			return printUnits(cmd.OutOrStdout(), infos)
		},
	}
}

func categoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the supported categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, info := range opts.svc.Categories(cmd.Context()) {
				fmt.Fprintf(out, "%s\t%s\n", info.Category, info.Title)
			}
			return nil
		},
	}
}

func printUnits(out io.Writer, infos []conversion.CategoryInfo) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, info := range infos {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, bold("%s", info.Title))
		for _, u := range info.Units {
			marker := ""
			switch u.ID {
			case info.DefaultFrom:
				marker = "(default from)"
			case info.DefaultTo:
				marker = "(default to)"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", u.ID, u.Symbol, u.Name, marker)
		}
	}
	return w.Flush()
}
