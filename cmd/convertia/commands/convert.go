package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yanqian/convertia/internal/domain/conversion"
	apperrors "github.com/yanqian/convertia/pkg/errors"
)

func convertCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "convert <value> <from> <to>",
		Short:   "Convert a value from one unit to another",
		Example: "  convertia convert 100 celsius fahrenheit\n  convertia convert 3.5 km mi --locale de-DE",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("value %q is not a number", args[0]), err)
			}

			resp, err := opts.svc.Convert(cmd.Context(), conversion.Request{
				Value:  value,
				From:   args[1],
				To:     args[2],
				Locale: opts.locale,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			input := conversion.NewFormatter(resp.Locale).Format(resp.Input, resp.From)
			fmt.Fprintf(out, "%s = %s\n", input, color.New(color.Bold, color.FgGreen).Sprint(resp.Formatted))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	return cmd
}
