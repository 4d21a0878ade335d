package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newScenesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List the available shopping scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(catalog)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tSCENE\tUNIT RATE\tBAGS")
			for _, cat := range catalog.Categories {
				for _, def := range cat.Scenes {
					axis := def.NumeratorAxis()
					fmt.Fprintf(w, "%s\t%s\t%s per %s\t%d x %g\n",
						cat.Name, def.Name, axis.Format(def.UnitRate), def.Singular,
						def.NumberOfBags, def.QuantityPerBag)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
