package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List brands and their studies",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		catalogs := store.Catalogs()
		if len(catalogs) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "no brands under %s\n", store.Dir())
			return nil
		}
		for _, c := range catalogs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c.Brand, strings.Join(c.Studies, ", "))
		}
		return nil
	},
}
