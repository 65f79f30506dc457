package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <etiqueta>...",
	Short: "Muestra el nombre canónico de cada etiqueta",
	Long:  "Aplica la normalización del catálogo configurado. Las etiquetas sin categoría se marcan con *.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := linen.LoadCatalog(cfg.Linen.CatalogFile)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, raw := range args {
			name := catalog.Normalize(raw)
			mark := ""
			if !catalog.Contains(name) {
				mark = " *"
			}
			fmt.Fprintf(out, "%s\t→ %s%s\n", raw, name, mark)
		}
		return nil
	},
}
