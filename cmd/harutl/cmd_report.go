package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	linenapp "github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/infrastructure/excel"
	infrapdf "github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/infrastructure/pdf"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/infrastructure/postgres"
)

var reportOpts struct {
	month  string
	start  string
	end    string
	format string
	out    string
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reporte de lencería por categoría",
	Long: `Agrega entradas y devoluciones de lencería dentro de una ventana.

Con --format table imprime el reporte en la terminal; con xlsx o pdf escribe el
archivo en --out (por defecto, el nombre estándar en el directorio actual).`,
	Example: `  harutl report --month 2024-03
  harutl report --start 2024-03-01 --end 2024-03-15 --format xlsx --out marzo.xlsx`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportOpts.month, "month", "", "mes YYYY-MM")
	f.StringVar(&reportOpts.start, "start", "", "fecha inicial YYYY-MM-DD")
	f.StringVar(&reportOpts.end, "end", "", "fecha final YYYY-MM-DD")
	f.StringVar(&reportOpts.format, "format", "table", "table, xlsx o pdf")
	f.StringVarP(&reportOpts.out, "out", "o", "", "archivo de salida (xlsx, pdf)")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	catalog, err := linen.LoadCatalog(cfg.Linen.CatalogFile)
	if err != nil {
		return err
	}
	w, err := linenapp.ParseWindow(reportOpts.month, reportOpts.start, reportOpts.end)
	if err != nil {
		return err
	}

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	uc := linenapp.NewReportUseCase(postgres.NewLinenRepository(pool), linen.NewAggregator(catalog), nil,
		excel.NewReportRenderer(),
		infrapdf.NewReportRenderer(infrapdf.Options{FontFile: cfg.Linen.PDFFontFile, Author: cfg.App.Name}),
	)

	if reportOpts.format == "table" {
		rep, err := uc.Window(ctx, w)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), renderTable(linenapp.ReportTitle(w), w, rep))
		return err
	}

	file, err := uc.Export(ctx, dto.LinenReportRequest{
		Month:  reportOpts.month,
		Start:  reportOpts.start,
		End:    reportOpts.end,
		Format: reportOpts.format,
	})
	if err != nil {
		return err
	}
	out := reportOpts.out
	if out == "" {
		out = file.Filename
	}
	if err := os.WriteFile(out, file.Data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", out, err)
	}
	abs, _ := filepath.Abs(out)
	log.Info().Str("archivo", abs).Int("bytes", len(file.Data)).Str("ventana", w.String()).Msg("reporte exportado")
	return nil
}
