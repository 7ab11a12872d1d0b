package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"worldcup-dashboard/internal/pipeline"
	"worldcup-dashboard/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	exportFormat  string
	exportWinners bool
	exportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the win table as CSV or JSON",
	Long: `Export writes the win table for every reference country to stdout,
or to --out. The format follows the file extension unless --format is given.

Example:
  worldcup export > wins.csv
  worldcup export --format json --winners
  worldcup export --out exports/wins.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", pipeline.FormatCSV, "output format (csv, json)")
	exportCmd.Flags().BoolVar(&exportWinners, "winners", false, "only countries with at least one title")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	_, res, err := loadData(context.Background(), debugEnabled())
	if err != nil {
		return err
	}

	format := exportFormat
	var w io.Writer = cmd.OutOrStdout()
	var path string

	if exportOut != "" {
		if !cmd.Flags().Changed("format") {
			if ft := utils.GetFileType(exportOut); ft != "unknown" {
				format = ft
			}
		}

		om := utils.NewOutputManager(filepath.Dir(exportOut))
		var f *os.File
		f, path, err = om.Create(exportOut)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", path, closeErr)
			}
		}()
		w = f
	}

	n, err := pipeline.Export(w, res.Wins, pipeline.ExportOptions{
		Format:      format,
		WinnersOnly: exportWinners,
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if path != "" {
		size, _ := utils.GetFileSize(path)
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Exported %d rows to %s (%d bytes)\n", n, path, size)
	} else if debugEnabled() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d rows\n", n)
	}
	return nil
}
