package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"worldcup-dashboard/internal/present"

	"github.com/spf13/cobra"
)

var mapAll bool

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the choropleth as a table of color bands",
	Long: `Map prints each country with the color the dashboard map shades it in,
followed by a bar of its titles. Countries without a title are skipped
unless --all is given.`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().BoolVar(&mapAll, "all", false, "include countries without a title")
}

func runMap(cmd *cobra.Command, args []string) error {
	_, res, err := loadData(context.Background(), debugEnabled())
	if err != nil {
		return err
	}

	rows := res.Wins.Winners()
	if mapAll {
		rows = res.Wins.Rows()
	}
	lo, hi := res.Wins.Min(), res.Wins.Max()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, present.MapTitle)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		band := present.WinsColorScale.Band(row.Wins, lo, hi)
		fmt.Fprintf(tw, "%s\t%s\t%s %d\n", row.Country, band, strings.Repeat("#", row.Wins), row.Wins)
	}
	return tw.Flush()
}
