package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"worldcup-dashboard/internal/present"
	"worldcup-dashboard/pkg/utils"

	"github.com/spf13/cobra"
)

var winsCmd = &cobra.Command{
	Use:   "wins [country]",
	Short: "Show how many titles a country has won",
	Long: `Without an argument, list every country with at least one title.

Example:
  worldcup wins
  worldcup wins Brazil
  worldcup wins "United Kingdom"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWins,
}

var matchCmd = &cobra.Command{
	Use:   "match [year]",
	Short: "Show the winner and runner-up of a final",
	Long: `Without an argument, list every final.

Example:
  worldcup match
  worldcup match 1954`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(winsCmd)
	rootCmd.AddCommand(matchCmd)
}

func runWins(cmd *cobra.Command, args []string) error {
	_, res, err := loadData(context.Background(), debugEnabled())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		if !res.Wins.Has(args[0]) {
			return fmt.Errorf("unknown country: %s", args[0])
		}
		fmt.Fprintln(out, present.CountryWins(res.Wins, args[0]))
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COUNTRY\tWINS")
	for _, row := range res.Wins.Winners() {
		fmt.Fprintf(tw, "%s\t%d\n", row.Country, row.Wins)
	}
	return tw.Flush()
}

func runMatch(cmd *cobra.Command, args []string) error {
	ds, _, err := loadData(context.Background(), debugEnabled())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		year, err := utils.ParseYear(args[0])
		if err != nil {
			return err
		}
		result := present.MatchResult(ds, year)
		if result == "" {
			return fmt.Errorf("no final was played in %d", year)
		}
		fmt.Fprintln(out, result)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "YEAR\tWINNER\tRUNNER-UP")
	for _, m := range ds.ListMatches() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", m.Year, m.Winner, m.RunnerUp)
	}
	return tw.Flush()
}
