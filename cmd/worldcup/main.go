package main

import (
	"fmt"
	"os"

	"worldcup-dashboard/internal/cli"
)

// @title FIFA World Cup Dashboard API
// @version 1.0
// @description Win counts and final results behind the World Cup winners dashboard.
// @BasePath /api/v1
func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
