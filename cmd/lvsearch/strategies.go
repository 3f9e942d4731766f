package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/search"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available search strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range search.Strategies() {
				kind := "uninformed"
				switch {
				case s.Informed():
					kind = "heuristic"
				case s == search.StrategyUCS:
					kind = "cost-ordered"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", s, kind)
			}
		},
	}
}
