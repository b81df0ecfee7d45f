// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/protein-info/pkg/types"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the search modes",
	Run: func(cmd *cobra.Command, args []string) {
		printModes(cmd.OutOrStdout(), types.DefaultSearchMode)
	},
}

// printModes writes the search modes in menu order, marking current.
func printModes(w io.Writer, current types.SearchMode) {
	for _, m := range types.SearchModes() {
		marker := " "
		if m == current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-12s %s\n", marker, m, m.Label())
	}
}

func init() {
	rootCmd.AddCommand(modesCmd)
}
