// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pdiddy/protein-info/internal/detail"
	"github.com/pdiddy/protein-info/internal/view"
)

var proteinCmd = &cobra.Command{
	Use:   "protein <id>",
	Short: "Show one protein's identifiers, annotations, and interactions",
	Long: `Protein loads the detail record for id in one request and prints its basic
information, identifiers, sequence, functional annotations, and one page of
protein-protein interactions. Interaction scores above 0.7 are emphasised.

Table output pages the interactions with --page and --page-size; json and yaml
output carry the whole record.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProtein,
}

func runProtein(cmd *cobra.Command, args []string) error {
	var id string
	if len(args) > 0 {
		id = args[0]
	}
	page, _ := cmd.Flags().GetInt("page")

	dv := view.NewDetailView(cfg.Display.PageSize)
	_, err := dv.Open(context.Background(), detail.NewAggregator(newClient()), id)
	if page > 1 {
		dv.SetPage(page - 1)
	}

	opts := detail.RenderOptions{Color: cfg.Display.Color}
	if rerr := view.RenderDetail(cmd.OutOrStdout(), dv.Snapshot(), cfg.Display.Format, opts); rerr != nil {
		return rerr
	}
	return err
}

func init() {
	proteinCmd.Flags().Int("page", 1, "interaction page to show (1-based)")

	rootCmd.AddCommand(proteinCmd)
}
