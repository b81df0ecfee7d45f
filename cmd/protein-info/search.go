// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/protein-info/internal/present"
	"github.com/pdiddy/protein-info/internal/view"
	"github.com/pdiddy/protein-info/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search proteins by accession, identifier, or GO term",
	Long: `Search sends one request to the protein service for the query and the
selected mode, and lists the matching proteins in the order the service
returned them. The query words are joined with single spaces.

Modes: accession, unambiguous, go_term, all (default). Run "protein-info modes"
for their labels.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := types.ParseSearchMode(modeFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sv := view.NewSearchView()
	_, err = sv.Submit(context.Background(), newClient(), strings.Join(args, " "), mode)
	if view.IsValidation(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), present.MsgPrompt)
		return err
	}
	if rerr := view.RenderSearch(out, sv.Snapshot(), cfg.Display.Format); rerr != nil {
		return rerr
	}
	return err
}

func init() {
	searchCmd.Flags().String("mode", string(types.DefaultSearchMode), "search mode: accession, unambiguous, go_term, or all")

	rootCmd.AddCommand(searchCmd)
}
