package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmizuta/wordbook/internal/cli"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all entries in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			ctx := cmd.Context()
			store, cleanup, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			cli.NewPrinter(cmd.OutOrStdout()).PrintEntries(store.Entries())
			return nil
		},
	}
}

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find entries whose word, definition, or synonyms contain the query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			ctx := cmd.Context()
			store, cleanup, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			query := args[0]
			printer := cli.NewPrinter(cmd.OutOrStdout())
			count := 0
			for entry := range store.Search(query) {
				printer.PrintMatch(entry, query)
				count++
			}
			if count == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No entries match %q.\n", query)
			}
			return nil
		},
	}
}
