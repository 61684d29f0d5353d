package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmizuta/wordbook/internal/cli"
	"github.com/kmizuta/wordbook/internal/lookup"
)

func newLookupCommand() *cobra.Command {
	var saveEntry bool

	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Fetch a definition and synonyms for a word from the online dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.Lookup.Host == "" || cfg.Lookup.Key == "" {
				return errors.New("lookup requires the RAPID_API_HOST and RAPID_API_KEY environment variables")
			}

			ctx := cmd.Context()
			reader := lookup.NewReader(cfg.Lookup.CacheDirectory, lookup.Config{
				Host: cfg.Lookup.Host,
				Key:  cfg.Lookup.Key,
			})
			response, err := reader.Lookup(ctx, word)
			if err != nil {
				return fmt.Errorf("reader.Lookup > %w", err)
			}

			suggestion, ok := response.ToSuggestion()
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "No definitions found for %q.\n", word)
				return nil
			}
			printer := cli.NewPrinter(cmd.OutOrStdout())
			printer.PrintSuggestion(suggestion)

			if !saveEntry {
				return nil
			}
			store, cleanup, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			entry, err := store.Add(ctx, suggestion.Word, suggestion.Definition, strings.Join(suggestion.Synonyms, ", "))
			if err != nil {
				return fmt.Errorf("store.Add > %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved to the dictionary:")
			printer.PrintEntry(entry)
			return nil
		},
	}

	command.Flags().BoolVar(&saveEntry, "save", false, "add the looked-up word to the dictionary")
	return command
}
