package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmizuta/wordbook/internal/cli"
	"github.com/kmizuta/wordbook/internal/dictionary"
)

func newAddCommand() *cobra.Command {
	var definition string
	var synonyms string

	command := &cobra.Command{
		Use:   "add <word>",
		Short: "Add a word with its definition and synonyms",
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

			entry, err := store.Add(ctx, args[0], definition, synonyms)
			if err != nil {
				return fmt.Errorf("store.Add > %w", err)
			}
			cli.NewPrinter(cmd.OutOrStdout()).PrintEntry(entry)
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVarP(&definition, "definition", "d", "", "definition of the word")
	flags.StringVarP(&synonyms, "synonyms", "s", "", "comma-separated synonyms")
	_ = command.MarkFlagRequired("definition")
	return command
}

func newUpdateCommand() *cobra.Command {
	var word string
	var definition string
	var synonyms string

	command := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace fields of an existing entry",
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

			var fields dictionary.UpdateFields
			if cmd.Flags().Changed("word") {
				fields.Word = &word
			}
			if cmd.Flags().Changed("definition") {
				fields.Definition = &definition
			}
			if cmd.Flags().Changed("synonyms") {
				fields.SynonymsRaw = &synonyms
			}

			entry, err := store.Update(ctx, args[0], fields)
			if err != nil {
				return fmt.Errorf("store.Update > %w", err)
			}
			cli.NewPrinter(cmd.OutOrStdout()).PrintEntry(entry)
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVar(&word, "word", "", "new headword")
	flags.StringVar(&definition, "definition", "", "new definition")
	flags.StringVar(&synonyms, "synonyms", "", "new comma-separated synonyms")
	return command
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an entry from the dictionary",
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

			removed, err := store.Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("store.Delete > %w", err)
			}
			if removed == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry with id %q.\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q.\n", removed.Word)
			return nil
		},
	}
}
