package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kmizuta/wordbook/internal/cli"
	"github.com/kmizuta/wordbook/internal/dictionary"
	"github.com/kmizuta/wordbook/internal/pdf"
)

type Format string

// Set implements pflag.Value.
func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

// String implements pflag.Value.
func (f Format) String() string {
	return string(f)
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "Format"
}

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatPDF  Format = "pdf"
)

var (
	_          pflag.Value = (*Format)(nil)
	allFormats             = []Format{FormatJSON, FormatYAML, FormatPDF}
)

func newExportCommand() *cobra.Command {
	format := FormatJSON
	var outputDirectory string

	command := &cobra.Command{
		Use:   "export",
		Short: "Write the whole dictionary to a dated file",
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

			directory := outputDirectory
			if directory == "" {
				directory = cfg.Exports.Directory
			}
			if err := os.MkdirAll(directory, 0755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
			}
			target := filepath.Join(directory, dictionary.ExportFilename(time.Now(), string(format)))

			switch format {
			case FormatPDF:
				written, err := pdf.WriteCollectionPDF(store.Entries(), target)
				if err != nil {
					return fmt.Errorf("pdf.WriteCollectionPDF > %w", err)
				}
				target = written
			case FormatYAML:
				contents, err := store.ExportAllYAML()
				if err != nil {
					return fmt.Errorf("store.ExportAllYAML > %w", err)
				}
				if err := os.WriteFile(target, contents, 0644); err != nil {
					return fmt.Errorf("os.WriteFile(%s) > %w", target, err)
				}
			default:
				contents, err := store.ExportAll()
				if err != nil {
					return fmt.Errorf("store.ExportAll > %w", err)
				}
				if err := os.WriteFile(target, contents, 0644); err != nil {
					return fmt.Errorf("os.WriteFile(%s) > %w", target, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", store.Len(), target)
			return nil
		},
	}

	flags := command.Flags()
	flags.Var(&format, "format", fmt.Sprintf("Export format. Possible values are %v", allFormats))
	flags.StringVarP(&outputDirectory, "output", "o", "", "directory to write the export file to")
	return command
}

func newImportCommand() *cobra.Command {
	var skipConfirmation bool

	command := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the whole dictionary with entries from a JSON file",
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

			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}

			// Import replaces everything, so ask before overwriting a
			// non-empty dictionary.
			if !skipConfirmation && store.Len() > 0 {
				prompt := fmt.Sprintf("This replaces all %d existing entries. Continue?", store.Len())
				if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
					fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled.")
					return nil
				}
			}

			count, err := store.ImportAll(ctx, payload)
			if err != nil {
				return fmt.Errorf("store.ImportAll > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries.\n", count)
			return nil
		},
	}

	command.Flags().BoolVarP(&skipConfirmation, "yes", "y", false, "replace the dictionary without asking")
	return command
}
