package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-tracker/internal/adapters/archive"
	"github.com/comitanigiacomo/kanso-tracker/internal/app"
)

func exportCmd() *cobra.Command {
	var (
		outPath    string
		passphrase string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every habit to a JSON file, optionally sealed with a passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				doc, err := a.ExportService.Export(cmd.Context())
				if err != nil {
					return err
				}

				var data []byte
				if passphrase != "" {
					data, err = archive.Seal(*doc, passphrase)
				} else {
					data, err = json.MarshalIndent(doc, "", "  ")
				}
				if err != nil {
					return fmt.Errorf("failed to encode export: %w", err)
				}

				if outPath == "" {
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}
				if err := os.WriteFile(outPath, data, 0o600); err != nil {
					return fmt.Errorf("failed to write %s: %w", outPath, err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render(fmt.Sprintf("Exported %d habits to %s", len(doc.Habits), outPath)))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "seal the export with age using this passphrase")
	return cmd
}

func importCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge habits from an export file (plain or sealed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			doc, err := archive.Decode(raw, passphrase)
			if err != nil {
				return err
			}

			return withApp(cmd, func(a *app.App) error {
				n, err := a.ExportService.Import(cmd.Context(), &doc)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Imported %d habits", n)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&passphrase, "passphrase", "", "passphrase of a sealed export")
	return cmd
}
