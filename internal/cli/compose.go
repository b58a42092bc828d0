package cli

import (
	"fmt"
	"os"

	"github.com/SscSPs/journal_app/internal/composer"
	"github.com/SscSPs/journal_app/internal/core/domain"
	"github.com/spf13/cobra"
)

func newComposeCommand() *cobra.Command {
	var (
		entry entryFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Render an entry into a PDF file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := entry.entryDate()
			text, err := entryText(cmd, &entry)
			if err != nil {
				return err
			}

			pdf, err := composer.Compose(date, text)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = date + domain.DocumentExtension
			}
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", path, len(pdf))
			return nil
		},
	}

	entry.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "output path (default \"<date>.pdf\")")
	return cmd
}
