package cli

import (
	"fmt"

	"github.com/SscSPs/journal_app/internal/client"
	"github.com/SscSPs/journal_app/internal/composer"
	"github.com/spf13/cobra"
)

func newWriteCommand() *cobra.Command {
	var entry entryFlags

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Render an entry and upload it to the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := entry.entryDate()
			text, err := entryText(cmd, &entry)
			if err != nil {
				return err
			}

			// a bad entry fails before the password prompt
			pdf, err := composer.Compose(date, text)
			if err != nil {
				return err
			}

			pw, err := password(cmd)
			if err != nil {
				return err
			}

			server, err := cmd.Flags().GetString("server")
			if err != nil {
				return err
			}
			c := client.New(server)
			if _, err := c.Login(cmd.Context(), pw); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			resp, err := c.Upload(cmd.Context(), date, pdf)
			if err != nil {
				return fmt.Errorf("upload failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", resp.Message, resp.Key)
			return nil
		},
	}

	entry.register(cmd)
	return cmd
}
