// Package cli implements the journal_cli commands: compose an entry into a PDF
// locally, or compose and upload it to the journal backend.
package cli

import (
	"os"
	"time"

	"github.com/SscSPs/journal_app/internal/core/domain"
	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

// Environment variables read by the commands.
const (
	EnvServer   = "JOURNAL_SERVER"
	EnvPassword = "JOURNAL_PASSWORD"
)

// now is a test seam for the default entry date.
var now = time.Now

// entryFlags are shared by compose and write.
type entryFlags struct {
	date string
	file string
	text string
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "entry date, dd MMMM yyyy (default today)")
	cmd.Flags().StringVar(&f.file, "file", "", "read the entry text from this file, - for stdin")
	cmd.Flags().StringVar(&f.text, "text", "", "entry text")
	cmd.MarkFlagsMutuallyExclusive("file", "text")
}

func (f *entryFlags) entryDate() string {
	if f.date != "" {
		return f.date
	}
	return now().Format(domain.EntryDateLayout)
}

// NewRootCommand builds the journal_cli command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "journal_cli",
		Short:         "Write daily journal entries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	server := os.Getenv(EnvServer)
	if server == "" {
		server = defaultServer
	}
	root.PersistentFlags().String("server", server, "journal backend base URL (env "+EnvServer+")")

	root.AddCommand(newComposeCommand(), newWriteCommand())
	return root
}
