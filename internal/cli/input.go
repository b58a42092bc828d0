package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// entryText returns the --text value, or the contents of --file. With neither
// flag set, or with --file -, the text is read from the command's stdin.
func entryText(cmd *cobra.Command, f *entryFlags) (string, error) {
	if f.text != "" {
		return f.text, nil
	}
	if f.file != "" && f.file != "-" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return "", fmt.Errorf("failed to read entry file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read entry from stdin: %w", err)
	}
	return string(data), nil
}

// password returns JOURNAL_PASSWORD, or prompts for it on the terminal without echo.
func password(cmd *cobra.Command) (string, error) {
	if pw := os.Getenv(EnvPassword); pw != "" {
		return pw, nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
