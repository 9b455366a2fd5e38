package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/passgen/internal/cli"
	"github.com/Veraticus/passgen/internal/strength"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func runCheck(cmd *cobra.Command) error {
	password, err := cmd.Flags().GetString("check")
	if err != nil {
		return err
	}

	if password == "-" {
		password, err = readSecret(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	report := strength.Analyze(password)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatReport(report))
	return err
}

// readSecret reads one password from in. On a terminal the input is not echoed.
func readSecret(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, cli.FormatPrompt("Password"))
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
