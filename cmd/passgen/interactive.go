package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/passgen/internal/cli"
	"github.com/Veraticus/passgen/internal/clipboard"
	"github.com/Veraticus/passgen/internal/common"
	"github.com/Veraticus/passgen/internal/config"
	"github.com/Veraticus/passgen/internal/generator"
	"github.com/Veraticus/passgen/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Interactive limits.
const (
	interactiveMinLength = 8
	interactiveMaxCount  = 20
)

// copier is swapped out by tests.
var copier clipboard.Copier = clipboard.System{}

func runInteractive(cmd *cobra.Command) error {
	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := handler.HandleInterrupts(cmd.Context())
	defer handler.Stop()

	p := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	err := interactiveSession(ctx, p, cmd)
	if errors.Is(err, cli.ErrInputCancelled) {
		if !handler.WasInterrupted() {
			_ = p.Println("")
		}
		return nil
	}
	return err
}

func interactiveSession(ctx context.Context, p *cli.Prompter, cmd *cobra.Command) error {
	if err := p.Println(cli.FormatTitle("Password Generator")); err != nil {
		return err
	}

	cfg, count, err := askGenerationConfig(ctx, p)
	if err != nil {
		return err
	}

	est, err := generator.EstimateStrength(cfg)
	if err != nil {
		return err
	}

	passwords, err := newGenerator().GenerateN(cfg, count)
	if err != nil {
		return fmt.Errorf("failed to generate passwords: %w", err)
	}

	heading := "Here is your password:"
	if count > 1 {
		heading = fmt.Sprintf("Here are your %d passwords:", count)
	}
	output := fmt.Sprintf("\n%s\n%s\n%s\n", cli.SuccessStyle.Render(heading), cli.FormatPasswords(passwords), cli.FormatEstimate(est))
	if err := p.Println(output); err != nil {
		return err
	}

	if count == 1 {
		if err := offerClipboard(ctx, p, passwords[0]); err != nil {
			return err
		}
	}

	return offerSave(ctx, p, cmd, passwords)
}

func askGenerationConfig(ctx context.Context, p *cli.Prompter) (model.GenerationConfig, int, error) {
	var cfg model.GenerationConfig
	var err error

	if cfg.IncludeSymbols, err = p.AskYesNo(ctx, "Include symbols?", true); err != nil {
		return cfg, 0, err
	}
	if cfg.IncludeNumbers, err = p.AskYesNo(ctx, "Include numbers?", true); err != nil {
		return cfg, 0, err
	}
	if cfg.ExcludeAmbiguous, err = p.AskYesNo(ctx, "Exclude look-alike characters (i l 1 L o 0 O)?", false); err != nil {
		return cfg, 0, err
	}
	if cfg.Length, err = p.AskInt(ctx, "Password length", interactiveMinLength, model.MaxLength, defaultInteractiveLength()); err != nil {
		return cfg, 0, err
	}

	count, err := p.AskInt(ctx, "How many passwords?", 1, interactiveMaxCount, 1)
	if err != nil {
		return cfg, 0, err
	}
	return cfg, count, nil
}

// defaultInteractiveLength uses the configured length when it fits the
// interactive range.
func defaultInteractiveLength() int {
	length := viper.GetInt(config.KeyLength)
	if length < interactiveMinLength || length > model.MaxLength {
		return model.DefaultLength
	}
	return length
}

func offerClipboard(ctx context.Context, p *cli.Prompter, password string) error {
	ok, err := p.AskYesNo(ctx, "Copy to clipboard?", false)
	if err != nil || !ok {
		return err
	}

	if err := copier.Copy(password); err != nil {
		if !common.IsRecoverable(err) {
			return err
		}
		return p.Println(cli.FormatInfo("Clipboard not available, copy the password manually."))
	}
	return p.Println(cli.FormatSuccess("Copied to clipboard."))
}

func offerSave(ctx context.Context, p *cli.Prompter, cmd *cobra.Command, passwords []string) error {
	ok, err := p.AskYesNo(ctx, "Save to a file?", false)
	if err != nil || !ok {
		return err
	}

	path, err := p.AskString(ctx, "File name", config.DefaultSaveFile)
	if err != nil {
		return err
	}

	savePasswords(cmd.OutOrStdout(), config.ExpandPath(path), passwords)
	return nil
}
