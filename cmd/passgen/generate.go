package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/passgen/internal/cli"
	"github.com/Veraticus/passgen/internal/common"
	"github.com/Veraticus/passgen/internal/config"
	"github.com/Veraticus/passgen/internal/generator"
	"github.com/Veraticus/passgen/internal/storage"
	"github.com/spf13/cobra"
)

// newGenerator is swapped out by tests that need deterministic output.
var newGenerator = generator.New

func runBatch(cmd *cobra.Command) error {
	preset, err := cmd.Flags().GetString("preset")
	if err != nil {
		return err
	}
	savePath, err := cmd.Flags().GetString("save")
	if err != nil {
		return err
	}

	opts, err := config.LoadBatchOptions(preset, savePath)
	if err != nil {
		if errors.Is(err, common.ErrInvalidPreset) {
			msg := fmt.Sprintf("Unknown preset %q, choose one of: %s", preset, strings.Join(config.PresetNames(), ", "))
			return common.NewUserError(msg, err)
		}
		return common.NewUserError(fmt.Sprintf("Invalid generation settings: %v", err), err)
	}

	est, err := generator.EstimateStrength(opts.Generation)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("Invalid generation settings: %v", err), err)
	}
	common.LogDebug("generating passwords", common.Fields{
		"count":        opts.Count,
		"length":       opts.Generation.Length,
		"preset":       opts.Preset,
		"pool_size":    est.PoolSize,
		"entropy_bits": est.Entropy,
		"rating":       est.Rating,
	})

	passwords, err := generateWithProgress(cmd.ErrOrStderr(), opts)
	if err != nil {
		return fmt.Errorf("failed to generate passwords: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, pw := range passwords {
		if _, err := fmt.Fprintln(out, pw); err != nil {
			return fmt.Errorf("failed to write password: %w", err)
		}
	}

	if opts.SavePath != "" {
		savePasswords(cmd.ErrOrStderr(), opts.SavePath, passwords)
	}

	return nil
}

// generateWithProgress draws opts.Count passwords, showing a progress bar on
// w for large batches.
func generateWithProgress(w io.Writer, opts config.BatchOptions) ([]string, error) {
	gen := newGenerator()
	if !cli.WantsProgress(w, opts.Count) {
		return gen.GenerateN(opts.Generation, opts.Count)
	}

	bar := cli.NewProgressBar(w, opts.Count)
	passwords := make([]string, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		pw, err := gen.Generate(opts.Generation)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
		_ = bar.Add(1)
	}
	return passwords, nil
}

// savePasswords appends passwords to path and reports the outcome on w.
// A failed save never fails the run: the passwords were already shown.
func savePasswords(w io.Writer, path string, passwords []string) {
	store, err := storage.NewFileStore(path)
	if err == nil {
		err = store.Append(passwords...)
	}

	if err != nil {
		common.LogError(err, "failed to save passwords", common.Fields{"path": path})
		msg := "Could not save passwords: "
		if !common.IsRecoverable(err) {
			msg = "Unexpected error saving passwords: "
		}
		fmt.Fprintln(w, cli.FormatError(msg+err.Error()))
		return
	}

	noun := "passwords"
	if len(passwords) == 1 {
		noun = "password"
	}
	fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("Saved %d %s to %s", len(passwords), noun, store.Path())))
}
