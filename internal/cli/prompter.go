package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/passgen/internal/common"
)

// Prompter asks questions on a terminal and re-asks until the answer is valid.
type Prompter struct {
	writer io.Writer
	reader *NonBlockingReader
}

// NewPrompter creates a prompter with the given reader and writer.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// AskYesNo asks a yes/no question.
func (p *Prompter) AskYesNo(ctx context.Context, question string, def bool) (bool, error) {
	hint := "[1] Yes  [2] No"
	if def {
		hint += ", default Yes"
	} else {
		hint += ", default No"
	}

	var answer bool
	err := p.ask(ctx, fmt.Sprintf("%s %s", question, SubtleStyle.Render("("+hint+")")), func(input string) error {
		v, err := ParseYesNo(input, def)
		answer = v
		return err
	})
	return answer, err
}

// AskInt asks for a whole number between minVal and maxVal.
func (p *Prompter) AskInt(ctx context.Context, question string, minVal, maxVal, def int) (int, error) {
	hint := fmt.Sprintf("(%d-%d, default %d)", minVal, maxVal, def)

	var answer int
	err := p.ask(ctx, fmt.Sprintf("%s %s", question, SubtleStyle.Render(hint)), func(input string) error {
		v, err := ParseIntInRange(input, minVal, maxVal, def)
		answer = v
		return err
	})
	return answer, err
}

// AskString asks for free text. Empty input selects def.
func (p *Prompter) AskString(ctx context.Context, question, def string) (string, error) {
	label := question
	if def != "" {
		label = fmt.Sprintf("%s %s", question, SubtleStyle.Render("(default "+def+")"))
	}

	answer := def
	err := p.ask(ctx, label, func(input string) error {
		if input != "" {
			answer = input
		}
		return nil
	})
	return answer, err
}

// Println writes a line of output.
func (p *Prompter) Println(text string) error {
	_, err := fmt.Fprintln(p.writer, text)
	return err
}

// ask repeats the prompt until accept returns nil or a non-input error.
func (p *Prompter) ask(ctx context.Context, label string, accept func(string) error) error {
	for {
		if _, err := fmt.Fprint(p.writer, FormatPrompt(label)); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		input, err := p.reader.ReadLine(ctx)
		if err != nil {
			return err
		}

		err = accept(input)
		if err == nil {
			return nil
		}
		if !errors.Is(err, common.ErrInvalidInput) {
			return err
		}

		if _, err := fmt.Fprintln(p.writer, FormatError(err.Error())); err != nil {
			slog.Warn("Failed to write error message", "error", err)
		}
	}
}
