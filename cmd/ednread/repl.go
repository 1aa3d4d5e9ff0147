package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/xiam/edn"
	"github.com/xiam/edn/parser"
)

var replPrompt string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read literals interactively",
	Long: `Read literals typed at a prompt and print their values. Input spanning
several lines is accumulated until every collection and string is closed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rl, err := readline.New(replPrompt)
		if err != nil {
			return err
		}
		defer rl.Close()

		return runRepl(rl, cmd.OutOrStdout())
	},
}

// lineReader is the part of readline.Instance the repl uses
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

func runRepl(rl lineReader, w io.Writer) error {
	contPrompt := strings.Repeat(" ", len(replPrompt))

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buf.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		buf.WriteString(line)
		buf.WriteString("\n")

		r := edn.NewReader(strings.NewReader(buf.String()))
		r.SetOptions(parser.Options{MaxDepth: readMaxDepth})

		values, err := r.ReadAll()
		if incomplete(err) {
			rl.SetPrompt(contPrompt)
			continue
		}

		buf.Reset()
		rl.SetPrompt(replPrompt)

		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		for _, v := range values {
			printValue(w, v)
		}
	}
}

// incomplete reports whether more input could complete the literal
func incomplete(err error) bool {
	return errors.Is(err, parser.ErrUnterminatedCollection) ||
		errors.Is(err, parser.ErrUnterminatedString)
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", "edn> ", "Prompt shown before each line")
}
