package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xiam/edn"
	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/parser"
)

var (
	readExpression bool
	readTree       bool
	readAutoClose  bool
	readMaxDepth   int
)

// rootCmd reads literals from files, arguments or standard input
var rootCmd = &cobra.Command{
	Use:   "ednread [file...]",
	Short: "Read literal data",
	Long: `Read literal data from files, from the command line or from standard
input and print every value found.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		if len(args) == 0 {
			return readValues(w, "<stdin>", cmd.InOrStdin())
		}

		for _, arg := range args {
			if readExpression {
				if err := readValues(w, "<expression>", strings.NewReader(arg)); err != nil {
					return err
				}
				continue
			}

			f, err := os.Open(arg)
			if err != nil {
				return err
			}
			err = readValues(w, arg, f)
			f.Close()
			if err != nil {
				return err
			}
		}

		return nil
	},
}

func options() parser.Options {
	return parser.Options{
		AutoCloseOnEOF: readAutoClose,
		MaxDepth:       readMaxDepth,
	}
}

func readValues(w io.Writer, name string, in io.Reader) error {
	r := edn.NewReader(in)
	r.SetOptions(options())

	for {
		v, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s:%w", name, err)
		}
		printValue(w, v)
	}
}

func printValue(w io.Writer, v ast.Value) {
	if readTree {
		ast.Print(w, v)
		return
	}
	fmt.Fprintln(w, v)
}

func init() {
	rootCmd.Flags().BoolVarP(&readExpression, "expression", "e", false,
		"Interpret arguments as literal text")
	rootCmd.PersistentFlags().BoolVarP(&readTree, "tree", "t", false,
		"Print values as an indented tree")
	rootCmd.Flags().BoolVar(&readAutoClose, "auto-close", false,
		"Close collections left open at the end of the input")
	rootCmd.PersistentFlags().IntVar(&readMaxDepth, "max-depth", parser.DefaultMaxDepth,
		"Maximum nesting depth of collections")
}
