// Copyright © 2026 The curt authors

package cmd

import (
	"fmt"
	"os"

	"github.com/curtlang/curt/parser"
	"github.com/curtlang/curt/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	runExpression bool
	runMaxDepth   int
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Reduce curt expressions",
	Long:  `Reduce curt expressions supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		maxDepth := runMaxDepth
		if viper.IsSet("max-depth") && !cmd.Flags().Changed("max-depth") {
			maxDepth = viper.GetInt("max-depth")
		}
		in := term.New(term.WithMaximumDepth(maxDepth))
		for _, src := range exprs {
			vals, _, err := parser.Parse(src)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, v := range vals {
				res, err := in.Eval(v)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				fmt.Println(res)
			}
		}
	},
}

func runReadExpressions(args []string) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path) //#nosec G304
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as curt expressions")
	runCmd.Flags().IntVarP(&runMaxDepth, "max-depth", "d", term.DefaultMaximumDepth,
		"Maximum reduction depth before failing with a depth-error")
}
