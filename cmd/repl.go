// Copyright © 2026 The curt authors

package cmd

import (
	"os"
	"path/filepath"

	"github.com/curtlang/curt/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive curt REPL",
	Long: `Start an interactive read-eval-print loop for curt.

Line editing and in-session command history are supported via readline.
Use Ctrl-D or Ctrl-C to exit.

Example REPL session:
  curt> (+ 1 2)
  3
  curt> (car x y z)
  'x
  curt> ((\ a \ b + a b) 3 4)
  7`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(filepath.Base(os.Args[0]) + "> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
