// Copyright © 2026 The curt authors

package cmd

import (
	"fmt"

	"github.com/curtlang/curt/docs"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Print the curt language reference",
	Long:  `Print the embedded curt language reference to stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(wordwrap.String(docs.LangGuide, 80))
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
