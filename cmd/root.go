// Copyright © 2026 The curt authors

package cmd

import (
	"fmt"
	"os"

	"github.com/curtlang/curt/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "curt",
	Version: term.CurtVersion,
	Short:   "a curried, substitution-based term evaluator",
	Long: `curt is a minimal Lisp-like calculus where every term is a function
that can be applied to a (possibly empty) argument list.  There are no
environments and no closures; variable binding is realized entirely
through substitution.

Getting started:
  curt run file.curt           Reduce expressions from a source file
  curt run -e '(+ 1 2)'        Reduce an expression
  curt repl                    Start an interactive REPL

Language overview:
  A list applies its head to its tail, so (f a b c) reduces as the
  curried call ((f(a))(b))(c).  The built-in operators are the binary
  arithmetic operators + - * /, the list deconstructors car and cdr, and
  the lambda constructor (written lambda or \).  For example:

  ((lambda x lambda y + x y) 3 4)   reduces to 7
  (car x y z)                       reduces to 'x`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.curt.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".curt" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".curt")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
