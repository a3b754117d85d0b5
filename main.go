// Copyright © 2026 The curt authors

package main

import "github.com/curtlang/curt/cmd"

func main() {
	cmd.Execute()
}
