// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"calc/internal/config"
	"calc/repl"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so stdout carries only the prompt loop
	commonlog.Configure(cfg.Verbosity, nil)
	if cfg.NoColor {
		color.NoColor = true
	}

	if err := repl.Start(os.Stdin, os.Stdout, cfg); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "calc: %v\n", err)
		os.Exit(1)
	}
}
