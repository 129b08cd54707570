package main

import (
	"os"
	"runtime/debug"

	"github.com/velachain/vela-cli/cmd"
	"github.com/velachain/vela-cli/logx"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			_ = logx.Errorf("CLI CRASHED: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
