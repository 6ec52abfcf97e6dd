package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/finchley/lintgate/internal/cli"
	"github.com/finchley/lintgate/pkg/version"
)

func main() {
	cmd := cli.NewRootCmd()

	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(version.Get()),
		fang.WithErrorHandler(cli.ErrorHandler),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err != nil {
		os.Exit(1)
	}
}
