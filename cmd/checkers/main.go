// FILE: cmd/checkers/main.go
package main

import (
	"os"

	"checkers/internal/cli"
	"checkers/internal/service"
	clitransport "checkers/internal/transport/cli"

	"golang.org/x/term"
)

func main() {
	svc := service.New(nil, nil)
	defer svc.Close()

	view := cli.New(os.Stdin, os.Stdout)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		view.SetTheme(cli.ThemeBlue)
	}

	handler := clitransport.New(svc, view)

	view.ShowWelcome()
	handler.Run() // All game loop logic is in the handler
}
