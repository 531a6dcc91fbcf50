package main

import (
	"fmt"
	"os"

	"github.com/inconshreveable/mousetrap"

	"imageresizer/internal/cli"
)

func main() {
	if len(os.Args) == 1 && mousetrap.StartedByExplorer() {
		fmt.Println("resizer is a command line tool. Open a terminal and run: resizer --help")
		fmt.Println("Press Enter to exit...")
		_, _ = fmt.Scanln()
		os.Exit(1)
	}

	app := cli.NewApp(cli.Options{})
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
