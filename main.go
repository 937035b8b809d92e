package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/WhiskyShelf/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("WhiskyShelf"), kong.Description("WhiskyShelf keeps a whisky collection and moves it in and out of portable files."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
