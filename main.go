package main

import (
	"embed"

	"github.com/domdomvn/domdom/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
