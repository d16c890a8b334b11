package main

import (
	"github.com/mouse-blink/helixsleuth/cmd"
)

func main() {
	cmd.Execute()
}
