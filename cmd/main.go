package main

import "github.com/snoolib/modcmd/cmd/cli"

func main() {
	cli.Execute()
}
