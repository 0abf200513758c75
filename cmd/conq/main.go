package main

import (
	"github.com/Tankmaster48/conq/cmd"
)

func main() {
	cmd.CmdConq.Execute()
}
