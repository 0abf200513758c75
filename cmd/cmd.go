package cmd

import (
	"github.com/Tankmaster48/conq/stress"
	"github.com/spf13/cobra"
)

var CmdConq = &cobra.Command{
	Use:          "conq",
	Short:        "conq concurrent containers toolkit",
	SilenceUsage: true,
}

func init() {
	CmdConq.AddCommand(stress.Cmd())
}
