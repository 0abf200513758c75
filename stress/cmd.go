package stress

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Cmd returns the stress subcommand.
func Cmd() *cobra.Command {
	flags := struct {
		config    string
		container string
		pushers   int
		poppers   int
		ops       int
	}{}

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run a concurrent workload against a container",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := DefaultConfig()
			if flags.config != "" {
				var err error
				config, err = ReadConfig(flags.config)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%v\n", err)
					os.Exit(1)
				}
			}
			if cmd.Flags().Changed("container") {
				config.Container = flags.container
			}
			if cmd.Flags().Changed("pushers") {
				config.Pushers = flags.pushers
			}
			if cmd.Flags().Changed("poppers") {
				config.Poppers = flags.poppers
			}
			if cmd.Flags().Changed("ops") {
				config.Ops = flags.ops
			}

			runner, err := NewRunner(config)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
			res, err := runner.Run()
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
			runner.Report(os.Stdout, res)
		},
	}

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "workload config file (YAML)")
	cmd.Flags().StringVar(&flags.container, "container", ContainerQueue, "container under test (queue or stack)")
	cmd.Flags().IntVar(&flags.pushers, "pushers", 4, "number of pushing goroutines")
	cmd.Flags().IntVar(&flags.poppers, "poppers", 4, "number of popping goroutines")
	cmd.Flags().IntVar(&flags.ops, "ops", 100000, "values pushed per pusher")

	return cmd
}
