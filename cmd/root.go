package cmd

import (
	"fmt"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "CLI tool to browse the Open Linked Hub and forecast the DTI",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory := cli.NewCommandFactory()
	defer factory.Close()

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(commands.Whoami))
	cmd.AddCommand(factory.Build(commands.Login))
	cmd.AddCommand(factory.Build(commands.Register))
	cmd.AddCommand(factory.Build(commands.Logout))
	cmd.AddCommand(factory.Build(commands.Datasets))
	cmd.AddCommand(factory.Build(commands.Stats))
	cmd.AddCommand(factory.Build(commands.Users))
	cmd.AddCommand(factory.Build(commands.Metadata))
	cmd.AddCommand(factory.Build(commands.DTI))

	factory.Run(cmd)
}
