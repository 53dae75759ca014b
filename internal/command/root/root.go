package root

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/adtrdlvm/c-sike/internal/command"
	"github.com/adtrdlvm/c-sike/internal/command/exchange"
	"github.com/adtrdlvm/c-sike/internal/command/keygen"
	"github.com/adtrdlvm/c-sike/internal/command/public"
	"github.com/adtrdlvm/c-sike/internal/command/selftest"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Use:   command.LoggerName,
			Short: "sidhtool generates SIDH p434 keys and computes shared secrets",
			// Errors are written by the command outputters.
			SilenceErrors: true,
			SilenceUsage:  true,
		},
	}

	command.RegisterJSONOutputFlag(rootCommand.baseCmd)
	command.RegisterLogLevelFlag(rootCommand.baseCmd)

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		keygen.GetCommand(),
		public.GetCommand(),
		exchange.GetCommand(),
		selftest.GetCommand(),
	)
}

// BaseCmd returns the cobra root command.
func (rc *RootCommand) BaseCmd() *cobra.Command {
	return rc.baseCmd
}

func (rc *RootCommand) Execute() {
	if cmd, err := rc.baseCmd.ExecuteC(); err != nil {
		command.NewLogger(cmd).Error("command failed", "command", cmd.Name(), "error", err)

		os.Exit(1)
	}
}
