package selftest

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/adtrdlvm/c-sike/internal/command"
)

func GetCommand() *cobra.Command {
	selftestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "Runs key agreements between fresh key pairs of both parties",
		RunE:  runCommand,
	}

	setFlags(selftestCmd)

	return selftestCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(
		&params.rounds,
		roundsFlag,
		defaultRounds,
		"the number of key agreements to run",
	)
}

func runCommand(cmd *cobra.Command, _ []string) error {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	if err := params.validateFlags(); err != nil {
		outputter.SetError(err)

		return err
	}

	logger := command.NewLogger(cmd).Named("selftest")
	start := time.Now()

	for i := 0; i < params.rounds; i++ {
		roundStart := time.Now()

		if _, err := runRound(cmd.Context()); err != nil {
			err = errors.Wrapf(err, "round %d", i)
			outputter.SetError(err)

			return err
		}

		logger.Debug("round passed", "round", i, "elapsed", time.Since(roundStart))
	}

	outputter.SetCommandResult(params.getResult(time.Since(start).String()))

	return nil
}
