package exchange

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/adtrdlvm/c-sike/internal/command"
)

func GetCommand() *cobra.Command {
	exchangeCmd := &cobra.Command{
		Use:   "exchange",
		Short: "Computes the shared secret from a private key and the peer public key",
		RunE:  runCommand,
	}

	setFlags(exchangeCmd)
	setRequiredFlags(exchangeCmd)

	return exchangeCmd
}

func setFlags(cmd *cobra.Command) {
	command.RegisterPartyFlag(cmd, &params.party)

	cmd.Flags().StringVar(
		&params.private,
		command.PrivateFlag,
		"",
		"our private key, in hexadecimal",
	)

	cmd.Flags().StringVar(
		&params.peer,
		peerFlag,
		"",
		"the public key of the other party, in hexadecimal",
	)
}

func setRequiredFlags(cmd *cobra.Command) {
	for _, requiredFlag := range params.getRequiredFlags() {
		_ = cmd.MarkFlagRequired(requiredFlag)
	}
}

func runCommand(cmd *cobra.Command, _ []string) error {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	logger := command.NewLogger(cmd).Named("exchange")

	if err := params.decodeKeys(); err != nil {
		outputter.SetError(err)

		return err
	}

	start := time.Now()
	if err := params.exchange(); err != nil {
		outputter.SetError(err)

		return err
	}

	logger.Debug("shared secret computed",
		"party", params.sk.Party().String(),
		"secret_size", len(params.shared),
		"elapsed", time.Since(start),
	)

	outputter.SetCommandResult(params.getResult())

	return nil
}
