package keygen

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/adtrdlvm/c-sike/internal/command"
	"github.com/adtrdlvm/c-sike/p434"
)

func GetCommand() *cobra.Command {
	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generates a SIDH p434 key pair, at random or from a seed",
		RunE:  runCommand,
	}

	setFlags(keygenCmd)

	return keygenCmd
}

func setFlags(cmd *cobra.Command) {
	command.RegisterPartyFlag(cmd, &params.party)

	cmd.Flags().StringVar(
		&params.seed,
		seedFlag,
		"",
		"derive the private key deterministically from this seed (at least 128 bits of entropy)",
	)
}

func runCommand(cmd *cobra.Command, _ []string) error {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	logger := command.NewLogger(cmd).Named("keygen")
	start := time.Now()

	if err := params.generateKey(); err != nil {
		outputter.SetError(err)

		return err
	}

	logger.Debug("key pair generated",
		"party", params.sk.Party().String(),
		"private_size", p434.P434PrivateKeySize(params.sk.Party()),
		"public_size", p434.P434PublicKeySize,
		"elapsed", time.Since(start),
	)

	outputter.SetCommandResult(params.getResult())

	return nil
}
