package public

import (
	"github.com/spf13/cobra"

	"github.com/adtrdlvm/c-sike/internal/command"
)

func GetCommand() *cobra.Command {
	publicCmd := &cobra.Command{
		Use:   "public",
		Short: "Computes the public key of an encoded private key",
		RunE:  runCommand,
	}

	setFlags(publicCmd)
	setRequiredFlags(publicCmd)

	return publicCmd
}

func setFlags(cmd *cobra.Command) {
	command.RegisterPartyFlag(cmd, &params.party)

	cmd.Flags().StringVar(
		&params.private,
		command.PrivateFlag,
		"",
		"the private key, in hexadecimal",
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

	if err := params.decodeKey(); err != nil {
		outputter.SetError(err)

		return err
	}

	command.NewLogger(cmd).Named("public").Debug("public key computed",
		"party", params.sk.Party().String(),
	)

	outputter.SetCommandResult(params.getResult())

	return nil
}
