package command

import (
	"encoding/hex"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/adtrdlvm/c-sike/internal/params"
)

// RegisterJSONOutputFlag registers the --json output setting for all child commands
func RegisterJSONOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(
		JSONOutputFlag,
		false,
		"get all outputs in json format (default false)",
	)
}

// RegisterLogLevelFlag registers the --log-level setting for all child commands
func RegisterLogLevelFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(
		LogLevelFlag,
		DefaultLogLevel,
		"the log level for console output (TRACE, DEBUG, INFO, WARN, ERROR)",
	)
}

// RegisterPartyFlag binds the --party flag of a command to target
func RegisterPartyFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(
		target,
		PartyFlag,
		"A",
		"the party of the key, A (2^216 torsion) or B (3^137 torsion)",
	)
}

// NewLogger returns the logger configured by the --log-level flag. Logs go
// to the error output of the command.
func NewLogger(cmd *cobra.Command) hclog.Logger {
	level := DefaultLogLevel
	if f := cmd.Flag(LogLevelFlag); f != nil {
		level = f.Value.String()
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   LoggerName,
		Level:  hclog.LevelFromString(level),
		Output: cmd.ErrOrStderr(),
	})
}

// ParseParty wraps params.ParseParty with the flag name.
func ParseParty(s string) (params.Party, error) {
	party, err := params.ParseParty(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid --%s %q", PartyFlag, s)
	}

	return party, nil
}

// DecodeHex decodes the hexadecimal value of a flag.
func DecodeHex(flag, s string) ([]byte, error) {
	if s == "" {
		return nil, errors.Errorf("missing --%s", flag)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex in --%s", flag)
	}

	return b, nil
}

// FormatKV formats key value pairs:
//
// Key = Value
//
// Key = <none>
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}
