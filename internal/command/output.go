package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// OutputFormatter collects the outcome of a command and writes it once
// the command is done.
type OutputFormatter interface {
	// SetError sets the encountered error
	SetError(err error)

	// SetCommandResult sets the result of the command execution
	SetCommandResult(result CommandResult)

	// WriteOutput writes the error to the error output of the command, or
	// else the result to its standard output
	WriteOutput()
}

type CommandResult interface {
	GetOutput() string
}

// ErrorResult is the JSON form of a failed command.
type ErrorResult struct {
	Err string `json:"error"`
}

// InitializeOutputter returns the formatter selected by --json: results
// are either the human-readable GetOutput text or their JSON encoding.
func InitializeOutputter(cmd *cobra.Command) OutputFormatter {
	f := cmd.Flag(JSONOutputFlag)

	return &outputter{
		cmd:  cmd,
		json: f != nil && f.Changed,
	}
}

type outputter struct {
	cmd    *cobra.Command
	json   bool
	err    error
	result CommandResult
}

func (o *outputter) SetError(err error) {
	o.err = err
}

func (o *outputter) SetCommandResult(result CommandResult) {
	o.result = result
}

func (o *outputter) WriteOutput() {
	w := o.cmd.OutOrStdout()

	var text string

	switch {
	case o.err != nil:
		w = o.cmd.ErrOrStderr()
		text = o.err.Error()

		if o.json {
			text = marshalJSONToString(&ErrorResult{Err: text})
		}
	case o.result == nil:
		return
	case o.json:
		text = marshalJSONToString(o.result)
	default:
		text = o.result.GetOutput()
	}

	_, _ = fmt.Fprintln(w, text)
}

func marshalJSONToString(input interface{}) string {
	bytes, err := json.Marshal(input)
	if err != nil {
		return err.Error()
	}

	return string(bytes)
}
