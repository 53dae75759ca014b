package selftest

import (
	"bytes"
	"fmt"

	"github.com/adtrdlvm/c-sike/internal/command"
)

type SelftestResult struct {
	Rounds  int    `json:"rounds"`
	Elapsed string `json:"elapsed"`
	Passed  bool   `json:"passed"`
}

func (r *SelftestResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[SIDH SELF TEST]\n")
	buffer.WriteString(command.FormatKV([]string{
		fmt.Sprintf("Rounds|%d", r.Rounds),
		fmt.Sprintf("Elapsed|%s", r.Elapsed),
		fmt.Sprintf("Passed|%t", r.Passed),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
