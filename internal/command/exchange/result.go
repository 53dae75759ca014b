package exchange

import (
	"bytes"
	"fmt"

	"github.com/adtrdlvm/c-sike/internal/command"
)

type ExchangeResult struct {
	Party        string `json:"party"`
	SharedSecret string `json:"shared_secret"`
}

func (r *ExchangeResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[SIDH SHARED SECRET]\n")
	buffer.WriteString(command.FormatKV([]string{
		fmt.Sprintf("Party|%s", r.Party),
		fmt.Sprintf("Shared secret|%s", r.SharedSecret),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
