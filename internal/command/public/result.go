package public

import (
	"bytes"
	"fmt"

	"github.com/adtrdlvm/c-sike/internal/command"
)

type PublicResult struct {
	Party     string `json:"party"`
	PublicKey string `json:"public_key"`
}

func (r *PublicResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[SIDH PUBLIC KEY]\n")
	buffer.WriteString(command.FormatKV([]string{
		fmt.Sprintf("Party|%s", r.Party),
		fmt.Sprintf("Public key|%s", r.PublicKey),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
