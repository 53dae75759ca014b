package keygen

import (
	"bytes"
	"fmt"

	"github.com/adtrdlvm/c-sike/internal/command"
)

type KeygenResult struct {
	Party      string `json:"party"`
	Seeded     bool   `json:"seeded"`
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

func (r *KeygenResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[SIDH KEY PAIR]\n")
	buffer.WriteString(command.FormatKV([]string{
		fmt.Sprintf("Party|%s", r.Party),
		fmt.Sprintf("Derived from seed|%t", r.Seeded),
		fmt.Sprintf("Private key|%s", r.PrivateKey),
		fmt.Sprintf("Public key|%s", r.PublicKey),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
