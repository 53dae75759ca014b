package public

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/adtrdlvm/c-sike/internal/command"
	"github.com/adtrdlvm/c-sike/p434"
)

var (
	params = &publicParams{}
)

type publicParams struct {
	party   string
	private string

	sk *p434.P434PrivateKey
}

func (p *publicParams) getRequiredFlags() []string {
	return []string{
		command.PrivateFlag,
	}
}

func (p *publicParams) decodeKey() error {
	party, err := command.ParseParty(p.party)
	if err != nil {
		return err
	}

	raw, err := command.DecodeHex(command.PrivateFlag, p.private)
	if err != nil {
		return err
	}

	if p.sk, err = p434.P434DecodePrivateKey(party, raw); err != nil {
		return errors.Wrap(err, "unable to decode private key")
	}

	return nil
}

func (p *publicParams) getResult() command.CommandResult {
	return &PublicResult{
		Party:     p.sk.Party().String(),
		PublicKey: hex.EncodeToString(p.sk.Public().Encode(nil)),
	}
}
