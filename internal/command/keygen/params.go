package keygen

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/adtrdlvm/c-sike/internal/command"
	"github.com/adtrdlvm/c-sike/p434"
)

const (
	seedFlag = "seed"
)

var (
	params = &keygenParams{}
)

type keygenParams struct {
	party string
	seed  string

	sk *p434.P434PrivateKey
}

func (p *keygenParams) generateKey() error {
	party, err := command.ParseParty(p.party)
	if err != nil {
		return err
	}

	if p.seed != "" {
		p.sk, err = p434.P434DeriveKeyFromSeed(party, []byte(p.seed))
	} else {
		p.sk, err = p434.P434GenerateKeyPair(party, nil)
	}

	if err != nil {
		return errors.Wrap(err, "unable to generate key pair")
	}

	return nil
}

func (p *keygenParams) getResult() command.CommandResult {
	return &KeygenResult{
		Party:      p.sk.Party().String(),
		Seeded:     p.seed != "",
		PrivateKey: hex.EncodeToString(p.sk.Encode(nil)),
		PublicKey:  hex.EncodeToString(p.sk.Public().Encode(nil)),
	}
}
