package exchange

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/adtrdlvm/c-sike/internal/command"
	"github.com/adtrdlvm/c-sike/p434"
)

const (
	peerFlag = "peer"
)

var (
	params = &exchangeParams{}
)

type exchangeParams struct {
	party   string
	private string
	peer    string

	sk     *p434.P434PrivateKey
	pk     *p434.P434PublicKey
	shared []byte
}

func (p *exchangeParams) getRequiredFlags() []string {
	return []string{
		command.PrivateFlag,
		peerFlag,
	}
}

// The peer key belongs to the other party.
func (p *exchangeParams) decodeKeys() error {
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

	if raw, err = command.DecodeHex(peerFlag, p.peer); err != nil {
		return err
	}

	if p.pk, err = p434.P434DecodePublicKey(party.Other(), raw); err != nil {
		return errors.Wrap(err, "unable to decode peer public key")
	}

	return nil
}

func (p *exchangeParams) exchange() error {
	shared, err := p434.P434KeyExchange(p.sk, p.pk)
	if err != nil {
		return errors.Wrap(err, "key exchange failed")
	}

	p.shared = shared

	return nil
}

func (p *exchangeParams) getResult() command.CommandResult {
	return &ExchangeResult{
		Party:        p.sk.Party().String(),
		SharedSecret: hex.EncodeToString(p.shared),
	}
}
