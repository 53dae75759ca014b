package selftest

import (
	"bytes"
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/adtrdlvm/c-sike/internal/command"
	"github.com/adtrdlvm/c-sike/p434"
)

const (
	roundsFlag = "rounds"

	defaultRounds = 1
)

var (
	params = &selftestParams{}

	errSecretMismatch = errors.New("shared secrets differ")
)

type selftestParams struct {
	rounds int
}

func (p *selftestParams) validateFlags() error {
	if p.rounds < 1 {
		return errors.Errorf("--%s must be at least 1", roundsFlag)
	}

	return nil
}

// Run one key agreement between fresh keys of both parties. Key pairs are
// generated concurrently, then both sides of the exchange.
func runRound(ctx context.Context) ([]byte, error) {
	var keys [2]*p434.P434PrivateKey

	g, gctx := errgroup.WithContext(ctx)

	for i, party := range []p434.Party{p434.PartyA, p434.PartyB} {
		i, party := i, party

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			sk, err := p434.P434GenerateKeyPair(party, nil)
			if err != nil {
				return errors.Wrapf(err, "party %s key generation", party)
			}

			keys[i] = sk

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		lock    sync.Mutex
		secrets [][]byte
	)

	g, gctx = errgroup.WithContext(ctx)

	for i := range keys {
		sk, pk := keys[i], keys[1-i].Public()

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			s, err := p434.P434KeyExchange(sk, pk)
			if err != nil {
				return errors.Wrapf(err, "party %s key exchange", sk.Party())
			}

			lock.Lock()
			secrets = append(secrets, s)
			lock.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !bytes.Equal(secrets[0], secrets[1]) {
		return nil, errSecretMismatch
	}

	return secrets[0], nil
}

func (p *selftestParams) getResult(elapsed string) command.CommandResult {
	return &SelftestResult{
		Rounds:  p.rounds,
		Elapsed: elapsed,
		Passed:  true,
	}
}
