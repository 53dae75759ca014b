package root

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adtrdlvm/c-sike/internal/command/exchange"
	"github.com/adtrdlvm/c-sike/internal/command/keygen"
	"github.com/adtrdlvm/c-sike/internal/command/selftest"
	"github.com/adtrdlvm/c-sike/internal/params"
	"github.com/adtrdlvm/c-sike/p434"
)

var (
	skA = "3a727e04ea9b7e2a766a6f846489e7e7b915263bceed308bb10fc9"
	skB = "e37bfe55b43b32448f375903d8d226ec94adbfea1d2b3536eb987001"

	pkA = "9e668d1e6750ed4b91ee052c32839ca9dd2e56d52bc24decc950aaad24ceed3f" +
		"9049c77fe80f0b9b01e7f8dad7833eec2286544d6380009c379cdd3e7517cef5" +
		"e20eb01f8231d52fc30dc61d2f63fb357f85dc6396e8a95db9740bd3a972c8db" +
		"7901b31f074cd3e45345ca78f900817130e688a29a7cf0073b5c00ff2c65fbe7" +
		"76918ef9bd8e75b29ef7fab791969b60b0c5b37a8992edef95fa7bac40a95daf" +
		"e02e237301fee9a7a43fd0b73477e8035dd12b73fafef18d39904dde3653a754" +
		"f36be1888f6607c6a7951349a414352cf31a29f2c40302db406c48018c905eb9" +
		"dc46afbf42a9187a9bb9e51b587622a2862dc7d5cc598bf38ed6320fb51d8697" +
		"ad3d7a72abcc32a393f0133da8df5e253d9e00b760b2df342fce974dcfe946cf" +
		"e4727783531882800f9e5dd594d6d5a6275eefef9713ed838f4a06bb34d7b8d4" +
		"6e0b385aaea1c7963601"

	pkB = "c9f73e4497aaa3fdf9eb688135866a8a83934ba10e273b8cc3808cf0c1f5fab3" +
		"e9bb295885881b73debc875670c0f51c4bb40df5fede01b8af32d1bf10508b8c" +
		"17b2734eb93b2b7f5d84a4a0f2f816e9e2c32ac253c0b6025b124d05a87a9e2a" +
		"8567930f44baa14219b941b6b400b4aed1d796da12a5a9f0b8f3f5ee9dd43f64" +
		"cb24a3b1719df278adf56b5f3395187829da2319deabf6bbd6eda244de2b62cc" +
		"5ac250c1009dd1cd4712b0b37406612ad002b5e51a62b51ac9c0374d143abbbd" +
		"58275fafc4a5e959c54838c2d6d9fb43b7b2609061267b6a2e6c6d01d295c422" +
		"3e0d3d7a4cdcfb28a7818a737935279751a6dd8290fd498d1f6ad5f4fff6bdfa" +
		"536713f509dce8047252f1e7d0dd9fcc414c0070b5dcce3665a21a032d7fbe74" +
		"9181032183afad240b7e671e87fbbec3a8ca4c11aa7a9a23ac69ae2acf54b664" +
		"decd27753d63508f1b02"

	shared = "e7c38f69bceeee72f110aecef842535ab7b7299e449f0863d33eab633c87e0b1" +
		"db028ff8f95638dc22998e6696c57188f6147b2002780193f24eebd16fd38eb3" +
		"7f8d17689a36d4566820573c05a369b7c0ada702b6d2c5ddafa76f25e4fcfdcf" +
		"6d2ddff3144df107e2dc0cad7a00"
)
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := NewRootCommand().BaseCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestKeygenSeed(t *testing.T) {
	out, _, err := run(t, "keygen", "--party", "a", "--seed", "sidhtool test seed", "--json")
	require.NoError(t, err)

	var res keygen.KeygenResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, "A", res.Party)
	require.True(t, res.Seeded)
	require.Equal(t, "ea434f700acc9cc2afe1d066454fc28022192d2279d36d23a398b6", res.PrivateKey)
	require.Len(t, res.PublicKey, 2*p434.P434PublicKeySize)

	out, _, err = run(t, "keygen", "--party", "B", "--seed", "sidhtool test seed")
	require.NoError(t, err)
	require.Contains(t, out, "[SIDH KEY PAIR]")
	require.Contains(t, out, "8c6444826a92797242e85d93cc91838defc7179295261d85d2db8b00")
}

func TestKeygenRandom(t *testing.T) {
	out1, _, err := run(t, "keygen", "--party", "B", "--json")
	require.NoError(t, err)
	out2, _, err := run(t, "keygen", "--party", "B", "--json")
	require.NoError(t, err)

	var r1, r2 keygen.KeygenResult
	require.NoError(t, json.Unmarshal([]byte(out1), &r1))
	require.NoError(t, json.Unmarshal([]byte(out2), &r2))
	require.False(t, r1.Seeded)
	require.Len(t, r1.PrivateKey, 2*p434.P434PrivateKeySize(p434.PartyB))
	require.NotEqual(t, r1.PrivateKey, r2.PrivateKey)

	_, _, err = run(t, "keygen", "--party", "C")
	require.ErrorIs(t, err, params.ErrUnknownParty)
}

func TestPublic(t *testing.T) {
	out, _, err := run(t, "public", "--party", "A", "--private", skA)
	require.NoError(t, err)
	require.Contains(t, out, "[SIDH PUBLIC KEY]")
	require.Contains(t, out, pkA)

	out, _, err = run(t, "public", "--party", "B", "--private", strings.ToUpper(skB))
	require.NoError(t, err)
	require.Contains(t, out, pkB)

	// Missing required flag.
	_, _, err = run(t, "public", "--party", "A")
	require.Error(t, err)

	// A private key of A is too short for B.
	_, stderr, err := run(t, "public", "--party", "B", "--private", skA)
	require.ErrorIs(t, err, p434.ErrInvalidKey)
	require.Contains(t, stderr, "unable to decode private key")
}

func TestExchange(t *testing.T) {
	out, _, err := run(t, "exchange", "--party", "A", "--private", skA, "--peer", pkB, "--json")
	require.NoError(t, err)

	var res exchange.ExchangeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, "A", res.Party)
	require.Equal(t, shared, res.SharedSecret)

	out, _, err = run(t, "exchange", "--party", "B", "--private", skB, "--peer", pkA)
	require.NoError(t, err)
	require.Contains(t, out, shared)
}

func TestExchangeErrors(t *testing.T) {
	_, stderr, err := run(t, "exchange", "--party", "A", "--private", "zz", "--peer", pkB)
	require.Error(t, err)
	require.Contains(t, stderr, "invalid hex in --private")

	_, _, err = run(t, "exchange", "--party", "A", "--private", skA, "--peer", pkB[:100])
	require.ErrorIs(t, err, p434.ErrInvalidKey)

	_, stderr, err = run(t, "exchange", "--party", "A", "--private", skA, "--peer", "", "--json")
	require.Error(t, err)

	var res struct {
		Err string `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(stderr), &res))
	require.Equal(t, "missing --peer", res.Err)
}

func TestSelftest(t *testing.T) {
	out, stderr, err := run(t, "selftest", "--rounds", "2", "--json", "--log-level", "debug")
	require.NoError(t, err)

	var res selftest.SelftestResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.True(t, res.Passed)
	require.Equal(t, 2, res.Rounds)
	require.Contains(t, stderr, "round passed")

	_, _, err = run(t, "selftest", "--rounds", "0")
	require.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	out, stderr, err := run(t, "keygen", "--seed", "x", "--log-level", "debug", "--json")
	require.NoError(t, err)
	require.Contains(t, stderr, "key pair generated")

	var res keygen.KeygenResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotContains(t, stderr, res.PrivateKey)

	_, stderr, err = run(t, "keygen", "--seed", "x")
	require.NoError(t, err)
	require.Empty(t, stderr)
}
