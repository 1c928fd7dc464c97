package payment_test

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/go-hashes/address"
	"github.com/vulpemventures/go-hashes/network"
	"github.com/vulpemventures/go-hashes/payment"
)

const (
	// Private key 1 gives the secp256k1 generator point as public key;
	// the derived segwit address is the reference vector from BIP 173.
	privKeyHex    = "0000000000000000000000000000000000000000000000000000000000000001"
	pubKeyHashHex = "751e76e8199196d454941c45d1b3a323f1433bd6"
	p2pkhAddress  = "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"
	p2wpkhAddress = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
)

var privateKeyBytes, _ = hex.DecodeString(privKeyHex)

func TestLegacyAddress(t *testing.T) {
	_, publicKey := btcec.PrivKeyFromBytes(privateKeyBytes)

	pay := payment.FromPublicKey(publicKey, &network.Mainnet)
	assert.Equal(t, pubKeyHashHex, pay.Hash.String())
	if pay.PubKeyHash() != p2pkhAddress {
		t.Errorf("TestLegacyAddress: error when encoding legacy")
	}
}

func TestSegwitAddress(t *testing.T) {
	_, publicKey := btcec.PrivKeyFromBytes(privateKeyBytes)

	pay := payment.FromPublicKey(publicKey, &network.Mainnet)
	p2wpkh, err := pay.WitnessPubKeyHash()
	if err != nil {
		t.Error(err)
	}
	if p2wpkh != p2wpkhAddress {
		t.Errorf("TestSegwitAddress: error when encoding segwit")
	}
}

func TestScripts(t *testing.T) {
	_, publicKey := btcec.PrivKeyFromBytes(privateKeyBytes)

	pay := payment.FromPublicKey(publicKey, nil)
	assert.Equal(t, &network.Mainnet, pay.Network)
	assert.Equal(
		t, "76a914"+pubKeyHashHex+"88ac", hex.EncodeToString(pay.Script),
	)
	assert.Equal(
		t, "0014"+pubKeyHashHex, hex.EncodeToString(pay.WitnessScript),
	)
}

func TestScriptHash(t *testing.T) {
	_, publicKey := btcec.PrivKeyFromBytes(privateKeyBytes)

	p2wpkh := payment.FromPublicKey(publicKey, &network.Mainnet)
	pay, err := payment.FromRedeemScript(p2wpkh.WitnessScript, &network.Mainnet)
	require.NoError(t, err)

	decoded, err := address.FromBase58(pay.ScriptHash())
	require.NoError(t, err)
	assert.Equal(t, network.Mainnet.ScriptHash, decoded.Version)
	assert.Equal(t, pay.Hash.Bytes(), decoded.Data)

	assert.Equal(
		t, "a914"+pay.Hash.String()+"87", hex.EncodeToString(pay.Script),
	)
}

func TestFromRedeemScriptEmpty(t *testing.T) {
	_, err := payment.FromRedeemScript(nil, nil)
	require.Error(t, err)

	_, err = payment.FromRedeemScript([]byte{}, &network.Regtest)
	require.Error(t, err)
}
