package payment

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"
	"github.com/vulpemventures/go-hashes/address"
	"github.com/vulpemventures/go-hashes/hashes"
	"github.com/vulpemventures/go-hashes/network"
)

// Payment defines the structure that holds the fingerprint and scripts
// derived from a public key or a redeem script.
type Payment struct {
	Hash          hashes.Hash160
	Script        []byte
	WitnessScript []byte
	PublicKey     *btcec.PublicKey
	Network       *network.Network
}

// FromPublicKey creates a Payment struct from a btcec.PublicKey. The
// fingerprint is the HASH160 of the compressed serialization.
func FromPublicKey(pubkey *btcec.PublicKey, net *network.Network) *Payment {
	var tmpNet *network.Network
	if net == nil {
		tmpNet = &network.Mainnet
	} else {
		tmpNet = net
	}

	pkHash := hashes.SumHash160(pubkey.SerializeCompressed())
	script := buildScript(pkHash.Bytes(), "p2pkh")
	witnessScript := buildScript(pkHash.Bytes(), "p2wpkh")

	return &Payment{
		Hash:          pkHash,
		Script:        script,
		WitnessScript: witnessScript,
		PublicKey:     pubkey,
		Network:       tmpNet,
	}
}

// FromRedeemScript creates a Payment struct from a redeem script. The
// fingerprint is the HASH160 of the script, the witness script commits
// to its SHA256 as segwit v0 requires.
func FromRedeemScript(
	script []byte,
	net *network.Network,
) (*Payment, error) {
	if len(script) == 0 {
		return nil, errors.New("script can't be empty or nil")
	}

	var tmpNet *network.Network
	if net == nil {
		tmpNet = &network.Mainnet
	} else {
		tmpNet = net
	}

	scriptHash := hashes.SumHash160(script)
	witnessHash := hashes.SumSha256(script)

	return &Payment{
		Hash:          scriptHash,
		Script:        buildScript(scriptHash.Bytes(), "p2sh"),
		WitnessScript: buildScript(witnessHash.Bytes(), "p2wsh"),
		Network:       tmpNet,
	}, nil
}

// PubKeyHash returns the legacy base58check address for the payment's
// fingerprint.
func (p *Payment) PubKeyHash() string {
	payload := &address.Base58{
		Version: p.Network.PubKeyHash,
		Data:    p.Hash.Bytes(),
	}
	return address.ToBase58(payload)
}

// ScriptHash returns the p2sh base58check address for the payment's
// fingerprint.
func (p *Payment) ScriptHash() string {
	payload := &address.Base58{
		Version: p.Network.ScriptHash,
		Data:    p.Hash.Bytes(),
	}
	return address.ToBase58(payload)
}

// WitnessPubKeyHash returns the native segwit v0 address for the
// payment's fingerprint.
func (p *Payment) WitnessPubKeyHash() (string, error) {
	payload := &address.Bech32{
		Prefix:  p.Network.Bech32,
		Version: 0,
		Data:    p.Hash.Bytes(),
	}
	return address.ToBech32(payload)
}

// buildScript returns the requested scriptType script with the provided hash
func buildScript(hash []byte, scriptType string) []byte {
	builder := txscript.NewScriptBuilder()

	switch scriptType {
	case "p2pkh":
		builder.AddOp(txscript.OP_DUP).AddOp(txscript.OP_HASH160)
		builder.AddData(hash)
		builder.AddOp(txscript.OP_EQUALVERIFY).AddOp(txscript.OP_CHECKSIG)
	case "p2sh":
		builder.AddOp(txscript.OP_HASH160).AddData(hash).AddOp(txscript.OP_EQUAL)
	case "p2wpkh", "p2wsh":
		builder.AddOp(txscript.OP_0).AddData(hash)
	}

	script, _ := builder.Script()
	return script
}
