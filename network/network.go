package network

// Network type represents prefixes for each network
// https://en.bitcoin.it/wiki/List_of_address_prefixes
type Network struct {
	Name string
	// Human-readable part for Bech32 encoded segwit addresses, as defined
	// in BIP 173.
	Bech32 string
	// Address encoding magic
	PubKeyHash byte
	ScriptHash byte
	// First byte of a WIF private key
	Wif byte
}

// Mainnet defines the network parameters for the main Bitcoin network.
var Mainnet = Network{
	Name:       "mainnet",
	Bech32:     "bc",
	PubKeyHash: 0x00,
	ScriptHash: 0x05,
	Wif:        0x80,
}

// Testnet defines the network parameters for the test Bitcoin network.
var Testnet = Network{
	Name:       "testnet",
	Bech32:     "tb",
	PubKeyHash: 0x6f,
	ScriptHash: 0xc4,
	Wif:        0xef,
}

// Regtest defines the network parameters for the regression test network.
var Regtest = Network{
	Name:       "regtest",
	Bech32:     "bcrt",
	PubKeyHash: 0x6f,
	ScriptHash: 0xc4,
	Wif:        0xef,
}
