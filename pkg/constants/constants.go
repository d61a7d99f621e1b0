package constants

import "time"

const (
	ConnectTimeout          = 30 * time.Second // timeout for the wallet pairing handshake
	SocketHandshakeTimeout  = 45 * time.Second // timeout for the websocket upgrade against the wallet
	SocketWriteTimeout      = 10 * time.Second // timeout for a single envelope write
	MaxEnvelopePayloadSize  = 1 * 1024 * 1024  // maximum accepted envelope payload size in bytes (1MB)
	DefaultWalletSocketPort = 50005            // local port the desktop wallet listens on
)

const (
	ChainAPITimeout     = 15 * time.Second // timeout for a single chain API request
	MaxResponseBodySize = 4 * 1024 * 1024  // maximum accepted chain API response body size in bytes (4MB)
)

const (
	DefaultSecurePort   = 443 // default port for https chain endpoints
	DefaultInsecurePort = 80  // default port for http chain endpoints
)

// Chain names as they appear in wallet identity hints (matched uppercased)
const (
	ChainEOS     = "EOS"
	ChainTelos   = "TELOS"
	ChainWAX     = "WAX"
	ChainProton  = "PROTON"
	ChainFIO     = "FIO"
	ChainJungle4 = "JUNGLE4"
	ChainKylin   = "KYLIN"
)

const (
	ChainIDEOS     = "aca376f206b8fc25a6ed44dbdc66547c36c6c33e3a119ffbeaef943642f0e906"
	ChainIDTelos   = "4667b205c6838ef70ff7988f6e8257e8be0e1284a2f59699054a018f743b1d11"
	ChainIDWAX     = "1064487b3cd1a897ce03ae5b6a865651747e2e152090f99c1d19d44e01aea5a4"
	ChainIDProton  = "384da888112027f0321850a169f737c33e53b388aad48b5adace4bab97f437e0"
	ChainIDFIO     = "21dcae42c0182200e93f954a074011f9048a7624c6fe81d3c9541a614a88bd1c"
	ChainIDJungle4 = "73e4385a2708e6d7048834fbc1079f2fabb17b3c125b146af438971e90716c4d"
	ChainIDKylin   = "5fff1dae8dc8e2fc4d5b23b2c7665c97f9e9d8edf2b6485a86ba311c25639191"
)

// mapping from uppercased chain name to chain identifier (hex)
var ChainNameToID = map[string]string{
	ChainEOS:     ChainIDEOS,
	ChainTelos:   ChainIDTelos,
	ChainWAX:     ChainIDWAX,
	ChainProton:  ChainIDProton,
	ChainFIO:     ChainIDFIO,
	ChainJungle4: ChainIDJungle4,
	ChainKylin:   ChainIDKylin,
}
