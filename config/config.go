package config

import "gotokenbridge/types"

type Configuration struct {
	// Server config
	Server struct {
		UseSSL    bool   `yaml:"ssl"`
		Port      int    `yaml:"port" envconfig:"PORT"`
		RedisPort int    `yaml:"redis_port"`
		RedisHost string `yaml:"redis_host"`
	} `yaml:"server"`
	// EVM-related config
	EVM struct {
		// operator (relayer) account funded on every target chain
		OperatorAddress string `yaml:"operator_address" envconfig:"OPERATOR_ADDRESS"`
		// important private stuff
		OperatorPrivateKey string `yaml:"operator_private_key" envconfig:"OPERATOR_PRIVATE_KEY"`
	} `yaml:"EVM"`
}

var Config Configuration

// maximum number of consecutive WebSocket reconnect attempts per chain
const MaxReconnectAttempts = 5

// how long an event wait may hang before it is failed with a timeout
const EventWaitTimeoutSeconds = 150

// gas limit used when estimation itself fails on the release path
const FallbackGasLimit = 200000

// numerator/denominator of the gas safety margin applied to estimates
const GasMarginNum = 120
const GasMarginDen = 100

// ChainConfig is the immutable per-chain connection material.
type ChainConfig struct {
	Name          string
	ChainID       int64
	RPCList       []string // tried in order at startup
	WSURL         string
	BridgeAddress string
	BlockBatch    int // FilterLogs range for the backfill scan
	SafetyWindow  int // re-scan room behind the last cursor
	Tokens        map[string]types.TokenConfig
}

var Chains = map[int64]ChainConfig{
	84532: {
		Name:          "BaseSepolia",
		ChainID:       84532,
		RPCList:       []string{"https://sepolia.base.org", "https://base-sepolia-rpc.publicnode.com"},
		WSURL:         "wss://base-sepolia-rpc.publicnode.com",
		BridgeAddress: "0x6da05625714eF4494d3a0f4bBEEd7D4AEbb896cc",
		BlockBatch:    512,
		SafetyWindow:  10,
		Tokens: map[string]types.TokenConfig{
			"B10": {Symbol: "B10", Address: "0x62060727308449B9347f5649Ea7495C061009615", Decimals: 18},
		},
	},
	11155111: {
		Name:          "Sepolia",
		ChainID:       11155111,
		RPCList:       []string{"https://ethereum-sepolia-rpc.publicnode.com", "https://rpc.sepolia.org"},
		WSURL:         "wss://ethereum-sepolia-rpc.publicnode.com",
		BridgeAddress: "0x9cE154086A4F1cb0B92D9cDf416b59dd1bD57E31",
		BlockBatch:    512,
		SafetyWindow:  10,
		Tokens: map[string]types.TokenConfig{
			"B10": {Symbol: "B10", Address: "0x22DD04E98a65396714b64a712678A2D27737Bb77", Decimals: 18},
		},
	},
	421614: {
		Name:          "ArbitrumSepolia",
		ChainID:       421614,
		RPCList:       []string{"https://sepolia-rollup.arbitrum.io/rpc", "https://arbitrum-sepolia-rpc.publicnode.com"},
		WSURL:         "wss://arbitrum-sepolia-rpc.publicnode.com",
		BridgeAddress: "0xBf4cBcbd1D9e9B296cbCbD06Ed4b38d5A3a9cb9A",
		BlockBatch:    512,
		SafetyWindow:  25,
		Tokens: map[string]types.TokenConfig{
			"USDC": {Symbol: "USDC", Address: "0x75faf114eafb1BDbe2F0316DF893fd58CE46AA4d", Decimals: 6},
		},
	},
}

// ConversionRates is the directed (sourceToken, targetToken) rate table,
// keyed by lowercase "source:target" addresses. Every pair actually bridged
// must be listed, identity pairs included; a missing entry is a hard error
// on the release path, never a silent 1.
var ConversionRates = map[string]string{
	// B10 Base Sepolia <-> B10 Sepolia, 1:1
	"0x62060727308449b9347f5649ea7495c061009615:0x22dd04e98a65396714b64a712678a2d27737bb77": "1",
	"0x22dd04e98a65396714b64a712678a2d27737bb77:0x62060727308449b9347f5649ea7495c061009615": "1",
	// B10 Sepolia -> USDC Arbitrum Sepolia
	"0x22dd04e98a65396714b64a712678a2d27737bb77:0x75faf114eafb1bdbe2f0316df893fd58ce46aa4d": "0.0005",
}
