package handlers

type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type APIStateResponse struct {
	Status string          `json:"status"`
	Chains []APIChainState `json:"chains"`
}

type APIChainState struct {
	ChainID       int64             `json:"chainId"`
	Name          string            `json:"name"`
	BridgeAddress string            `json:"bridgeAddress"`
	Liquidity     map[string]string `json:"liquidity"`
}
