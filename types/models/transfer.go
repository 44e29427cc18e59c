package models

// TransferPageData is a struct to hold info for the transfer form
type TransferPageData struct {
	SessionId string `json:"session"`
	View      string `json:"view"`

	WalletConnected    bool   `json:"wallet_connected"`
	WalletAddress      string `json:"wallet_address"`
	WalletAddressShort string `json:"wallet_address_short"`
	WalletIcon         string `json:"wallet_icon"`
	WalletClientType   string `json:"wallet_client_type"`

	ConnectRequested    bool `json:"connect_requested"`
	DisconnectRequested bool `json:"disconnect_requested"`

	Chains      []*TransferPageDataChain `json:"chains"`
	FromChain   string                   `json:"from_chain"`
	ToChain     string                   `json:"to_chain"`
	FromBalance string                   `json:"from_balance"`
	ToBalance   string                   `json:"to_balance"`

	Amount             string `json:"amount"`
	DestinationAddress string `json:"destination_address"`

	GasCost      string `json:"gas_cost"`
	InterfaceFee string `json:"interface_fee"`
	ReceiveText  string `json:"receive_text"`

	CanSubmit      bool   `json:"can_submit"`
	ButtonDisabled bool   `json:"button_disabled"`
	ButtonLabel    string `json:"button_label"`
}

type TransferPageDataChain struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	ChainId uint64 `json:"chain_id"`
}
