package models

// SuccessPageData is a struct to hold info for the success screen
type SuccessPageData struct {
	TransactionHash string `json:"tx_hash"`
	BlockscoutLink  string `json:"blockscout_link"`
	RoutescanLink   string `json:"routescan_link"`
	DonationTarget  string `json:"donation_target"`
}
