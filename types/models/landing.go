package models

// LandingPageData is a struct to hold info for the landing page
type LandingPageData struct {
	SessionId      string `json:"session"`
	GetStartedLink string `json:"get_started_link"`

	VerificationAppId  string `json:"verification_app_id"`
	VerificationAction string `json:"verification_action"`
	VerificationSignal string `json:"verification_signal"`
	Verified           bool   `json:"verified"`
	VerifyError        string `json:"verify_error"`

	ClaimAddress string `json:"claim_address"`
	ClaimError   string `json:"claim_error"`

	ShowTransfer bool              `json:"show_transfer"`
	Transfer     *TransferPageData `json:"transfer"`
}
