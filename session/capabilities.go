package session

import (
	"context"
)

// LinkedWallet is an account reported by the wallet provider.
type LinkedWallet struct {
	Address          string `json:"address"`
	WalletClientType string `json:"walletClientType"`
}

// WalletProvider is the external wallet connection capability.
type WalletProvider interface {
	Connect(ctx context.Context) error
	ListWallets(ctx context.Context) ([]LinkedWallet, error)
	Disconnect(ctx context.Context) error
}

// VerificationProof is the opaque proof delivered by the identity verification widget.
type VerificationProof struct {
	MerkleRoot        string `json:"merkle_root"`
	NullifierHash     string `json:"nullifier_hash"`
	Proof             string `json:"proof"`
	VerificationLevel string `json:"verification_level"`
}

// Verifier checks a verification proof bound to a signal.
type Verifier interface {
	Verify(ctx context.Context, proof *VerificationProof, signal string) error
}

// BalanceFetcher returns the balances of an address on both chains. It never fails.
type BalanceFetcher interface {
	FetchBalances(ctx context.Context, address string) ChainBalances
}

// TransferRequest is handed to a Submitter once the transfer form is eligible.
type TransferRequest struct {
	FromChain   Chain
	ToChain     Chain
	Amount      string
	Sender      string
	Destination string
}

// SubmissionResult is shown on the success screen or as an inline error.
type SubmissionResult struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash,omitempty"`
	ErrorMessage    string `json:"errorMessage,omitempty"`
}

// Submitter executes a transfer.
type Submitter interface {
	Submit(ctx context.Context, req *TransferRequest) (*SubmissionResult, error)
}
