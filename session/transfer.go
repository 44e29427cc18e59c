package session

import (
	"github.com/ethpandaops/getgas/utils"
)

const (
	LabelConnectWallet = "Connect wallet"
	LabelEnterAmount   = "Enter amount greater than 0"
	LabelEnterAddress  = "Enter valid address"
	LabelTransfer      = "Transfer"
)

// TransferForm is the draft of a transfer between the two chains.
// FromChain and ToChain are always different.
type TransferForm struct {
	Amount             string `json:"amount"`
	FromChain          Chain  `json:"fromChain"`
	ToChain            Chain  `json:"toChain"`
	DestinationAddress string `json:"destinationAddress"`
}

// Eligibility is the state of the submit button.
type Eligibility struct {
	CanSubmit bool
	Label     string
}

func NewTransferForm() TransferForm {
	return TransferForm{
		FromChain: ChainA,
		ToChain:   ChainB,
	}
}

// SetFromChain selects the source chain, the destination becomes the other chain.
func (f *TransferForm) SetFromChain(chain Chain) {
	if !chain.Valid() {
		return
	}
	f.FromChain = chain
	f.ToChain = chain.Complement()
}

// SetToChain selects the destination chain, the source becomes the other chain.
func (f *TransferForm) SetToChain(chain Chain) {
	if !chain.Valid() {
		return
	}
	f.ToChain = chain
	f.FromChain = chain.Complement()
}

func (f *TransferForm) SwapDirection() {
	f.FromChain, f.ToChain = f.ToChain, f.FromChain
}

func (f *TransferForm) SetAmount(text string) {
	f.Amount = text
}

// UseMaxAmount fills in the full balance of the source chain.
func (f *TransferForm) UseMaxAmount(balances ChainBalances) {
	f.Amount = balances.Of(f.FromChain)
}

func (f *TransferForm) SetDestinationAddress(text string) {
	f.DestinationAddress = text
}

// HasValidAmount reports whether the amount parses to a value greater than zero.
func (f *TransferForm) HasValidAmount() bool {
	amount, ok := utils.ParseAmount(f.Amount)
	return ok && amount.IsPositive()
}

// ComputeEligibility evaluates the submit button. The first failing rule wins.
func (f *TransferForm) ComputeEligibility(connected bool) Eligibility {
	switch {
	case !connected:
		return Eligibility{Label: LabelConnectWallet}
	case !f.HasValidAmount():
		return Eligibility{Label: LabelEnterAmount}
	case !utils.IsValidAddress(f.DestinationAddress):
		return Eligibility{Label: LabelEnterAddress}
	default:
		return Eligibility{CanSubmit: true, Label: LabelTransfer}
	}
}

// ReceiveText is shown in the "You will receive" row.
func (f *TransferForm) ReceiveText() string {
	if f.Amount == "" {
		return "-"
	}
	return f.Amount + " ETH"
}
