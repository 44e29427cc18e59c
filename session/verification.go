package session

import (
	"context"
)

const verificationFailedMessage = "Verification failed, please try again"

// VerificationGate latches once an identity verification succeeded.
// Nothing sets Verified back to false.
type VerificationGate struct {
	Verified     bool   `json:"verified"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

func (g *VerificationGate) OnSuccess() {
	g.Verified = true
	g.ErrorMessage = ""
}

// OnFailure records a failed attempt for display. A verified gate ignores failures.
func (g *VerificationGate) OnFailure(err error) {
	if g.Verified {
		return
	}
	g.ErrorMessage = verificationFailedMessage
}

// Verify runs the verifier and feeds its outcome into the gate.
func (g *VerificationGate) Verify(ctx context.Context, verifier Verifier, proof *VerificationProof, signal string) error {
	err := verifier.Verify(ctx, proof, signal)
	if err != nil {
		g.OnFailure(err)
		return err
	}
	g.OnSuccess()
	return nil
}
