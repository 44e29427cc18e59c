package session

import (
	"context"
	"errors"
	"testing"
)

type fakeVerifier struct {
	err        error
	calls      int
	lastSignal string
}

func (f *fakeVerifier) Verify(ctx context.Context, proof *VerificationProof, signal string) error {
	f.calls++
	f.lastSignal = signal
	return f.err
}

func TestVerificationGateLatch(t *testing.T) {
	var gate VerificationGate
	if gate.Verified {
		t.Fatal("new gate is verified")
	}

	gate.OnFailure(errors.New("rejected"))
	if gate.Verified {
		t.Error("failure verified the gate")
	}
	if gate.ErrorMessage == "" {
		t.Error("failure left no error message")
	}

	gate.OnSuccess()
	if !gate.Verified {
		t.Fatal("success did not verify the gate")
	}
	if gate.ErrorMessage != "" {
		t.Errorf("success kept error message %q", gate.ErrorMessage)
	}

	gate.OnFailure(errors.New("late failure"))
	gate.OnSuccess()
	gate.OnFailure(errors.New("another failure"))
	if !gate.Verified {
		t.Error("gate was reset after verification")
	}
	if gate.ErrorMessage != "" {
		t.Errorf("failure after verification set error message %q", gate.ErrorMessage)
	}
}

func TestVerificationGateVerify(t *testing.T) {
	ctx := context.Background()
	proof := &VerificationProof{MerkleRoot: "0x01", NullifierHash: "0x02", Proof: "0x03"}

	t.Run("failed verification", func(t *testing.T) {
		var gate VerificationGate
		verifier := &fakeVerifier{err: errors.New("invalid proof")}

		if err := gate.Verify(ctx, verifier, proof, validAddress); err == nil {
			t.Error("Verify() returned no error")
		}
		if gate.Verified {
			t.Error("gate verified after failed verification")
		}
		if gate.ErrorMessage != verificationFailedMessage {
			t.Errorf("ErrorMessage = %q, want %q", gate.ErrorMessage, verificationFailedMessage)
		}
		if verifier.lastSignal != validAddress {
			t.Errorf("signal = %q, want %q", verifier.lastSignal, validAddress)
		}
	})

	t.Run("successful verification", func(t *testing.T) {
		var gate VerificationGate
		verifier := &fakeVerifier{}

		if err := gate.Verify(ctx, verifier, proof, ""); err != nil {
			t.Errorf("Verify() error = %v", err)
		}
		if !gate.Verified {
			t.Error("gate not verified")
		}

		verifier.err = errors.New("replayed proof")
		gate.Verify(ctx, verifier, proof, "")
		if !gate.Verified {
			t.Error("failed re-verification reset the gate")
		}
	})
}
