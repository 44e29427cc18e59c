package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sirupsen/logrus"

	"github.com/ethpandaops/getgas/metrics"
	"github.com/ethpandaops/getgas/session"
)

var (
	ErrVerificationFailed        = errors.New("verification failed")
	ErrVerificationNotConfigured = errors.New("verification app id not configured")
)

// WorldIDVerifier checks World ID proofs against the developer portal api.
type WorldIDVerifier struct {
	appId     string
	action    string
	verifyUrl string
	client    *http.Client
	logger    logrus.FieldLogger
}

func NewWorldIDVerifier(appId, action, verifyUrl string, timeout time.Duration, logger logrus.FieldLogger) *WorldIDVerifier {
	if appId != "" && !strings.HasPrefix(appId, "app_") {
		appId = "app_" + appId
	}
	if timeout == 0 {
		timeout = time.Second * 15
	}

	return &WorldIDVerifier{
		appId:     appId,
		action:    action,
		verifyUrl: verifyUrl,
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

func (v *WorldIDVerifier) AppId() string {
	return v.appId
}

func (v *WorldIDVerifier) Action() string {
	return v.action
}

// Verify validates proof for the configured action and the given signal.
func (v *WorldIDVerifier) Verify(ctx context.Context, proof *session.VerificationProof, signal string) error {
	err := v.verify(ctx, proof, signal)
	if err != nil {
		metrics.Verifications.WithLabelValues("failed").Inc()
		v.logger.WithError(err).Warnf("world id verification failed")
		return err
	}

	metrics.Verifications.WithLabelValues("ok").Inc()
	v.logger.WithField("nullifier", proof.NullifierHash).Infof("world id verification succeeded")
	return nil
}

func (v *WorldIDVerifier) verify(ctx context.Context, proof *session.VerificationProof, signal string) error {
	if v.appId == "" {
		return ErrVerificationNotConfigured
	}
	if proof == nil || proof.Proof == "" || proof.NullifierHash == "" || proof.MerkleRoot == "" {
		return fmt.Errorf("%w: incomplete proof", ErrVerificationFailed)
	}

	reqBody, err := json.Marshal(map[string]string{
		"merkle_root":        proof.MerkleRoot,
		"nullifier_hash":     proof.NullifierHash,
		"proof":              proof.Proof,
		"verification_level": proof.VerificationLevel,
		"action":             v.action,
		"signal_hash":        hashToField(signal),
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf(v.verifyUrl, v.appId)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("world id verify request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading world id response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var errorResponse struct {
			Code   string `json:"code"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(data, &errorResponse); err != nil {
			return fmt.Errorf("%w: status: %v", ErrVerificationFailed, resp.StatusCode)
		}
		return fmt.Errorf("%w: code: %v, status: %v, detail: %v", ErrVerificationFailed, errorResponse.Code, resp.StatusCode, errorResponse.Detail)
	}

	var returnValue struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(data, &returnValue); err != nil {
		return fmt.Errorf("error parsing world id response: %w", err)
	}
	if !returnValue.Success {
		return fmt.Errorf("%w: api did not report success", ErrVerificationFailed)
	}

	return nil
}

// hashToField hashes a signal the same way the World ID widget does: keccak256 of the signal
// bytes (hex strings are decoded first), shifted right by 8 bits to fit the snark field.
func hashToField(signal string) string {
	input := []byte(signal)
	if strings.HasPrefix(signal, "0x") {
		if decoded, err := hexutil.Decode(signal); err == nil {
			input = decoded
		}
	}

	value := new(big.Int).SetBytes(crypto.Keccak256(input))
	value.Rsh(value, 8)
	return fmt.Sprintf("0x%064x", value)
}
