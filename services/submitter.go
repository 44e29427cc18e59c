package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ethpandaops/getgas/metrics"
	"github.com/ethpandaops/getgas/session"
)

// MockTransactionHash is returned for every placeholder submission.
const MockTransactionHash = "0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"

// MockSubmitter accepts every request without moving funds and reports MockTransactionHash.
type MockSubmitter struct {
	logger logrus.FieldLogger
}

func NewMockSubmitter(logger logrus.FieldLogger) *MockSubmitter {
	return &MockSubmitter{
		logger: logger,
	}
}

func (ms *MockSubmitter) Submit(ctx context.Context, req *session.TransferRequest) (*session.SubmissionResult, error) {
	kind := "transfer"
	if req.Sender == "" {
		kind = "claim"
	}
	metrics.Submissions.WithLabelValues(kind, "mocked").Inc()

	ms.logger.WithFields(logrus.Fields{
		"kind":        kind,
		"from":        req.FromChain.String(),
		"to":          req.ToChain.String(),
		"amount":      req.Amount,
		"sender":      req.Sender,
		"destination": req.Destination,
	}).Infof("placeholder submission, no transaction sent")

	return &session.SubmissionResult{
		Success:         true,
		TransactionHash: MockTransactionHash,
	}, nil
}
