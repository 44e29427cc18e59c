package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ethpandaops/getgas/metrics"
	"github.com/ethpandaops/getgas/session"
	"github.com/ethpandaops/getgas/utils"
)

// BalanceClient is the chain rpc capability used by the BalanceReader.
type BalanceClient interface {
	GetBalanceAt(ctx context.Context, wallet common.Address, blockNumber *big.Int) (*big.Int, error)
}

// BalanceReader reads the native balance of an address on both configured chains.
type BalanceReader struct {
	chainA  BalanceClient
	chainB  BalanceClient
	timeout time.Duration
	logger  logrus.FieldLogger
}

func NewBalanceReader(chainA, chainB BalanceClient, timeout time.Duration, logger logrus.FieldLogger) *BalanceReader {
	return &BalanceReader{
		chainA:  chainA,
		chainB:  chainB,
		timeout: timeout,
		logger:  logger,
	}
}

// FetchBalances queries both chains concurrently. If any query fails or the timeout passes,
// both balances are reported as "0".
func (br *BalanceReader) FetchBalances(ctx context.Context, address string) session.ChainBalances {
	if !utils.IsValidAddress(address) {
		br.logger.WithField("address", address).Warn("skipping balance fetch for invalid address")
		return session.ZeroBalances()
	}

	startTime := time.Now()
	defer func() {
		metrics.BalanceFetchDuration.Observe(time.Since(startTime).Seconds())
	}()

	if br.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, br.timeout)
		defer cancel()
	}

	wallet := common.HexToAddress(address)
	var balanceA, balanceB *big.Int

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		balance, err := br.chainA.GetBalanceAt(groupCtx, wallet, nil)
		if err != nil {
			return fmt.Errorf("chainA balance: %w", err)
		}
		balanceA = balance
		return nil
	})
	group.Go(func() error {
		balance, err := br.chainB.GetBalanceAt(groupCtx, wallet, nil)
		if err != nil {
			return fmt.Errorf("chainB balance: %w", err)
		}
		balanceB = balance
		return nil
	})

	if err := group.Wait(); err != nil {
		result := "error"
		if errors.Is(err, context.DeadlineExceeded) {
			result = "timeout"
		}
		metrics.BalanceFetches.WithLabelValues(result).Inc()
		br.logger.WithError(err).WithField("address", address).Warnf("error fetching balances, falling back to zero")
		return session.ZeroBalances()
	}

	metrics.BalanceFetches.WithLabelValues("ok").Inc()
	balances := session.ChainBalances{
		ChainA: utils.FormatEther(balanceA),
		ChainB: utils.FormatEther(balanceB),
	}
	br.logger.WithFields(logrus.Fields{
		"address": address,
		"chainA":  balances.ChainA,
		"chainB":  balances.ChainB,
	}).Debugf("fetched balances")
	return balances
}
