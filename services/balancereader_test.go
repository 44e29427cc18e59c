package services

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/ethpandaops/getgas/session"
)

const testAddress = "0x1234567890abcdef1234567890abcdef12345678"

type fakeBalanceClient struct {
	balance *big.Int
	err     error
	block   bool
	calls   atomic.Int32
}

func (f *fakeBalanceClient) GetBalanceAt(ctx context.Context, wallet common.Address, blockNumber *big.Int) (*big.Int, error) {
	f.calls.Add(1)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.balance, f.err
}

func ether(units int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(units), big.NewInt(1e18))
}

func TestBalanceReaderFetchBalances(t *testing.T) {
	tests := []struct {
		name   string
		chainA *fakeBalanceClient
		chainB *fakeBalanceClient
		want   session.ChainBalances
	}{
		{
			name:   "both chains answer",
			chainA: &fakeBalanceClient{balance: big.NewInt(1500000000000000000)},
			chainB: &fakeBalanceClient{balance: ether(2)},
			want:   session.ChainBalances{ChainA: "1.5", ChainB: "2"},
		},
		{
			name:   "zero balances",
			chainA: &fakeBalanceClient{balance: big.NewInt(0)},
			chainB: &fakeBalanceClient{balance: big.NewInt(0)},
			want:   session.ChainBalances{ChainA: "0", ChainB: "0"},
		},
		{
			name:   "chainA rejects",
			chainA: &fakeBalanceClient{err: errors.New("connection refused")},
			chainB: &fakeBalanceClient{balance: ether(2)},
			want:   session.ChainBalances{ChainA: "0", ChainB: "0"},
		},
		{
			name:   "chainB rejects",
			chainA: &fakeBalanceClient{balance: ether(1)},
			chainB: &fakeBalanceClient{err: errors.New("rate limited")},
			want:   session.ChainBalances{ChainA: "0", ChainB: "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := test.NewNullLogger()
			reader := NewBalanceReader(tt.chainA, tt.chainB, time.Second, logger)

			got := reader.FetchBalances(context.Background(), testAddress)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, int32(1), tt.chainA.calls.Load())
			assert.Equal(t, int32(1), tt.chainB.calls.Load())
		})
	}
}

func TestBalanceReaderTimeout(t *testing.T) {
	logger, hook := test.NewNullLogger()
	chainA := &fakeBalanceClient{block: true}
	chainB := &fakeBalanceClient{balance: ether(2)}
	reader := NewBalanceReader(chainA, chainB, 50*time.Millisecond, logger)

	start := time.Now()
	got := reader.FetchBalances(context.Background(), testAddress)

	assert.Equal(t, session.ZeroBalances(), got)
	assert.Less(t, time.Since(start), 5*time.Second)
	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	}
}

func TestBalanceReaderInvalidAddress(t *testing.T) {
	logger, _ := test.NewNullLogger()
	chainA := &fakeBalanceClient{balance: ether(1)}
	chainB := &fakeBalanceClient{balance: ether(1)}
	reader := NewBalanceReader(chainA, chainB, time.Second, logger)

	got := reader.FetchBalances(context.Background(), "not-an-address")

	assert.Equal(t, session.ZeroBalances(), got)
	assert.Equal(t, int32(0), chainA.calls.Load())
	assert.Equal(t, int32(0), chainB.calls.Load())
}
