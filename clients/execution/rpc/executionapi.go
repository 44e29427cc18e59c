package rpc

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/sirupsen/logrus"
)

// ExecutionClient is a read-only json-rpc client for one configured chain.
type ExecutionClient struct {
	name      string
	chainId   uint64
	endpoint  string
	headers   map[string]string
	logger    logrus.FieldLogger
	rpcClient *rpc.Client
	ethClient *ethclient.Client
}

// NewExecutionClient is used to create a new execution client
func NewExecutionClient(name string, chainId uint64, endpoint string, headers map[string]string, logger logrus.FieldLogger) *ExecutionClient {
	return &ExecutionClient{
		name:     name,
		chainId:  chainId,
		endpoint: endpoint,
		headers:  headers,
		logger:   logger.WithField("chain", name),
	}
}

func (ec *ExecutionClient) Initialize(ctx context.Context) error {
	if ec.ethClient != nil {
		return nil
	}

	rpcClient, err := rpc.DialContext(ctx, ec.endpoint)
	if err != nil {
		return fmt.Errorf("could not dial %v rpc: %w", ec.name, err)
	}

	for hKey, hVal := range ec.headers {
		rpcClient.SetHeader(hKey, hVal)
	}

	ec.rpcClient = rpcClient
	ec.ethClient = ethclient.NewClient(rpcClient)

	return nil
}

// CheckChainId compares the chain id reported by the endpoint with the configured one.
func (ec *ExecutionClient) CheckChainId(ctx context.Context) error {
	chainId, err := ec.ethClient.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("could not get chain id: %w", err)
	}
	if chainId.Uint64() != ec.chainId {
		return fmt.Errorf("chain id mismatch: endpoint reports %v, configured %v", chainId, ec.chainId)
	}
	ec.logger.Debugf("chain id %v confirmed", chainId)
	return nil
}

func (ec *ExecutionClient) GetName() string {
	return ec.name
}

func (ec *ExecutionClient) GetChainId() uint64 {
	return ec.chainId
}

func (ec *ExecutionClient) GetBalanceAt(ctx context.Context, wallet common.Address, blockNumber *big.Int) (*big.Int, error) {
	return ec.ethClient.BalanceAt(ctx, wallet, blockNumber)
}

func (ec *ExecutionClient) Close() {
	if ec.rpcClient != nil {
		ec.rpcClient.Close()
	}
}
