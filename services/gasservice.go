package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ethpandaops/getgas/cache"
	"github.com/ethpandaops/getgas/clients/execution/rpc"
	"github.com/ethpandaops/getgas/session"
	"github.com/ethpandaops/getgas/types"
	"github.com/ethpandaops/getgas/utils"
)

// GasService wires the components behind the landing and transfer pages.
type GasService struct {
	logger        logrus.FieldLogger
	chainClients  []*rpc.ExecutionClient
	balanceReader session.BalanceFetcher
	sessionStore  *SessionStore
	verifier      session.Verifier
	submitter     session.Submitter
	rateLimiter   *CallRateLimiter
}

var GlobalGasService *GasService

func NewGasService(logger logrus.FieldLogger, balanceReader session.BalanceFetcher, sessionStore *SessionStore, verifier session.Verifier, submitter session.Submitter, rateLimiter *CallRateLimiter) *GasService {
	return &GasService{
		logger:        logger,
		balanceReader: balanceReader,
		sessionStore:  sessionStore,
		verifier:      verifier,
		submitter:     submitter,
		rateLimiter:   rateLimiter,
	}
}

// InitGasService builds the global gas service from the loaded configuration.
func InitGasService(ctx context.Context, logger logrus.FieldLogger) error {
	if GlobalGasService != nil {
		return nil
	}

	cfg := utils.Config
	serviceLogger := logger.WithField("service", "gas")

	chainA, err := initChainClient(ctx, &cfg.Chains.ChainA, serviceLogger)
	if err != nil {
		return err
	}
	chainB, err := initChainClient(ctx, &cfg.Chains.ChainB, serviceLogger)
	if err != nil {
		chainA.Close()
		return err
	}

	tieredCache, err := cache.NewTieredCache(ctx, cfg.Sessions.LocalCacheSize, cfg.Sessions.RedisCacheAddr, cfg.Sessions.RedisPrefix)
	if err != nil {
		chainA.Close()
		chainB.Close()
		return fmt.Errorf("error initializing session cache: %w", err)
	}

	var rateLimiter *CallRateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = NewCallRateLimiter(ctx, cfg.RateLimit.ProxyCount, cfg.RateLimit.Rate, cfg.RateLimit.Burst)
	}

	GlobalGasService = NewGasService(
		serviceLogger,
		NewBalanceReader(chainA, chainB, cfg.Chains.BalanceTimeout, serviceLogger.WithField("module", "balances")),
		NewSessionStore(tieredCache, cfg.Sessions.Timeout),
		NewWorldIDVerifier(cfg.Verification.AppId, cfg.Verification.Action, cfg.Verification.VerifyUrl, cfg.Verification.Timeout, serviceLogger.WithField("module", "worldid")),
		NewMockSubmitter(serviceLogger.WithField("module", "submitter")),
		rateLimiter,
	)
	GlobalGasService.chainClients = []*rpc.ExecutionClient{chainA, chainB}

	// endpoint chain ids are only checked for diagnostics, a mismatch does not stop the service
	for _, client := range GlobalGasService.chainClients {
		go func(client *rpc.ExecutionClient) {
			defer utils.HandleSubroutinePanic("chain id check")

			checkCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			if err := client.CheckChainId(checkCtx); err != nil {
				serviceLogger.WithError(err).Warnf("chain id check failed for %v", client.GetName())
			}
		}(client)
	}

	return nil
}

func initChainClient(ctx context.Context, chainCfg *types.ChainConfig, logger logrus.FieldLogger) (*rpc.ExecutionClient, error) {
	client := rpc.NewExecutionClient(chainCfg.Name, chainCfg.ChainId, chainCfg.RpcUrl, chainCfg.Headers, logger)
	if err := client.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("error initializing %v client: %w", chainCfg.Name, err)
	}
	return client, nil
}

func (gs *GasService) StopService() {
	for _, client := range gs.chainClients {
		client.Close()
	}
	if err := gs.sessionStore.Close(); err != nil {
		gs.logger.WithError(err).Warn("error closing session store")
	}
}

func (gs *GasService) Logger() logrus.FieldLogger {
	return gs.logger
}

func (gs *GasService) Balances() session.BalanceFetcher {
	return gs.balanceReader
}

func (gs *GasService) Sessions() *SessionStore {
	return gs.sessionStore
}

func (gs *GasService) Verifier() session.Verifier {
	return gs.verifier
}

func (gs *GasService) Submitter() session.Submitter {
	return gs.submitter
}

func (gs *GasService) RateLimiter() *CallRateLimiter {
	return gs.rateLimiter
}
