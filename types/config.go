package types

import "time"

// Config is a struct to hold the configuration data
type Config struct {
	Logging struct {
		OutputLevel  string `yaml:"outputLevel" envconfig:"LOGGING_OUTPUT_LEVEL"`
		OutputStderr bool   `yaml:"outputStderr" envconfig:"LOGGING_OUTPUT_STDERR"`

		FilePath  string `yaml:"filePath" envconfig:"LOGGING_FILE_PATH"`
		FileLevel string `yaml:"fileLevel" envconfig:"LOGGING_FILE_LEVEL"`
	} `yaml:"logging"`

	Server struct {
		Port string `yaml:"port" envconfig:"FRONTEND_SERVER_PORT"`
		Host string `yaml:"host" envconfig:"FRONTEND_SERVER_HOST"`
	} `yaml:"server"`

	Frontend struct {
		Debug  bool `yaml:"debug" envconfig:"FRONTEND_DEBUG"`
		Pprof  bool `yaml:"pprof" envconfig:"FRONTEND_PPROF"`
		Minify bool `yaml:"minify" envconfig:"FRONTEND_MINIFY"`

		SiteDomain      string `yaml:"siteDomain" envconfig:"FRONTEND_SITE_DOMAIN"`
		SiteLogo        string `yaml:"siteLogo" envconfig:"FRONTEND_SITE_LOGO"`
		SiteName        string `yaml:"siteName" envconfig:"FRONTEND_SITE_NAME"`
		SiteDescription string `yaml:"siteDescription" envconfig:"FRONTEND_SITE_DESCRIPTION"`
		FooterCreator   string `yaml:"footerCreator" envconfig:"FRONTEND_FOOTER_CREATOR"`
		GetStartedLink  string `yaml:"getStartedLink" envconfig:"FRONTEND_GET_STARTED_LINK"`
		DonationTarget  string `yaml:"donationTarget" envconfig:"FRONTEND_DONATION_TARGET"`

		HttpReadTimeout  time.Duration `yaml:"httpReadTimeout" envconfig:"FRONTEND_HTTP_READ_TIMEOUT"`
		HttpWriteTimeout time.Duration `yaml:"httpWriteTimeout" envconfig:"FRONTEND_HTTP_WRITE_TIMEOUT"`
		HttpIdleTimeout  time.Duration `yaml:"httpIdleTimeout" envconfig:"FRONTEND_HTTP_IDLE_TIMEOUT"`
	} `yaml:"frontend"`

	Chains struct {
		ChainA ChainConfig `yaml:"chainA"`
		ChainB ChainConfig `yaml:"chainB"`

		BalanceTimeout time.Duration `yaml:"balanceTimeout" envconfig:"CHAINS_BALANCE_TIMEOUT"`
	} `yaml:"chains"`

	Explorers struct {
		BlockscoutTxUrl string `yaml:"blockscoutTxUrl" envconfig:"EXPLORERS_BLOCKSCOUT_TX_URL"`
		RoutescanTxUrl  string `yaml:"routescanTxUrl" envconfig:"EXPLORERS_ROUTESCAN_TX_URL"`
	} `yaml:"explorers"`

	Verification struct {
		AppId     string        `yaml:"appId" envconfig:"VERIFICATION_APP_ID"`
		Action    string        `yaml:"action" envconfig:"VERIFICATION_ACTION"`
		VerifyUrl string        `yaml:"verifyUrl" envconfig:"VERIFICATION_VERIFY_URL"`
		Timeout   time.Duration `yaml:"timeout" envconfig:"VERIFICATION_TIMEOUT"`
	} `yaml:"verification"`

	Sessions struct {
		LocalCacheSize int           `yaml:"localCacheSize" envconfig:"SESSIONS_LOCAL_CACHE_SIZE"`
		RedisCacheAddr string        `yaml:"redisCacheAddr" envconfig:"SESSIONS_REDIS_CACHE_ADDR"`
		RedisPrefix    string        `yaml:"redisPrefix" envconfig:"SESSIONS_REDIS_PREFIX"`
		Timeout        time.Duration `yaml:"timeout" envconfig:"SESSIONS_TIMEOUT"`
	} `yaml:"sessions"`

	RateLimit struct {
		Enabled    bool `yaml:"enabled" envconfig:"RATELIMIT_ENABLED"`
		ProxyCount uint `yaml:"proxyCount" envconfig:"RATELIMIT_PROXY_COUNT"`
		Rate       uint `yaml:"rate" envconfig:"RATELIMIT_RATE"`
		Burst      uint `yaml:"burst" envconfig:"RATELIMIT_BURST"`
	} `yaml:"rateLimit"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" envconfig:"METRICS_ENABLED"`
		Public  bool   `yaml:"public" envconfig:"METRICS_PUBLIC"`
		Host    string `yaml:"host" envconfig:"METRICS_HOST"`
		Port    string `yaml:"port" envconfig:"METRICS_PORT"`
	} `yaml:"metrics"`
}

// ChainConfig describes one of the two networks the transfer form moves between.
type ChainConfig struct {
	Name    string            `yaml:"name"`
	ChainId uint64            `yaml:"chainId"`
	RpcUrl  string            `yaml:"rpcUrl"`
	Headers map[string]string `yaml:"headers"`
}
