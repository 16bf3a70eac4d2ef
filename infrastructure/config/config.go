// Package config provides configuration management and dependency injection for the talent-stake ledger.
// It handles loading configuration from files and environment variables, and sets up the DI container.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"talent-stake/domain/entities"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported mirror read stores. The memory store is rebuilt from the ledger at startup.
const (
	MirrorStoreDatabase = "database"
	MirrorStoreMemory   = "memory"
)

// Config represents the application configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	Database DatabaseConfig `mapstructure:"database"`
	Escrow   EscrowConfig   `mapstructure:"escrow"`
	Mirror   MirrorConfig   `mapstructure:"mirror"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Slack    SlackConfig    `mapstructure:"slack"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Chain    ChainConfig    `mapstructure:"chain"`
}

// DatabaseConfig represents database configuration.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`

	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	DBName   string `mapstructure:"dbName"`
	SSLMode  string `mapstructure:"sslMode"`

	// Path is the database file used by the sqlite driver.
	Path string `mapstructure:"path"`

	// Connection pool settings.
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// EscrowConfig configures the escrow engine.
type EscrowConfig struct {
	HolderAddress          string `mapstructure:"holder_address"`
	StakeAmount            string `mapstructure:"stake_amount"`
	ReferrerSharePercent   uint64 `mapstructure:"referrer_share_percent"`
	OneReferralPerReferrer bool   `mapstructure:"one_referral_per_referrer"`
}

// MirrorConfig configures the read-store projection.
type MirrorConfig struct {
	// Store selects the read store backend: "database" or "memory".
	Store             string `mapstructure:"store"`
	SyncSchedule      string `mapstructure:"sync_schedule"`
	ReconcileSchedule string `mapstructure:"reconcile_schedule"`
	BatchSize         int    `mapstructure:"batch_size"`
}

// RedisConfig configures projection-change notifications. An empty URL disables them.
type RedisConfig struct {
	URL     string `mapstructure:"url"`
	Channel string `mapstructure:"channel"`
}

// SlackConfig configures dispute alerts.
type SlackConfig struct {
	WebhookURL   string   `mapstructure:"webhook_url"`
	Channel      string   `mapstructure:"channel"`
	MentionUsers []string `mapstructure:"mention_users"`
}

// HTTPConfig configures the JSON API.
type HTTPConfig struct {
	ListenAddr      string        `mapstructure:"listen_addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ChainConfig configures the optional on-chain token reader.
type ChainConfig struct {
	RPCAddr      string        `mapstructure:"rpc_addr"`
	TokenAddress string        `mapstructure:"token_address"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file.
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/talent-stake")
	}

	// Enable environment variables, e.g. TALENT_ESCROW_HOLDER_ADDRESS.
	v.SetEnvPrefix("TALENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// Validate configuration.
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "talent-stake.db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", "1h")

	v.SetDefault("escrow.holder_address", "")
	v.SetDefault("escrow.stake_amount", "500000")
	v.SetDefault("escrow.referrer_share_percent", 80)
	v.SetDefault("escrow.one_referral_per_referrer", true)

	v.SetDefault("mirror.store", MirrorStoreDatabase)
	v.SetDefault("mirror.sync_schedule", "@every 5s")
	v.SetDefault("mirror.reconcile_schedule", "@every 1h")
	v.SetDefault("mirror.batch_size", 100)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.channel", "talent-stake.projections")

	v.SetDefault("slack.webhook_url", "")
	v.SetDefault("slack.channel", "")

	v.SetDefault("http.listen_addr", ":8080")
	v.SetDefault("http.shutdown_timeout", "10s")

	v.SetDefault("chain.rpc_addr", "")
	v.SetDefault("chain.token_address", "")
	v.SetDefault("chain.timeout", "30s")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database.host is required for the postgres driver")
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Database.Driver)
	}

	holder, err := c.Escrow.Holder()
	if err != nil {
		return err
	}
	if holder == (common.Address{}) {
		return fmt.Errorf("escrow.holder_address is required")
	}

	stake, err := c.Escrow.Stake()
	if err != nil {
		return err
	}
	if stake.IsZero() {
		return fmt.Errorf("escrow.stake_amount must be positive")
	}

	if c.Escrow.ReferrerSharePercent < 1 || c.Escrow.ReferrerSharePercent > 99 {
		return fmt.Errorf("escrow.referrer_share_percent must be between 1 and 99")
	}

	if c.Mirror.Store != MirrorStoreDatabase && c.Mirror.Store != MirrorStoreMemory {
		return fmt.Errorf("unsupported mirror.store %q", c.Mirror.Store)
	}
	if c.Mirror.BatchSize <= 0 || c.Mirror.BatchSize > 1000 {
		return fmt.Errorf("mirror.batch_size must be between 1 and 1000")
	}

	if c.Chain.TokenAddress != "" && !common.IsHexAddress(c.Chain.TokenAddress) {
		return fmt.Errorf("chain.token_address %q is not a valid address", c.Chain.TokenAddress)
	}

	return nil
}

// Holder parses the escrow holder address.
func (e EscrowConfig) Holder() (common.Address, error) {
	if e.HolderAddress == "" {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(e.HolderAddress) {
		return common.Address{}, fmt.Errorf("escrow.holder_address %q is not a valid address", e.HolderAddress)
	}
	return common.HexToAddress(e.HolderAddress), nil
}

// Stake parses the stake amount.
func (e EscrowConfig) Stake() (entities.Amount, error) {
	amount, err := entities.ParseAmount(e.StakeAmount)
	if err != nil {
		return entities.Amount{}, fmt.Errorf("escrow.stake_amount: %w", err)
	}
	return amount, nil
}

// ChainEnabled reports whether the on-chain token reader is configured.
func (c *Config) ChainEnabled() bool {
	return c.Chain.RPCAddr != "" && c.Chain.TokenAddress != ""
}

// GetDatabaseDSN returns the database connection string.
func (c *DatabaseConfig) GetDatabaseDSN() string {
	if c.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", c.Path)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
