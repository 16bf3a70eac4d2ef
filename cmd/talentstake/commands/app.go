package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"talent-stake/infrastructure/config"
)

// App holds the global flags and lazily builds the dependency container once
// cobra has parsed them.
type App struct {
	ConfigPath string
	LogLevel   string
	Output     string
	Principal  string

	Out io.Writer

	mu        sync.Mutex
	container *config.Container
}

// NewApp creates an App writing command output to stdout.
func NewApp() *App {
	return &App{
		Output: OutputFormatJSON,
		Out:    os.Stdout,
	}
}

// Container loads the configuration and builds the container on first use.
func (a *App) Container(ctx context.Context) (*config.Container, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.container != nil {
		return a.container, nil
	}

	cfg, err := a.LoadConfig()
	if err != nil {
		return nil, err
	}

	container, err := config.NewContainer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	a.container = container
	return container, nil
}

// LoadConfig loads the configuration and applies flag overrides.
func (a *App) LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(a.ConfigPath)
	if err != nil {
		return nil, err
	}
	if a.LogLevel != "" {
		cfg.LogLevel = a.LogLevel
	}
	return cfg, nil
}

// Close releases the container if one was built.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.container == nil {
		return nil
	}
	err := a.container.Close()
	a.container = nil
	return err
}

// Formatter returns the output formatter selected by the output flag.
func (a *App) Formatter() (*OutputFormatter, error) {
	if err := ValidateFormat(a.Output); err != nil {
		return nil, err
	}
	return NewOutputFormatter(a.Output, a.Out), nil
}

// Print writes data in the selected output format.
func (a *App) Print(data interface{}) error {
	formatter, err := a.Formatter()
	if err != nil {
		return err
	}
	return formatter.Print(data)
}

// CallerPrincipal returns the principal from the flag or the environment.
func (a *App) CallerPrincipal() (common.Address, error) {
	raw := a.Principal
	if raw == "" {
		raw = os.Getenv(PrincipalEnv)
	}
	if raw == "" {
		return common.Address{}, fmt.Errorf("--principal or %s is required", PrincipalEnv)
	}
	return parseAddress("principal", raw)
}
