package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/code-payments/zebec-go/pkg/config"
)

var errDeveloperInduced = errors.New("in memory config: developer induced error")

// Config is an in memory config used for testing
type Config struct {
	stateMu  sync.RWMutex
	value    interface{}
	err      error
	shutdown bool
}

// NewConfig returns a new in memory config. Use an initial nil value to indicate
// no value is set
func NewConfig(value interface{}) *Config {
	return &Config{
		value: value,
	}
}

// Get implements Config.Get
func (c *Config) Get(_ context.Context) (interface{}, error) {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()

	switch {
	case c.shutdown:
		return nil, config.ErrShutdown
	case c.err != nil:
		return nil, c.err
	case c.value == nil:
		return nil, config.ErrNoValue
	}
	return c.value, nil
}

// Shutdown implements Config.Shutdown
func (c *Config) Shutdown() {
	c.stateMu.Lock()
	c.shutdown = true
	c.stateMu.Unlock()
}

// SetValue sets the value that should be returned on subsequent Get calls
func (c *Config) SetValue(value interface{}) {
	c.stateMu.Lock()
	c.value = value
	c.stateMu.Unlock()
}

// ClearValue results in ErrNoValue being returned on subsequent Get calls
func (c *Config) ClearValue() {
	c.SetValue(nil)
}

// InduceErrors simulates an error getting a config value
func (c *Config) InduceErrors() {
	c.setErr(errDeveloperInduced)
}

// StopInducingErrors stops simulating errors
func (c *Config) StopInducingErrors() {
	c.setErr(nil)
}

func (c *Config) setErr(err error) {
	c.stateMu.Lock()
	c.err = err
	c.stateMu.Unlock()
}
