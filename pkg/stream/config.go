package stream

import (
	"time"

	"github.com/code-payments/zebec-go/pkg/config"
	"github.com/code-payments/zebec-go/pkg/config/env"
	"github.com/code-payments/zebec-go/pkg/config/memory"
	"github.com/code-payments/zebec-go/pkg/config/wrapper"
)

const (
	envConfigPrefix = "STREAM_CLIENT_"

	CommitmentConfigEnvName = envConfigPrefix + "COMMITMENT"
	defaultCommitment       = "confirmed"

	WaitForConfirmationConfigEnvName = envConfigPrefix + "WAIT_FOR_CONFIRMATION"
	defaultWaitForConfirmation       = false

	ConfirmationTimeoutConfigEnvName = envConfigPrefix + "CONFIRMATION_TIMEOUT"
	defaultConfirmationTimeout       = 30 * time.Second

	ComputeUnitPriceConfigEnvName = envConfigPrefix + "COMPUTE_UNIT_PRICE"
	defaultComputeUnitPrice       = 0

	ComputeUnitLimitConfigEnvName = envConfigPrefix + "COMPUTE_UNIT_LIMIT"
	defaultComputeUnitLimit       = 0

	MaxRpcRequestsPerSecondConfigEnvName = envConfigPrefix + "MAX_RPC_REQUESTS_PER_SECOND"
	defaultMaxRpcRequestsPerSecond       = 10
)

type conf struct {
	commitment              config.String
	waitForConfirmation     config.Bool
	confirmationTimeout     config.Duration
	computeUnitPrice        config.Uint64
	computeUnitLimit        config.Uint64
	maxRpcRequestsPerSecond config.Uint64
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *conf

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *conf {
		return &conf{
			commitment:              env.NewStringConfig(CommitmentConfigEnvName, defaultCommitment),
			waitForConfirmation:     env.NewBoolConfig(WaitForConfirmationConfigEnvName, defaultWaitForConfirmation),
			confirmationTimeout:     env.NewDurationConfig(ConfirmationTimeoutConfigEnvName, defaultConfirmationTimeout),
			computeUnitPrice:        env.NewUint64Config(ComputeUnitPriceConfigEnvName, defaultComputeUnitPrice),
			computeUnitLimit:        env.NewUint64Config(ComputeUnitLimitConfigEnvName, defaultComputeUnitLimit),
			maxRpcRequestsPerSecond: env.NewUint64Config(MaxRpcRequestsPerSecondConfigEnvName, defaultMaxRpcRequestsPerSecond),
		}
	}
}

type testOverrides struct {
	commitment              string
	waitForConfirmation     bool
	confirmationTimeout     time.Duration
	computeUnitPrice        uint64
	computeUnitLimit        uint64
	maxRpcRequestsPerSecond uint64
}

func withManualTestOverrides(overrides *testOverrides) ConfigProvider {
	commitment := overrides.commitment
	if len(commitment) == 0 {
		commitment = defaultCommitment
	}

	confirmationTimeout := overrides.confirmationTimeout
	if confirmationTimeout == 0 {
		confirmationTimeout = defaultConfirmationTimeout
	}

	maxRpcRequestsPerSecond := overrides.maxRpcRequestsPerSecond
	if maxRpcRequestsPerSecond == 0 {
		maxRpcRequestsPerSecond = 1000
	}

	return func() *conf {
		return &conf{
			commitment:              wrapper.NewStringConfig(memory.NewConfig(commitment), defaultCommitment),
			waitForConfirmation:     wrapper.NewBoolConfig(memory.NewConfig(overrides.waitForConfirmation), defaultWaitForConfirmation),
			confirmationTimeout:     wrapper.NewDurationConfig(memory.NewConfig(confirmationTimeout), defaultConfirmationTimeout),
			computeUnitPrice:        wrapper.NewUint64Config(memory.NewConfig(overrides.computeUnitPrice), defaultComputeUnitPrice),
			computeUnitLimit:        wrapper.NewUint64Config(memory.NewConfig(overrides.computeUnitLimit), defaultComputeUnitLimit),
			maxRpcRequestsPerSecond: wrapper.NewUint64Config(memory.NewConfig(maxRpcRequestsPerSecond), defaultMaxRpcRequestsPerSecond),
		}
	}
}
