package app

import (
	"os"
	"sync"
	"sync/atomic"
)

const dryRunEnv = "RENTAL_DRY_RUN"

var (
	dryRunFlag atomic.Bool
	dryRunOnce sync.Once
)

func detectDryRun() {
	dryRunFlag.Store(os.Getenv(dryRunEnv) == "1")
}

// DryRun reports whether the binary should validate its configuration and
// exit without binding a listener or dialing Redis.
func DryRun() bool {
	dryRunOnce.Do(detectDryRun)
	return dryRunFlag.Load()
}

// RefreshDryRun re-reads the flag after environment changes.
func RefreshDryRun() {
	detectDryRun()
}
