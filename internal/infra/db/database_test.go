//go:build unit

package db

import (
	"testing"
	"time"

	"stokship/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	cfg := config.NewTestConfig().DB

	t.Run("applies pool limits and session parameters", func(t *testing.T) {
		poolCfg, err := PoolConfig(cfg)
		require.NoError(t, err)

		assert.Equal(t, cfg.MaxConns, poolCfg.MaxConns)
		assert.Equal(t, time.Hour, poolCfg.MaxConnLifetime)
		params := poolCfg.ConnConfig.RuntimeParams
		assert.Equal(t, "stokship", params["application_name"])
		assert.Equal(t, "10000", params["lock_timeout"])
		assert.Equal(t, "UTC", params["timezone"])
	})

	t.Run("no lock timeout without a transaction timeout", func(t *testing.T) {
		c := cfg
		c.TxTimeout = 0
		poolCfg, err := PoolConfig(c)
		require.NoError(t, err)
		assert.NotContains(t, poolCfg.ConnConfig.RuntimeParams, "lock_timeout")
	})

	t.Run("invalid DSN", func(t *testing.T) {
		c := cfg
		c.Port = "not-a-port"
		_, err := PoolConfig(c)
		assert.Error(t, err)
	})
}
