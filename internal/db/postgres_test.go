package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/examdesk/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5432"
	cfg.Database.User = "examdesk"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "examdesk"
	cfg.Database.MaxOpenConns = 8
	cfg.Database.MaxIdleConns = 2
	cfg.Database.ConnMaxLifetime = "45m"
	return cfg
}

func TestPoolConfig(t *testing.T) {
	pc, err := poolConfig(testConfig())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, 45*time.Minute, pc.MaxConnLifetime)
	assert.Equal(t, maxConnIdleTime, pc.MaxConnIdleTime)
	assert.Equal(t, applicationName, pc.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfigClampsIdleToMax(t *testing.T) {
	cfg := testConfig()
	cfg.Database.MaxOpenConns = 3
	cfg.Database.MaxIdleConns = 10

	pc, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(3), pc.MinConns)
}

func TestPoolConfigKeepsURLApplicationName(t *testing.T) {
	cfg := testConfig()
	cfg.Database.URL = "postgres://u:p@localhost:5432/x?application_name=worker"

	pc, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "worker", pc.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfigRejectsBadLifetime(t *testing.T) {
	cfg := testConfig()
	cfg.Database.ConnMaxLifetime = "forever"

	_, err := poolConfig(cfg)
	assert.Error(t, err)
}
