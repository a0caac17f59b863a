package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/pkg/config"
)

func TestPoolConfig_UsaLimitesDeConfig(t *testing.T) {
	cfg := config.DBConfig{
		DatabaseURL:     "postgres://u:p@127.0.0.1:5432/db?sslmode=disable",
		MaxConns:        7,
		MinConns:        2,
		MaxConnLifetime: 10 * time.Minute,
		MaxConnIdleTime: 90 * time.Second,
	}
	pc, err := poolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(7), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, 10*time.Minute, pc.MaxConnLifetime)
	assert.Equal(t, 90*time.Second, pc.MaxConnIdleTime)
	assert.NotNil(t, pc.AfterConnect, "registra el codec decimal")
	assert.Equal(t, "127.0.0.1", pc.ConnConfig.Host)
	assert.Equal(t, "db", pc.ConnConfig.Database)
}

func TestPoolConfig_ForceIPv4(t *testing.T) {
	dsn := "postgres://u:p@127.0.0.1:5432/db"
	sin, err := poolConfig(config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	con, err := poolConfig(config.DBConfig{DatabaseURL: dsn, ForceIPv4: true})
	require.NoError(t, err)

	assert.NotNil(t, con.ConnConfig.DialFunc)
	// sin la opción se conserva el dialer por defecto de pgx
	assert.Equal(t, sin.ConnConfig.Host, con.ConnConfig.Host)
}

func TestPoolConfig_DSNInvalido(t *testing.T) {
	_, err := poolConfig(config.DBConfig{DatabaseURL: "postgres://u:p@host:notaport/db"})
	assert.Error(t, err)
}

func TestLookupIPv4(t *testing.T) {
	ip, err := lookupIPv4(context.Background(), "10.1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "10.1.2.3", ip)

	_, err = lookupIPv4(context.Background(), "::1")
	assert.Error(t, err)
}
