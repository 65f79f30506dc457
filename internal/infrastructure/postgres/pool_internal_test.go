package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/pkg/config"
)

func TestPoolConfigFor_IPv4ConservaHostnameTLS(t *testing.T) {
	cfg := config.DBConfig{
		DatabaseURL: "postgres://haru:pw@db.haru.example:5432/haru?sslmode=verify-full",
		ForceIPv4:   true,
		MaxConns:    8,
		MinConns:    2,
	}
	pc, err := poolConfigFor(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.haru.example", pc.ConnConfig.Host)
	require.NotNil(t, pc.ConnConfig.TLSConfig)
	assert.Equal(t, "db.haru.example", pc.ConnConfig.TLSConfig.ServerName)
	assert.NotNil(t, pc.ConnConfig.DialFunc)
	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.NotNil(t, pc.AfterConnect)
}

func TestPoolConfigFor_DSNInvalido(t *testing.T) {
	_, err := poolConfigFor(config.DBConfig{DatabaseURL: "postgres://haru@:bad:port/x", MaxConns: 1})
	assert.Error(t, err)
}

func TestResolveIPv4_Literal(t *testing.T) {
	ip, err := resolveIPv4(context.Background(), "10.0.0.7")
	assert.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip)

	_, err = resolveIPv4(context.Background(), "::1")
	assert.Error(t, err)
}

func TestRegisterTypes_NumericADecimal(t *testing.T) {
	m := pgtype.NewMap()
	registerTypes(m)

	want := decimal.RequireFromString("1234567890123456789012.5")
	buf, err := m.Encode(pgtype.NumericOID, pgtype.BinaryFormatCode, want, nil)
	require.NoError(t, err)

	var got decimal.Decimal
	require.NoError(t, m.Scan(pgtype.NumericOID, pgtype.BinaryFormatCode, buf, &got))
	assert.True(t, want.Equal(got), "got %s", got)
}
