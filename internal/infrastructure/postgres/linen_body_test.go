package postgres

import (
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

func TestDecodeBody_ConservaPrecisionDeCantidades(t *testing.T) {
	doc, err := decodeBody([]byte(`{"date":"2024-01-01","items":[{"name":"수건","quantity":9007199254740993}]}`))
	require.NoError(t, err)

	items := linen.ItemsOf(doc)
	require.Len(t, items, 1)
	assert.Equal(t, json.Number("9007199254740993"), items[0]["quantity"])
	assert.Equal(t, int64(9007199254740993), linen.ParseQuantity(items[0]["quantity"]))
}

func TestDecodeBody_Invalido(t *testing.T) {
	_, err := decodeBody([]byte(`{"date":`))
	assert.Error(t, err)
}

func TestMigrationsEmbebidas(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(files), 4)
}

func TestClampPage(t *testing.T) {
	l, o := clampPage(0, -3)
	assert.Equal(t, 50, l)
	assert.Equal(t, 0, o)
	l, o = clampPage(500, 10)
	assert.Equal(t, 50, l)
	assert.Equal(t, 10, o)
}
