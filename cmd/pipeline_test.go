//go:build !integration

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sitegen-cli/internal/config"
	"github.com/sells-group/sitegen-cli/internal/model"
)

func TestReadRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "Valley Plumbing & Heating",
		"category": "Plumber",
		"address": "4240 W Camelback Rd, Phoenix, AZ 85019",
		"phone": "6025552665"
	}`), 0o644))

	raw, err := readRecord(path)
	require.NoError(t, err)
	assert.Equal(t, "Valley Plumbing & Heating", raw.Name)
	assert.Equal(t, "Plumber", raw.Category)
}

func TestReadRecord_MissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"category": "Plumber"}`), 0o644))

	_, err := readRecord(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "business name")
}

func TestReadRecord_BadFile(t *testing.T) {
	_, err := readRecord(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestInitStore_SQLiteDefault(t *testing.T) {
	c := &config.Config{}
	c.Store.Driver = "sqlite"
	c.Store.DatabaseURL = filepath.Join(t.TempDir(), "runs.db")

	st, err := initStore(context.Background(), c)
	require.NoError(t, err)
	defer st.Close()

	run, err := st.CreateRun(context.Background(), "alpha", "Alpha Co")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
}

func TestBuildConfig_FallbackOnly(t *testing.T) {
	env := newTestEnv(t, &stubDeployRunner{})

	siteCfg := env.buildConfig(context.Background(), model.RawBusinessRecord{
		Name:     "Valley Plumbing & Heating",
		Category: "Plumber",
		Address:  "4240 W Camelback Rd, Phoenix, AZ 85019",
		Phone:    "6025552665",
	})
	assert.Equal(t, "valley-plumbing-heating", siteCfg.Business.Slug)
	assert.NotEmpty(t, siteCfg.Services)
	assert.NotEmpty(t, siteCfg.FAQCategories)
	assert.Equal(t, "general", siteCfg.FAQCategories[0].Slug)
}
