package container

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"projects/showcase/internal/config"
	"projects/showcase/internal/domain"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("UI_MODE", config.ModePrint)
	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestContainer_PrintBuiltin(t *testing.T) {
	cfg := testConfig(t)

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	var out bytes.Buffer
	app.out = &out

	require.NoError(t, app.Run(context.Background()))

	for _, kind := range domain.CatalogKinds {
		schema, err := domain.SchemaFor(kind)
		require.NoError(t, err)
		assert.Contains(t, out.String(), schema.Title)
	}
	assert.Contains(t, out.String(), "Climate Change Simulator")
}

func TestContainer_InitialSelection(t *testing.T) {
	cfg := testConfig(t)
	cfg.UI.Filter = "SDG 3: Good Health and Well-being"
	cfg.UI.SortKey = string(domain.SortMostLiked)

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	app.out = &bytes.Buffer{}
	require.NoError(t, app.Run(context.Background()))

	games, err := app.Service.Controller(domain.CatalogKindGames)
	require.NoError(t, err)
	assert.Equal(t, domain.SortMostLiked, games.Selection().SortKey)
	assert.Equal(t, domain.Tag("SDG 3: Good Health and Well-being"), games.Selection().CategoryFilter)

	// Only games can sort by likes.
	videos, err := app.Service.Controller(domain.CatalogKindVideos)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSortKey, videos.Selection().SortKey)
}

func TestContainer_UnknownFilter(t *testing.T) {
	cfg := testConfig(t)
	cfg.UI.Filter = "SDG 99: Nothing"

	_, err := New(context.Background(), cfg)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestContainer_FileSourceMissingDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.Fixtures.Source = config.SourceFile
	cfg.Fixtures.Dir = filepath.Join(t.TempDir(), "missing")

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	app.out = &bytes.Buffer{}
	require.Error(t, app.Run(context.Background()))
	assert.Empty(t, app.Service.Kinds())
}

func TestContainer_LogFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.UI.Mode = config.ModeTUI
	cfg.Log.File = filepath.Join(t.TempDir(), "showcase.log")
	cfg.Log.Format = "json"

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)

	log.Info("hello from the test")
	require.NoError(t, app.Close())

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello from the test"`)
}
