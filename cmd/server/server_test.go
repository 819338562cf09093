package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/coc-sheet-api/internal/config"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	characterrepo "github.com/KirkDiggler/coc-sheet-api/internal/repositories/character"
	dicesession "github.com/KirkDiggler/coc-sheet-api/internal/repositories/dice_session"
	"github.com/KirkDiggler/coc-sheet-api/internal/testutils"
)

func TestBuildRepositoriesSQLite(t *testing.T) {
	ctx := context.Background()
	repos, err := buildRepositories(&config.Config{
		Store:      config.StoreSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "characters.db"),
	})
	require.NoError(t, err)
	defer repos.Close() // nolint:errcheck // test cleanup

	assert.IsType(t, &dicesession.InMemoryRepository{}, repos.sessions)

	char := testutils.CreateTestCharacter("inv-1", "alice")
	_, err = repos.characters.Save(ctx, characterrepo.SaveInput{Character: char})
	require.NoError(t, err)

	got, err := repos.characters.Get(ctx, characterrepo.GetInput{ID: "inv-1"})
	require.NoError(t, err)
	assert.Equal(t, testutils.TestCharacterName, got.Character.Name)
}

func TestBuildRepositoriesRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	repos, err := buildRepositories(&config.Config{
		Store:      config.StoreRedis,
		RedisAddrs: []string{mr.Addr()},
	})
	require.NoError(t, err)
	defer repos.Close() // nolint:errcheck // test cleanup

	_, err = repos.characters.Save(ctx, characterrepo.SaveInput{
		Character: testutils.CreateTestCharacter("inv-1", "alice"),
	})
	require.NoError(t, err)

	list, err := repos.characters.List(ctx, characterrepo.ListInput{})
	require.NoError(t, err)
	assert.Len(t, list.Characters, 1)

	_, err = repos.sessions.Get(ctx, dicesession.GetInput{EntityID: "inv-1", Context: "sanity"})
	assert.True(t, errors.IsNotFound(err))
}

func TestBuildRepositoriesSheetsWithoutEndpoint(t *testing.T) {
	repos, err := buildRepositories(&config.Config{Store: config.StoreSheets})
	require.NoError(t, err)

	_, err = repos.characters.List(context.Background(), characterrepo.ListInput{})
	require.Error(t, err)
	assert.True(t, errors.IsTransport(err))
}

func TestBuildRepositoriesInvalidSheetEndpoint(t *testing.T) {
	_, err := buildRepositories(&config.Config{
		Store:         config.StoreSheets,
		SheetEndpoint: "not a url",
	})
	require.Error(t, err)
}

func TestLoadConfigFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("COC_STORE", "redis")
	t.Setenv("COC_GRPC_PORT", "6000")

	require.NoError(t, serverCmd.Flags().Set("store", "sqlite"))
	t.Cleanup(func() {
		store = ""
		serverCmd.Flags().Lookup("store").Changed = false
	})

	cfg, err := loadConfig(serverCmd)
	require.NoError(t, err)
	assert.Equal(t, config.StoreSQLite, cfg.Store)
	assert.Equal(t, 6000, cfg.GRPCPort)
}

func TestLoadConfigRejectsUnknownStore(t *testing.T) {
	t.Setenv("COC_STORE", "postgres")

	_, err := loadConfig(serverCmd)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
