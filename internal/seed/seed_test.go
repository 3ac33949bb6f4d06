package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories/memory"
	"github.com/myurcick/profkomlviv-sub000/internal/config"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/auth"
)

func seedConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Email = "admin@profkom.lviv.ua"
	cfg.Admin.Password = "seed-password"
	return cfg
}

func TestCreateDefaultData(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh install gets admin and starter content", func(t *testing.T) {
		repos := memory.NewRepositories()
		require.NoError(t, CreateDefaultData(ctx, repos, seedConfig()))

		admin, err := repos.Admin.GetByEmail(ctx, "admin@profkom.lviv.ua")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, admin.Role)
		assert.True(t, auth.CheckPassword(admin.PasswordHash, "seed-password"))

		news, err := repos.News.List(ctx, repositories.ListOptions{})
		require.NoError(t, err)
		require.Len(t, news, 1)
		assert.Equal(t, "Welcome to the student union website", news[0].Title)

		units, err := repos.Unit.List(ctx, repositories.ListOptions{})
		require.NoError(t, err)
		require.Len(t, units, 1)
		assert.Equal(t, "Central Office", units[0].Name)

		members, err := repos.Team.List(ctx, repositories.ListOptions{})
		require.NoError(t, err)
		assert.Empty(t, members)

		profs, err := repos.Prof.List(ctx, repositories.ListOptions{})
		require.NoError(t, err)
		assert.Empty(t, profs)
	})

	t.Run("rerun is idempotent", func(t *testing.T) {
		repos := memory.NewRepositories()
		cfg := seedConfig()
		require.NoError(t, CreateDefaultData(ctx, repos, cfg))
		require.NoError(t, CreateDefaultData(ctx, repos, cfg))

		count, err := repos.Admin.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		news, err := repos.News.List(ctx, repositories.ListOptions{})
		require.NoError(t, err)
		assert.Len(t, news, 1)
	})

	t.Run("existing content is left alone", func(t *testing.T) {
		repos := memory.NewRepositories()
		_, err := repos.News.Create(ctx, &models.NewsArticle{
			Title:       "Scholarship deadlines",
			Content:     "<p>Apply by Friday.</p>",
			PublishedAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		require.NoError(t, CreateDefaultData(ctx, repos, seedConfig()))

		news, err := repos.News.List(ctx, repositories.ListOptions{})
		require.NoError(t, err)
		require.Len(t, news, 1)
		assert.Equal(t, "Scholarship deadlines", news[0].Title)
	})

	t.Run("missing credentials skip the admin seed", func(t *testing.T) {
		repos := memory.NewRepositories()
		require.NoError(t, CreateDefaultData(ctx, repos, &config.Config{}))

		count, err := repos.Admin.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
