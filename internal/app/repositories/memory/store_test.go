package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRepos() *repositories.Repositories {
	return NewRepositories()
}

func addHead(t *testing.T, repos *repositories.Repositories, name string) int64 {
	t.Helper()
	id, err := repos.Team.Create(context.Background(), &models.TeamMember{
		Name:     name,
		Type:     models.TypeProfburoHead,
		Position: "Profburo Head",
		IsActive: true,
	})
	require.NoError(t, err)
	return id
}

func TestNewsRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	published := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	id, err := repos.News.Create(ctx, &models.NewsArticle{
		Title:       "Scholarship deadlines",
		Content:     "<p>Apply before friday</p>",
		PublishedAt: published,
	})
	require.NoError(t, err)

	got, err := repos.News.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Scholarship deadlines", got.Title)
	assert.Equal(t, published, got.PublishedAt)

	t.Run("update keeps publishedAt", func(t *testing.T) {
		err := repos.News.Update(ctx, &models.NewsArticle{
			ID:      id,
			Title:   "Scholarship deadlines extended",
			Content: "<p>Now next monday</p>",
		})
		require.NoError(t, err)

		got, err := repos.News.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Scholarship deadlines extended", got.Title)
		assert.Equal(t, published, got.PublishedAt)
	})

	t.Run("list is newest first", func(t *testing.T) {
		_, err := repos.News.Create(ctx, &models.NewsArticle{
			Title:       "Newer article",
			Content:     "x",
			PublishedAt: published.Add(time.Hour),
		})
		require.NoError(t, err)

		list, err := repos.News.List(ctx, repositories.ListOptions{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Newer article", list[0].Title)
	})

	t.Run("delete then absent", func(t *testing.T) {
		require.NoError(t, repos.News.Delete(ctx, id))
		_, err := repos.News.GetByID(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repos.News.GetByID(ctx, 999)
		assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
		assert.ErrorIs(t, repos.News.Update(ctx, &models.NewsArticle{ID: 999, Title: "x"}), apperrors.ErrNewsNotFound)
		assert.ErrorIs(t, repos.News.Delete(ctx, 999), apperrors.ErrNewsNotFound)
	})
}

func TestProfRepo_HeadLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	headA := addHead(t, repos, "Oksana Kovalenko")
	headB := addHead(t, repos, "Taras Melnyk")

	profID, err := repos.Prof.Create(ctx, &models.FacultyUnion{
		Name:   "Computer Science Faculty Union",
		HeadID: headA,
	})
	require.NoError(t, err)

	t.Run("creating claims the head", func(t *testing.T) {
		member, err := repos.Team.GetByID(ctx, headA)
		require.NoError(t, err)
		assert.True(t, member.IsChoosed)
	})

	t.Run("claimed head cannot be taken by another union", func(t *testing.T) {
		_, err := repos.Prof.Create(ctx, &models.FacultyUnion{
			Name:   "Economics Faculty Union",
			HeadID: headA,
		})
		assert.ErrorIs(t, err, apperrors.ErrHeadAlreadyAssigned)
	})

	t.Run("non-head member is not eligible", func(t *testing.T) {
		aparat, err := repos.Team.Create(ctx, &models.TeamMember{
			Name: "Iryna Bondar",
			Type: models.TypeAparat,
		})
		require.NoError(t, err)

		_, err = repos.Prof.Create(ctx, &models.FacultyUnion{Name: "X", HeadID: aparat})
		assert.ErrorIs(t, err, apperrors.ErrHeadNotEligible)
	})

	t.Run("get embeds the head", func(t *testing.T) {
		prof, err := repos.Prof.GetByID(ctx, profID)
		require.NoError(t, err)
		require.NotNil(t, prof.Head)
		assert.Equal(t, "Oksana Kovalenko", prof.Head.Name)
	})

	t.Run("available heads excludes the claimed one", func(t *testing.T) {
		heads, err := repos.Team.AvailableHeads(ctx, 0)
		require.NoError(t, err)
		require.Len(t, heads, 1)
		assert.Equal(t, headB, heads[0].ID)
	})

	t.Run("excludeId keeps the current head listed", func(t *testing.T) {
		heads, err := repos.Team.AvailableHeads(ctx, profID)
		require.NoError(t, err)
		ids := []int64{heads[0].ID, heads[1].ID}
		assert.ElementsMatch(t, []int64{headA, headB}, ids)
	})

	t.Run("re-pointing releases the old head", func(t *testing.T) {
		err := repos.Prof.Update(ctx, &models.FacultyUnion{
			ID:     profID,
			Name:   "Computer Science Faculty Union",
			HeadID: headB,
		})
		require.NoError(t, err)

		a, _ := repos.Team.GetByID(ctx, headA)
		b, _ := repos.Team.GetByID(ctx, headB)
		assert.False(t, a.IsChoosed)
		assert.True(t, b.IsChoosed)
	})

	t.Run("deleting a member that heads a union is refused", func(t *testing.T) {
		err := repos.Team.Delete(ctx, headB)
		assert.ErrorIs(t, err, apperrors.ErrMemberHeadsUnion)
	})

	t.Run("deleting the union releases its head", func(t *testing.T) {
		require.NoError(t, repos.Prof.Delete(ctx, profID))

		b, err := repos.Team.GetByID(ctx, headB)
		require.NoError(t, err)
		assert.False(t, b.IsChoosed)

		require.NoError(t, repos.Team.Delete(ctx, headB))
	})
}

func TestUnitRepo_Timestamps(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	id, err := repos.Unit.Create(ctx, &models.Unit{
		Name:      "Central Office",
		CreatedAt: created,
		UpdatedAt: created,
	})
	require.NoError(t, err)

	err = repos.Unit.Update(ctx, &models.Unit{
		ID:        id,
		Name:      "Central Office renamed",
		UpdatedAt: created.Add(time.Hour),
	})
	require.NoError(t, err)

	got, err := repos.Unit.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(created))
}

func TestTeamRepo_ListFilters(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	active := true
	_, err := repos.Team.Create(ctx, &models.TeamMember{Name: "Active", IsActive: true, OrderInd: 2})
	require.NoError(t, err)
	_, err = repos.Team.Create(ctx, &models.TeamMember{Name: "Hidden", IsActive: false, OrderInd: 1})
	require.NoError(t, err)

	t.Run("isActive filter", func(t *testing.T) {
		list, err := repos.Team.List(ctx, repositories.ListOptions{IsActive: &active})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Active", list[0].Name)
	})

	t.Run("default order is orderInd ascending", func(t *testing.T) {
		list, err := repos.Team.List(ctx, repositories.ListOptions{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Hidden", list[0].Name)
	})
}

func TestAdminRepo(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	count, err := repos.Admin.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repos.Admin.Create(ctx, &models.AdminUser{
		Email:        "Admin@Profkom.Lviv.UA",
		PasswordHash: "hash",
		Role:         models.RoleAdmin,
	})
	require.NoError(t, err)

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		user, err := repos.Admin.GetByEmail(ctx, "admin@profkom.lviv.ua")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("duplicate email is refused", func(t *testing.T) {
		_, err := repos.Admin.Create(ctx, &models.AdminUser{Email: "admin@profkom.lviv.ua"})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repos.Admin.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
