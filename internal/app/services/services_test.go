package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/app/models/dto"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories/memory"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/auth"
)

func newTestRepos() *repositories.Repositories {
	return memory.NewRepositories()
}

func TestNewsService(t *testing.T) {
	ctx := context.Background()
	svc := NewNewsService(newTestRepos().News)

	t.Run("create assigns publishedAt and sanitizes content", func(t *testing.T) {
		before := time.Now().UTC()
		article, err := svc.Create(ctx, &dto.NewsForm{
			Title:   "  Scholarship deadlines  ",
			Content: `<p>Apply now</p><script>alert("x")</script>`,
		}, "")
		require.NoError(t, err)

		assert.Equal(t, "Scholarship deadlines", article.Title)
		assert.NotContains(t, article.Content, "script")
		assert.False(t, article.PublishedAt.Before(before))
		assert.Positive(t, article.ID)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.NewsForm{Title: "   ", Content: "x"}, "")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("update keeps publishedAt", func(t *testing.T) {
		article, err := svc.Create(ctx, &dto.NewsForm{Title: "Original", Content: "a"}, "")
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)
		updated, err := svc.Update(ctx, article.ID, &dto.NewsForm{Title: "Edited", Content: "b"}, "")
		require.NoError(t, err)

		assert.Equal(t, "Edited", updated.Title)
		assert.Equal(t, article.PublishedAt, updated.PublishedAt)
	})

	t.Run("update of unknown article", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, &dto.NewsForm{Title: "x", Content: "y"}, "")
		assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
	})

	t.Run("list filters by query", func(t *testing.T) {
		list, err := svc.List(ctx, &dto.ListQuery{Query: "scholarship"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Scholarship deadlines", list[0].Title)
	})
}

func TestTeamService(t *testing.T) {
	ctx := context.Background()
	svc := NewTeamService(newTestRepos().Team)

	t.Run("profburo head gets a derived position", func(t *testing.T) {
		member, err := svc.Create(ctx, &dto.TeamMemberForm{
			Name: "Oksana Kovalenko",
			Type: int(models.TypeProfburoHead),
		}, "")
		require.NoError(t, err)
		assert.Equal(t, "Profburo Head", member.Position)
		assert.False(t, member.IsChoosed)
	})

	t.Run("department head gets a derived position", func(t *testing.T) {
		member, err := svc.Create(ctx, &dto.TeamMemberForm{
			Name: "Taras Melnyk",
			Type: int(models.TypeViddilHead),
		}, "")
		require.NoError(t, err)
		assert.Equal(t, "Department Head", member.Position)
	})

	t.Run("aparat requires a free-text position", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.TeamMemberForm{
			Name: "Iryna Bondar",
			Type: int(models.TypeAparat),
		}, "")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		member, err := svc.Create(ctx, &dto.TeamMemberForm{
			Name:     "Iryna Bondar",
			Type:     int(models.TypeAparat),
			Position: "Accountant",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, "Accountant", member.Position)
	})

	t.Run("names are cleaned against the allow-list", func(t *testing.T) {
		member, err := svc.Create(ctx, &dto.TeamMemberForm{
			Name: "Оксана123 Коваленко!",
			Type: int(models.TypeProfburoHead),
		}, "")
		require.NoError(t, err)
		assert.Equal(t, "Оксана Коваленко", member.Name)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.TeamMemberForm{Name: "Valid Name", Type: 7}, "")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.TeamMemberForm{
			Name:  "Valid Name",
			Type:  int(models.TypeProfburoHead),
			Email: "not-an-email",
		}, "")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestProfService(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	teamSvc := NewTeamService(repos.Team)
	profSvc := NewProfService(repos.Prof)

	head, err := teamSvc.Create(ctx, &dto.TeamMemberForm{
		Name: "Oksana Kovalenko",
		Type: int(models.TypeProfburoHead),
	}, "")
	require.NoError(t, err)

	t.Run("create claims the head and embeds it", func(t *testing.T) {
		prof, err := profSvc.Create(ctx, &dto.ProfForm{
			Name:   "Computer Science Faculty Union",
			HeadID: head.ID,
		}, "")
		require.NoError(t, err)
		require.NotNil(t, prof.Head)
		assert.Equal(t, "Oksana Kovalenko", prof.Head.Name)
		assert.True(t, prof.Head.IsChoosed)
	})

	t.Run("member update keeps the claimed flag", func(t *testing.T) {
		updated, err := teamSvc.Update(ctx, head.ID, &dto.TeamMemberForm{
			Name: "Oksana Kovalenko",
			Type: int(models.TypeProfburoHead),
		}, "")
		require.NoError(t, err)
		assert.True(t, updated.IsChoosed)
	})

	t.Run("serving head cannot change type", func(t *testing.T) {
		_, err := teamSvc.Update(ctx, head.ID, &dto.TeamMemberForm{
			Name:     "Oksana Kovalenko",
			Type:     int(models.TypeAparat),
			Position: "Accountant",
		}, "")
		assert.ErrorIs(t, err, apperrors.ErrHeadTypeLocked)
	})

	t.Run("missing head id", func(t *testing.T) {
		_, err := profSvc.Create(ctx, &dto.ProfForm{Name: "Another Union"}, "")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("list searches head name", func(t *testing.T) {
		list, err := profSvc.List(ctx, &dto.ListQuery{Query: "kovalenko"})
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("list drops the excluded union", func(t *testing.T) {
		secondHead, err := teamSvc.Create(ctx, &dto.TeamMemberForm{
			Name: "Andrii Melnyk",
			Type: int(models.TypeProfburoHead),
		}, "")
		require.NoError(t, err)

		second, err := profSvc.Create(ctx, &dto.ProfForm{
			Name:   "Law Faculty Union",
			HeadID: secondHead.ID,
		}, "")
		require.NoError(t, err)

		list, err := profSvc.List(ctx, &dto.ListQuery{ExcludeID: second.ID})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Computer Science Faculty Union", list[0].Name)
	})
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()

	hash, err := auth.HashPassword("right-password")
	require.NoError(t, err)
	_, err = repos.Admin.Create(ctx, &models.AdminUser{
		Email:        "admin@profkom.lviv.ua",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	require.NoError(t, err)

	jwtSvc := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	svc := NewAuthService(repos.Admin, jwtSvc)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{
			Email:    "Admin@Profkom.Lviv.UA",
			Password: "right-password",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, string(models.RoleAdmin), resp.Role)
		assert.Equal(t, 3600, resp.ExpiresIn)

		claims, err := jwtSvc.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin@profkom.lviv.ua", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{
			Email:    "admin@profkom.lviv.ua",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestUnitService(t *testing.T) {
	ctx := context.Background()
	svc := NewUnitService(newTestRepos().Unit)

	unit, err := svc.Create(ctx, &dto.UnitForm{Name: "Central Office", Content: "<p>Hi</p>"}, "")
	require.NoError(t, err)
	assert.False(t, unit.CreatedAt.IsZero())
	assert.Equal(t, unit.CreatedAt, unit.UpdatedAt)

	t.Run("update preserves createdAt", func(t *testing.T) {
		updated, err := svc.Update(ctx, unit.ID, &dto.UnitForm{Name: "Renamed"}, "")
		require.NoError(t, err)
		assert.Equal(t, unit.CreatedAt, updated.CreatedAt)
	})

	t.Run("list drops the excluded unit", func(t *testing.T) {
		second, err := svc.Create(ctx, &dto.UnitForm{Name: "Legal Department"}, "")
		require.NoError(t, err)

		list, err := svc.List(ctx, &dto.ListQuery{ExcludeID: second.ID})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, unit.ID, list[0].ID)
	})
}
