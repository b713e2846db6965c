package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fashioncollab/fashioncollab/internal/apperr"
	"github.com/fashioncollab/fashioncollab/internal/models"
	"github.com/fashioncollab/fashioncollab/internal/services"
	"github.com/fashioncollab/fashioncollab/internal/store"
)

type testEnv struct {
	conn        *gorm.DB
	users       *store.UserStore
	projects    *services.ProjectService
	memberships *services.MembershipService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and
	// serializes writes the way a shared server would.
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, conn.AutoMigrate(&models.User{}, &models.Project{}, &models.ProjectMembership{}))

	users := store.NewUserStore(conn)
	projects := store.NewProjectStore(conn)
	memberships := store.NewMembershipStore(conn)

	return &testEnv{
		conn:        conn,
		users:       users,
		projects:    services.NewProjectService(projects, memberships),
		memberships: services.NewMembershipService(projects, memberships, users),
	}
}

func (e *testEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, PasswordHash: "not-a-real-hash", Role: "unknown"}
	require.NoError(t, e.users.Create(user))

	return user
}

func (e *testEnv) createProject(t *testing.T, ownerID uint, title string) *models.Project {
	t.Helper()

	project, err := e.projects.Create(ownerID, &models.Project{Title: title})
	require.NoError(t, err)

	return project
}

func requireKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()

	require.Error(t, err)
	require.Equal(t, kind, apperr.KindOf(err))
}
