package services

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sq23rd/roster-backend/internal/auth"
	"github.com/sq23rd/roster-backend/internal/email"
	"github.com/sq23rd/roster-backend/internal/models"
	"github.com/sq23rd/roster-backend/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.OwnerClaim{},
		&models.Qualification{},
		&models.Schedule{},
		&models.FCIF{},
		&models.FCIFAcknowledgement{},
	))
	return db
}

type sentMail struct {
	To   string
	Link string
}

// mockMailProvider captures outgoing reset mail instead of dialing SMTP.
type mockMailProvider struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

var _ email.Provider = (*mockMailProvider)(nil)

func (m *mockMailProvider) Send(e *email.Email) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	return nil
}

func (m *mockMailProvider) SendPasswordReset(to, resetLink string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Link: resetLink})
	return nil
}

func (m *mockMailProvider) Close() error { return nil }

func (m *mockMailProvider) lastSent(t *testing.T) sentMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent)
	return m.sent[len(m.sent)-1]
}

type testEnv struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	tokens   *auth.TokenService
	mail     *mockMailProvider
	auth     AuthService
	users    UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	tokens := auth.NewTokenService("test-secret", time.Hour)
	mail := &mockMailProvider{}

	authSvc := NewAuthService(userRepo, auth.NewHasher(bcrypt.MinCost), tokens, mail, AuthConfig{
		LoginDomain:   "sq23rd.com",
		ResetTokenTTL: time.Hour,
		FrontendURL:   "http://localhost:3000",
		PasswordPolicy: auth.PasswordPolicy{
			MinLength:     8,
			RequireLetter: true,
			RequireDigit:  true,
		},
	})

	return &testEnv{
		db:       db,
		userRepo: userRepo,
		tokens:   tokens,
		mail:     mail,
		auth:     authSvc,
		users:    NewUserService(userRepo),
	}
}
