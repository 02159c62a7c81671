package service

import (
	"context"
	"rolodex/internal/domain/entity"
	"rolodex/internal/domain/sqlite/repository"
	"rolodex/internal/utils/validators"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.Contact{},
		&entity.Note{},
		&entity.Company{},
		&entity.Reminder{},
		&entity.UserPreferences{},
	)
	require.NoError(t, err)
	return db
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("isodate", validators.ISODate))
	require.NoError(t, validate.RegisterValidation("nodupes", validators.NoDupes))
	return validate
}

func newContactService(t *testing.T, db *gorm.DB) *DefaultContactService {
	t.Helper()
	return NewContactService(
		repository.NewContactRepository(db),
		repository.NewPreferenceRepository(db),
		newValidate(t),
	)
}

type mockAI struct {
	SummarizeFn func(ctx context.Context, text string) (string, error)
	TitleFn     func(ctx context.Context, text string) (string, error)
}

func (m *mockAI) Summarize(ctx context.Context, text string) (string, error) {
	if m.SummarizeFn != nil {
		return m.SummarizeFn(ctx, text)
	}
	return "Mock Summary", nil
}

func (m *mockAI) GenerateTitle(ctx context.Context, text string) (string, error) {
	if m.TitleFn != nil {
		return m.TitleFn(ctx, text)
	}
	return "Mock Title", nil
}

type mockExtractor struct {
	Text string
	Err  error
}

func (m *mockExtractor) ExtractText([]byte) (string, error) {
	return m.Text, m.Err
}

func strptr(s string) *string {
	return &s
}
