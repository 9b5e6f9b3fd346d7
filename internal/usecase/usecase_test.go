package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, recipient, subject, body string) error {
	return m.Called(ctx, recipient, subject, body).Error(0)
}

func validInput() map[string]any {
	return map[string]any{"name": "Ada", "email": "ada@example.com", "message": "Hello"}
}

func TestValidateSubmission(t *testing.T) {
	t.Run("Should accept all three fields", func(t *testing.T) {
		sub, err := usecase.ValidateSubmission(validInput())
		require.NoError(t, err)
		assert.Equal(t, &domain.ContactSubmission{Name: "Ada", Email: "ada@example.com", Message: "Hello"}, sub)
	})

	t.Run("Should keep values unchanged", func(t *testing.T) {
		sub, err := usecase.ValidateSubmission(map[string]any{"name": "  Ada ", "email": "not-an-email", "message": " "})
		require.NoError(t, err)
		assert.Equal(t, "  Ada ", sub.Name)
		assert.Equal(t, "not-an-email", sub.Email)
		assert.Equal(t, " ", sub.Message)
	})

	cases := []struct {
		name    string
		input   map[string]any
		missing []string
	}{
		{"empty email", map[string]any{"name": "Ada", "email": "", "message": "Hello"}, []string{"email"}},
		{"absent email", map[string]any{"name": "Ada", "message": "Hello"}, []string{"email"}},
		{"null name", map[string]any{"name": nil, "email": "ada@example.com", "message": "Hello"}, []string{"name"}},
		{"non-string message", map[string]any{"name": "Ada", "email": "ada@example.com", "message": 42.0}, []string{"message"}},
		{"empty record", map[string]any{}, []string{"name", "email", "message"}},
		{"nil record", nil, []string{"name", "email", "message"}},
	}
	for _, tc := range cases {
		t.Run("Should reject "+tc.name, func(t *testing.T) {
			sub, err := usecase.ValidateSubmission(tc.input)
			assert.Nil(t, sub)

			var missing *domain.MissingFieldsError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, "Missing fields", err.Error())
			assert.Equal(t, tc.missing, missing.Fields)
		})
	}
}

func TestContactSubmit(t *testing.T) {
	t.Run("Should send a composed message to the recipient", func(t *testing.T) {
		sender := new(MockSender)
		uc := usecase.NewContactUsecase(sender, "inbox@example.com")

		sender.On("Send", mock.Anything, "inbox@example.com", "Portfolio contact: Ada", mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "ada@example.com") && strings.Contains(body, "Hello")
		})).Return(nil).Once()

		sub, err := uc.Submit(context.Background(), validInput())
		require.NoError(t, err)
		assert.Equal(t, "Ada", sub.Name)
		sender.AssertExpectations(t)
	})

	t.Run("Should keep line breaks in the name out of the subject", func(t *testing.T) {
		sender := new(MockSender)
		uc := usecase.NewContactUsecase(sender, "inbox@example.com")
		sender.On("Send", mock.Anything, "inbox@example.com", "Portfolio contact: AdaBcc: x@evil.com", mock.Anything).Return(nil).Once()

		input := validInput()
		input["name"] = "Ada\r\nBcc: x@evil.com"
		sub, err := uc.Submit(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "Ada\r\nBcc: x@evil.com", sub.Name)
		sender.AssertExpectations(t)
	})

	t.Run("Should not call the sender for invalid input", func(t *testing.T) {
		sender := new(MockSender)
		uc := usecase.NewContactUsecase(sender, "inbox@example.com")

		_, err := uc.Submit(context.Background(), map[string]any{"name": "Ada"})
		var missing *domain.MissingFieldsError
		assert.ErrorAs(t, err, &missing)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should succeed when delivery fails", func(t *testing.T) {
		sender := new(MockSender)
		uc := usecase.NewContactUsecase(sender, "inbox@example.com")
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		sub, err := uc.Submit(context.Background(), validInput())
		require.NoError(t, err)
		assert.NotNil(t, sub)
	})

	t.Run("Should succeed without a sender", func(t *testing.T) {
		uc := usecase.NewContactUsecase(nil, "inbox@example.com")
		sub, err := uc.Submit(context.Background(), validInput())
		require.NoError(t, err)
		assert.Equal(t, "Hello", sub.Message)
	})

	t.Run("Should treat repeated submissions independently", func(t *testing.T) {
		sender := new(MockSender)
		uc := usecase.NewContactUsecase(sender, "inbox@example.com")
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		for i := 0; i < 2; i++ {
			_, err := uc.Submit(context.Background(), validInput())
			require.NoError(t, err)
		}
		sender.AssertNumberOfCalls(t, "Send", 2)
	})
}

func TestFilterProjects(t *testing.T) {
	projects := []domain.Project{
		{Slug: "a", Category: "web"},
		{Slug: "b", Category: "cli"},
		{Slug: "c", Category: "Web"},
	}

	slugs := func(ps []domain.Project) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Slug)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c"}, slugs(usecase.FilterProjects(projects, "")))
	assert.Equal(t, []string{"a", "b", "c"}, slugs(usecase.FilterProjects(projects, "ALL")))
	assert.Equal(t, []string{"a", "c"}, slugs(usecase.FilterProjects(projects, "web")))
	assert.Equal(t, []string{"b"}, slugs(usecase.FilterProjects(projects, " cli ")))

	none := usecase.FilterProjects(projects, "games")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPortfolioUsecase(t *testing.T) {
	uc := usecase.NewPortfolioUsecase(usecase.DefaultPortfolio())
	ctx := context.Background()

	t.Run("Should list categories with all first", func(t *testing.T) {
		assert.Equal(t, []string{"all", "cli", "ml", "web", "backend"}, uc.Categories(ctx))
	})

	t.Run("Should find a project by slug", func(t *testing.T) {
		p, err := uc.GetProject(ctx, "portfolio")
		require.NoError(t, err)
		assert.Equal(t, "web", p.Category)
	})

	t.Run("Should return not found for unknown slug", func(t *testing.T) {
		_, err := uc.GetProject(ctx, "nope")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should filter projects by category", func(t *testing.T) {
		for _, p := range uc.ListProjects(ctx, "cli") {
			assert.Equal(t, "cli", p.Category)
		}
		assert.Len(t, uc.ListProjects(ctx, "all"), len(uc.Get(ctx).Projects))
	})
}

func TestHealthCheck(t *testing.T) {
	status := usecase.NewHealthUsecase().Check(context.Background())
	assert.Equal(t, "ok", status["status"])
	assert.Contains(t, status, "uptime")
}
