package usecase

import (
	"context"
	"strings"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type portfolioUsecase struct {
	portfolio  *domain.Portfolio
	categories []string
}

// NewPortfolioUsecase serves p as read-only content. p must not be modified afterwards.
func NewPortfolioUsecase(p *domain.Portfolio) domain.PortfolioUsecase {
	return &portfolioUsecase{
		portfolio:  p,
		categories: projectCategories(p.Projects),
	}
}

func (u *portfolioUsecase) Get(ctx context.Context) *domain.Portfolio {
	return u.portfolio
}

func (u *portfolioUsecase) ListProjects(ctx context.Context, category string) []domain.Project {
	return FilterProjects(u.portfolio.Projects, category)
}

func (u *portfolioUsecase) Categories(ctx context.Context) []string {
	out := make([]string, len(u.categories))
	copy(out, u.categories)
	return out
}

func (u *portfolioUsecase) GetProject(ctx context.Context, slug string) (*domain.Project, error) {
	for i := range u.portfolio.Projects {
		if u.portfolio.Projects[i].Slug == slug {
			p := u.portfolio.Projects[i]
			return &p, nil
		}
	}
	return nil, apperror.NotFound("Project not found")
}

// FilterProjects keeps projects in the given category, preserving order.
// An empty category or "all" keeps everything; matching ignores case.
// The result is never nil.
func FilterProjects(projects []domain.Project, category string) []domain.Project {
	category = strings.TrimSpace(category)
	all := category == "" || strings.EqualFold(category, domain.CategoryAll)

	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if all || strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// projectCategories lists "all" followed by each category in first-seen order
func projectCategories(projects []domain.Project) []string {
	seen := make(map[string]bool)
	cats := []string{domain.CategoryAll}
	for _, p := range projects {
		key := strings.ToLower(p.Category)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		cats = append(cats, key)
	}
	return cats
}
