package domain

import "context"

// CategoryAll selects every project.
const CategoryAll = "all"

type Social struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Profile struct {
	Name     string   `json:"name"`
	Headline string   `json:"headline"`
	Summary  string   `json:"summary"`
	Location string   `json:"location"`
	Email    string   `json:"email"`
	Socials  []Social `json:"socials"`
}

type Skill struct {
	Name  string `json:"name"`
	Group string `json:"group"`
}

type Project struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	RepoURL  string   `json:"repo_url,omitempty"`
	LiveURL  string   `json:"live_url,omitempty"`
	Featured bool     `json:"featured"`
}

type Experience struct {
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Highlights []string `json:"highlights"`
}

type Testimonial struct {
	Author string `json:"author"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
}

type Credential struct {
	Title        string `json:"title"`
	Issuer       string `json:"issuer"`
	Issued       string `json:"issued"`
	CredentialID string `json:"credential_id,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Portfolio is every section rendered on the page.
type Portfolio struct {
	Profile      Profile       `json:"profile"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Experience   []Experience  `json:"experience"`
	Testimonials []Testimonial `json:"testimonials"`
	Credentials  []Credential  `json:"credentials"`
}

// PortfolioUsecase serves the read-only page content.
type PortfolioUsecase interface {
	Get(ctx context.Context) *Portfolio
	ListProjects(ctx context.Context, category string) []Project
	Categories(ctx context.Context) []string
	GetProject(ctx context.Context, slug string) (*Project, error)
}
