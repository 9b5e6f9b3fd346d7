package usecase

import "portfolio-backend/internal/domain"

// DefaultPortfolio is the content shown on the site.
func DefaultPortfolio() *domain.Portfolio {
	return &domain.Portfolio{
		Profile: domain.Profile{
			Name:     "Jordan Avery",
			Headline: "Backend engineer building small, dependable web services",
			Summary: `I like software that is useful and a little fun, and I am always curious about
how things work behind the scenes. Most of my projects start as a simple idea and turn into
a chance to learn a new language, tool, or tricky problem.`,
			Location: "Minneapolis, MN",
			Email:    "hello@example.com",
			Socials: []domain.Social{
				{Label: "GitHub", URL: "https://github.com/example"},
				{Label: "LinkedIn", URL: "https://www.linkedin.com/in/example"},
			},
		},
		Skills: []domain.Skill{
			{Name: "Go", Group: "Languages"},
			{Name: "TypeScript", Group: "Languages"},
			{Name: "Python", Group: "Languages"},
			{Name: "SQL", Group: "Languages"},
			{Name: "Gin", Group: "Frameworks"},
			{Name: "React", Group: "Frameworks"},
			{Name: "HTMX", Group: "Frameworks"},
			{Name: "PostgreSQL", Group: "Data"},
			{Name: "Redis", Group: "Data"},
			{Name: "Docker", Group: "Tooling"},
			{Name: "GitHub Actions", Group: "Tooling"},
		},
		Projects: []domain.Project{
			{
				Slug:     "terminal-mail",
				Title:    "Terminal Mail",
				Summary:  "A terminal email client with fuzzy search, built on a TUI framework and IMAP.",
				Category: "cli",
				Tags:     []string{"Go", "IMAP", "TUI"},
				RepoURL:  "https://github.com/example/terminal-mail",
				Featured: true,
			},
			{
				Slug:     "tune-cli",
				Title:    "Tune CLI",
				Summary:  "Stream music from the command line with a keyboard driven interface.",
				Category: "cli",
				Tags:     []string{"Go", "mpv"},
				RepoURL:  "https://github.com/example/tune-cli",
			},
			{
				Slug:     "game-recommender",
				Title:    "Game Recommender",
				Summary:  "Content based game recommendations using TF-IDF and cosine similarity, with interactive charts.",
				Category: "ml",
				Tags:     []string{"Python", "scikit-learn"},
				LiveURL:  "https://games.example.com",
				Featured: true,
			},
			{
				Slug:     "portfolio",
				Title:    "This Portfolio",
				Summary:  "A responsive single page portfolio backed by a small Go API.",
				Category: "web",
				Tags:     []string{"Go", "Gin", "TypeScript"},
				RepoURL:  "https://github.com/example/portfolio",
				LiveURL:  "https://example.com",
			},
			{
				Slug:     "link-shortener",
				Title:    "Link Shortener",
				Summary:  "URL shortener with click counts and a privacy friendly visitor log.",
				Category: "backend",
				Tags:     []string{"Go", "SQLite"},
				RepoURL:  "https://github.com/example/link-shortener",
			},
		},
		Experience: []domain.Experience{
			{
				Role:      "Software Engineer",
				Company:   "Northwind Logistics",
				StartDate: "Aug 2023",
				EndDate:   "Present",
				Highlights: []string{
					"Built shipment tracking APIs serving internal dashboards",
					"Cut p95 latency of the rates service by moving hot lookups to Redis",
				},
			},
			{
				Role:      "Operations Lead",
				Company:   "Lakeside Events",
				StartDate: "Aug 2016",
				EndDate:   "Jul 2023",
				Highlights: []string{
					"Coordinated custom menus and dietary requirements for client events",
					"Replaced paper order tracking with a shared digital workflow",
				},
			},
		},
		Testimonials: []domain.Testimonial{
			{
				Author: "Priya Raman",
				Role:   "Engineering Manager, Northwind Logistics",
				Quote:  "Jordan ships careful, well tested code and makes the rest of the team faster.",
			},
			{
				Author: "Marcus Hill",
				Role:   "Owner, Lakeside Events",
				Quote:  "Organized, calm under pressure, and always the first to fix what was broken.",
			},
		},
		Credentials: []domain.Credential{
			{
				Title:  "B.S. Computer Science",
				Issuer: "Western State University",
				Issued: "May 2023",
			},
			{
				Title:        "Project+",
				Issuer:       "CompTIA",
				Issued:       "Jul 2022",
				CredentialID: "SRRRPGBSWBRQCCDJ",
			},
		},
	}
}
