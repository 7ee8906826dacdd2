package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
)

// GitHubService fetches real contribution data for a student's GitHub
// username. Optional pieces (stars, languages, events) degrade to zero
// values instead of failing the whole fetch.
type GitHubService interface {
	FetchStats(ctx context.Context, username string) (*models.GitHubStats, error)
}

type githubService struct {
	client *github.Client
}

// NewGitHubService builds a client; with an empty token it stays
// unauthenticated and lives within the anonymous rate limit.
func NewGitHubService(token string) GitHubService {
	if token == "" {
		return &githubService{client: github.NewClient(nil)}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &githubService{client: github.NewClient(tc)}
}

// FetchStats implements GitHubService.
func (g *githubService) FetchStats(ctx context.Context, username string) (*models.GitHubStats, error) {
	user, _, err := g.client.Users.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch github user %s: %w", username, err)
	}

	stats := &models.GitHubStats{
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
	}

	repos, _, err := g.client.Repositories.ListByUser(ctx, username, &github.RepositoryListByUserOptions{
		Type:        "owner",
		ListOptions: github.ListOptions{PerPage: 100},
	})
	if err == nil {
		languages := make(map[string]int)
		for _, repo := range repos {
			stats.TotalStars += repo.GetStargazersCount()
			if lang := repo.GetLanguage(); lang != "" {
				languages[lang]++
			}
		}
		stats.TopLanguages = topLanguages(languages, 5)
	}

	events, _, err := g.client.Activity.ListEventsPerformedByUser(ctx, username, true, &github.ListOptions{PerPage: 100})
	if err == nil {
		for _, ev := range events {
			if ev.GetType() == "PushEvent" {
				stats.RecentPushes++
			}
		}
	}

	return stats, nil
}

func topLanguages(counts map[string]int, limit int) []string {
	langs := make([]string, 0, len(counts))
	for lang := range counts {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		if counts[langs[i]] != counts[langs[j]] {
			return counts[langs[i]] > counts[langs[j]]
		}
		return langs[i] < langs[j]
	})
	if len(langs) > limit {
		langs = langs[:limit]
	}
	return langs
}
