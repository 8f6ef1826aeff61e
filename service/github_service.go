package service

import (
	"time"

	"devconnect/internal/apperr"
	"devconnect/internal/cache"
	"devconnect/internal/github"
	"devconnect/internal/metrics"
)

const githubCacheTTL = 10 * time.Minute

// GithubService proxies repository lookups for profile pages, keeping
// recent answers warm in Redis so profile views don't burn the upstream
// rate limit.
type GithubService struct {
	client *github.Client
	cache  *cache.Store
}

// NewGithubService 创建一个新的 GithubService 实例
func NewGithubService(client *github.Client, store *cache.Store) *GithubService {
	return &GithubService{client: client, cache: store}
}

// Repos returns up to five of the user's repositories, oldest first. Every
// upstream failure mode collapses into the same not-found answer.
func (s *GithubService) Repos(username string) ([]github.Repo, error) {
	key := "github:" + username
	var repos []github.Repo
	if found, err := s.cache.Get(key, &repos); err == nil && found {
		metrics.IncGithub("hit")
		return repos, nil
	}
	repos, err := s.client.ListRepos(username)
	if err != nil {
		metrics.IncGithub("error")
		return nil, apperr.NotFound("No Github profile found")
	}
	if err := s.cache.Set(key, repos, githubCacheTTL); err != nil {
		// Cache misses are tolerable; the lookup already succeeded.
		metrics.IncGithub("cache_write_failed")
	}
	metrics.IncGithub("miss")
	return repos, nil
}
