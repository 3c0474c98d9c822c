package gcalendar

import (
	"sync"

	"golang.org/x/oauth2"
)

// persistingTokenSource writes refreshed tokens back to disk so a restart
// does not need a new consent. Safe for concurrent use.
type persistingTokenSource struct {
	mu   sync.Mutex
	base oauth2.TokenSource
	path string
	last string
}

func newPersistingTokenSource(base oauth2.TokenSource, path string, initial *oauth2.Token) *persistingTokenSource {
	last := ""
	if initial != nil {
		last = initial.AccessToken
	}
	return &persistingTokenSource{base: base, path: path, last: last}
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken != s.last {
		// A failed write only costs a refresh on the next start.
		if saveErr := SaveToken(s.path, tok); saveErr == nil {
			s.last = tok.AccessToken
		}
	}
	return tok, nil
}
