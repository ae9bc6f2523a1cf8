// Package mention extracts @handle tokens from message text and maps them to
// user ids or the reserved AI assistant identity.
package mention

import (
	"context"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`@([A-Za-z0-9_]+)`)

// Directory is the slice of the user store the resolver needs: lowercase
// username → user id, unioned across every place a username may be recorded.
type Directory interface {
	ResolveUsernames(ctx context.Context, usernames []string) (map[string]string, error)
}

// Resolution is the outcome of scanning one message body.
type Resolution struct {
	AIMentioned  bool
	HumanUserIDs []string
}

type Resolver struct {
	directory       Directory
	assistantHandle string // matched case-insensitively, never looked up
}

func NewResolver(directory Directory, assistantHandle string) *Resolver {
	return &Resolver{
		directory:       directory,
		assistantHandle: strings.ToLower(assistantHandle),
	}
}

// Resolve scans rawContent once for @word tokens. The reserved assistant
// handle sets AIMentioned; every other token is looked up as a username and
// silently dropped when unknown. The sender never resolves into the human
// set, even when self-mentioned.
func (r *Resolver) Resolve(ctx context.Context, rawContent, senderID string) (*Resolution, error) {
	resolution := &Resolution{}

	matches := tokenPattern.FindAllStringSubmatch(rawContent, -1)
	if len(matches) == 0 {
		return resolution, nil
	}

	seen := make(map[string]struct{})
	candidates := make([]string, 0, len(matches))
	for _, match := range matches {
		handle := strings.ToLower(match[1])
		if handle == r.assistantHandle {
			resolution.AIMentioned = true
			continue
		}
		if _, ok := seen[handle]; ok {
			continue
		}
		seen[handle] = struct{}{}
		candidates = append(candidates, handle)
	}

	if len(candidates) == 0 {
		return resolution, nil
	}

	resolved, err := r.directory.ResolveUsernames(ctx, candidates)
	if err != nil {
		return nil, err
	}

	added := make(map[string]struct{})
	for _, handle := range candidates {
		userID, ok := resolved[handle]
		if !ok || userID == senderID {
			continue
		}
		if _, dup := added[userID]; dup {
			continue
		}
		added[userID] = struct{}{}
		resolution.HumanUserIDs = append(resolution.HumanUserIDs, userID)
	}

	return resolution, nil
}

// StripHandle removes every occurrence of @handle (case-insensitive) from
// text. The assistant responder uses this so the model does not see its own
// mention token.
func StripHandle(text, handle string) string {
	cleaned := tokenPattern.ReplaceAllStringFunc(text, func(token string) string {
		if strings.EqualFold(token, "@"+handle) {
			return ""
		}
		return token
	})
	return strings.Join(strings.Fields(cleaned), " ")
}
