package main

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/vtree"
	"github.com/dmitrymomot/vtree/pkg/httpvalidate"
	"github.com/dmitrymomot/vtree/pkg/rule"
)

type Profile struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type SignupRequest struct {
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Tags     []string `json:"tags"`
	Profile  Profile  `json:"profile"`
}

// usernames is the in-memory registry behind the signup endpoint.
type usernames struct {
	mu    sync.RWMutex
	taken map[string]struct{}
}

func newUsernames(reserved ...string) *usernames {
	u := &usernames{taken: make(map[string]struct{})}
	for _, name := range reserved {
		u.taken[strings.ToLower(name)] = struct{}{}
	}
	return u
}

func (u *usernames) available(ctx context.Context, name string, _ rule.Env) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	_, taken := u.taken[strings.ToLower(name)]
	return !taken, nil
}

// claim registers name and reports false when it was taken meanwhile.
func (u *usernames) claim(name string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	key := strings.ToLower(name)
	if _, taken := u.taken[key]; taken {
		return false
	}
	u.taken[key] = struct{}{}
	return true
}

var blockedDomains = []string{"example.invalid", "mailinator.com"}

func newSignupTree(names *usernames, opts ...vtree.Option) *vtree.Tree[SignupRequest] {
	profile := vtree.MustNew(vtree.Config[Profile]{
		Items: []vtree.Item[Profile]{
			vtree.Field("name", func(p *Profile) *string { return &p.Name },
				rule.String().Required().MaxLen(64)),
			vtree.Field("age", func(p *Profile) *int { return &p.Age },
				rule.Number[int]().
					Must(func(age int, _ rule.Env) bool { return age >= 18 }, "too young").
					Must(func(age int, _ rule.Env) bool { return age <= 100 }, "too old")),
		},
	})

	return vtree.MustNew(vtree.Config[SignupRequest]{
		ID: "signup",
		Items: []vtree.Item[SignupRequest]{
			vtree.Field("email", func(s *SignupRequest) *string { return &s.Email },
				rule.String().Required().Email().
					Must(func(v string, _ rule.Env) bool {
						_, domain, _ := strings.Cut(v, "@")
						return !slices.Contains(blockedDomains, strings.ToLower(domain))
					}, "email domain is not allowed")),
			vtree.Field("username", func(s *SignupRequest) *string { return &s.Username },
				rule.String().NotEmpty().MinLen(3).MaxLen(32).Alphanumeric().
					MustAsync(names.available, "username is taken")),
			vtree.Field("tags", func(s *SignupRequest) *[]string { return &s.Tags },
				rule.Slice[string]().MaxItems(5).Each(rule.MaxLen(20))),
		},
		Nested: []vtree.Child[SignupRequest]{
			vtree.Nest("profile", func(s *SignupRequest) *Profile { return &s.Profile }, profile),
		},
	}, opts...)
}

func signupHandler(names *usernames) httpvalidate.Next[SignupRequest] {
	return func(w http.ResponseWriter, r *http.Request, req *SignupRequest) {
		if !names.claim(req.Username) {
			_ = httpvalidate.WriteJSON(w, http.StatusConflict, httpvalidate.Response{
				Code:    "conflict",
				Message: "username is taken",
			})
			return
		}
		_ = httpvalidate.WriteJSON(w, http.StatusCreated, map[string]any{
			"success":  true,
			"username": req.Username,
		})
	}
}
