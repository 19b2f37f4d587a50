package vtree_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vtree"
	"github.com/dmitrymomot/vtree/pkg/logger"
	"github.com/dmitrymomot/vtree/pkg/report"
	"github.com/dmitrymomot/vtree/pkg/rule"
)

type Team struct {
	Lead User `json:"lead"`
}

func newAgeTree(check rule.AsyncPredicate[int], opts ...vtree.Option) *vtree.Tree[Profile] {
	return vtree.MustNew(vtree.Config[Profile]{
		Items: []vtree.Item[Profile]{
			vtree.Field("age", func(p *Profile) *int { return &p.Age },
				rule.Number[int]().MustAsync(check, "age cannot be verified")),
		},
	}, opts...)
}

func nestProfile(child *vtree.Tree[Profile], opts ...vtree.Option) *vtree.Tree[User] {
	return vtree.MustNew(vtree.Config[User]{
		Nested: []vtree.Child[User]{
			vtree.Nest("profile", func(u *User) *Profile { return &u.Profile }, child),
		},
	}, opts...)
}

func TestNest_InheritsOptions(t *testing.T) {
	t.Parallel()

	t.Run("child without options takes the parent's", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		slow := func(context.Context, int, rule.Env) (bool, error) {
			<-release
			return true, nil
		}

		profiles := newAgeTree(slow)
		users := nestProfile(profiles,
			vtree.WithRuleTimeout(20*time.Millisecond),
			vtree.WithResultsType(report.TypeArray),
		)
		assert.Equal(t, users.Options(), profiles.Options())

		done := make(chan error, 1)
		go func() {
			_, err := users.ValidateAsync(context.Background(), validUser())
			done <- err
		}()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, vtree.ErrRuleTimeout)
		case <-time.After(2 * time.Second):
			t.Fatal("nested rule was not bounded by the parent's rule timeout")
		}

		age, _ := profiles.Item("age")
		assert.Equal(t, vtree.Invalid, age.State())
	})

	t.Run("child options win", func(t *testing.T) {
		profiles := newProfileTree(vtree.WithOptions(vtree.Options{RuleTimeout: time.Second}))
		users := nestProfile(profiles, vtree.WithRuleTimeout(time.Minute), vtree.WithDev(true))

		assert.Equal(t, time.Second, profiles.Options().RuleTimeout)
		assert.False(t, profiles.Options().Dev)
		assert.True(t, users.Options().Dev)
	})

	t.Run("grandchildren inherit through their parent", func(t *testing.T) {
		profiles := newProfileTree()
		users := nestProfile(profiles)
		teams := vtree.MustNew(vtree.Config[Team]{
			Nested: []vtree.Child[Team]{
				vtree.Nest("lead", func(tm *Team) *User { return &tm.Lead }, users),
			},
		}, vtree.WithDev(true), vtree.WithRuleTimeout(time.Second))

		assert.Equal(t, teams.Options(), users.Options())
		assert.Equal(t, teams.Options(), profiles.Options())
	})

	t.Run("dev mode reaches child import warnings", func(t *testing.T) {
		var buf bytes.Buffer
		users := newUserTree(vtree.WithDev(true), vtree.WithLogger(logger.New(logger.WithOutput(&buf))))

		data := []byte(`{"nested":{"profile":{"items":[{"field":"nickname","message":"bad","valid":false,"value":null}]}}}`)
		require.NoError(t, users.ImportJSON(data))
		assert.Contains(t, buf.String(), "unknown field in report")
		assert.Contains(t, buf.String(), `"tree_id":"Profile"`)
	})
}

func TestNest_InheritsLogger(t *testing.T) {
	t.Parallel()

	failing := func(context.Context, int, rule.Env) (bool, error) {
		return false, errors.New("lookup down")
	}

	t.Run("child rule errors reach the parent logger", func(t *testing.T) {
		var buf bytes.Buffer
		users := nestProfile(newAgeTree(failing), vtree.WithLogger(logger.New(logger.WithOutput(&buf))))

		ok, err := users.ValidateAsync(context.Background(), validUser())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, buf.String(), "rule failed with error")
		assert.Contains(t, buf.String(), "lookup down")
		assert.Contains(t, buf.String(), `"tree_id":"Profile"`)
	})

	t.Run("child keeps its own logger", func(t *testing.T) {
		var own, parent bytes.Buffer
		profiles := newAgeTree(failing, vtree.WithLogger(logger.New(logger.WithOutput(&own))))
		users := nestProfile(profiles, vtree.WithLogger(logger.New(logger.WithOutput(&parent))))

		_, err := users.Validate(validUser())
		require.NoError(t, err)
		assert.Contains(t, own.String(), "rule failed with error")
		assert.Empty(t, parent.String())
	})

	t.Run("records carry values from the validation context", func(t *testing.T) {
		type requestIDKey struct{}
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithContextValue("request_id", requestIDKey{}))
		users := nestProfile(newAgeTree(failing), vtree.WithLogger(log))

		ctx := context.WithValue(context.Background(), requestIDKey{}, "req-42")
		_, err := users.ValidateAsync(ctx, validUser())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	})
}

func TestTree_Validate_WarnsOnInlineAsyncRules(t *testing.T) {
	t.Parallel()

	taken := func(_ context.Context, v string, _ rule.Env) (bool, error) {
		return v != "admin", nil
	}

	var buf bytes.Buffer
	tree := newHandleTree(taken, vtree.WithDev(true), vtree.WithLogger(logger.New(logger.WithOutput(&buf))))

	_, err := tree.Validate(&User{Username: "alice"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "asynchronous rules evaluated inline")

	buf.Reset()
	_, err = tree.ValidateAsync(context.Background(), &User{Username: "alice"})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "asynchronous rules evaluated inline")
}
