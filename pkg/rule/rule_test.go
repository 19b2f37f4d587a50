package rule_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vtree/pkg/rule"
)

func TestEvaluate_FirstFailureWins(t *testing.T) {
	t.Parallel()
	rules := rule.String().Required().MinLen(5).Alphanumeric().Rules()

	t.Run("passes", func(t *testing.T) {
		out := rule.Evaluate(rules, "abcde1", rule.Env{})
		assert.True(t, out.Valid)
		assert.Empty(t, out.Message)
	})

	t.Run("reports only the first failing rule", func(t *testing.T) {
		out := rule.Evaluate(rules, "", rule.Env{})
		assert.False(t, out.Valid)
		assert.Equal(t, "required", out.Rule)
		assert.Equal(t, "field is required", out.Message)
		assert.Equal(t, "validation.required", out.TranslationKey)
	})

	t.Run("later rule fails", func(t *testing.T) {
		out := rule.Evaluate(rules, "ab cd", rule.Env{})
		assert.False(t, out.Valid)
		assert.Equal(t, "alphanumeric", out.Rule)
	})

	t.Run("empty list is valid", func(t *testing.T) {
		assert.True(t, rule.Evaluate[string](nil, "", rule.Env{}).Valid)
	})
}

func TestChain_OnError(t *testing.T) {
	t.Parallel()
	allowed := []string{"example@mail.com"}

	t.Run("override replaces the rule check", func(t *testing.T) {
		rules := rule.String().Required().Email().OnError(func(v string, _ rule.Env) bool {
			for _, a := range allowed {
				if a == v {
					return false
				}
			}
			return true
		}, "unexpected email").Rules()

		require.Len(t, rules, 2)
		assert.NotNil(t, rules[1].Override)

		assert.True(t, rule.Evaluate(rules, "example@mail.com", rule.Env{}).Valid)
		out := rule.Evaluate(rules, "wrong@mail.com", rule.Env{})
		assert.False(t, out.Valid)
		assert.Equal(t, "unexpected email", out.Message)
		assert.Empty(t, out.TranslationKey)
	})

	t.Run("second override appends a rule", func(t *testing.T) {
		type profile struct{ Age int }
		rules := rule.Custom[profile]().
			OnError(func(p profile, _ rule.Env) bool { return p.Age < 18 }, "too young").
			OnError(func(p profile, _ rule.Env) bool { return p.Age > 100 }, "too old").
			Rules()

		require.Len(t, rules, 2)
		assert.True(t, rule.Evaluate(rules, profile{Age: 25}, rule.Env{}).Valid)
		assert.Equal(t, "too young", rule.Evaluate(rules, profile{Age: 16}, rule.Env{}).Message)
		assert.Equal(t, "too old", rule.Evaluate(rules, profile{Age: 105}, rule.Env{}).Message)
	})

	t.Run("first matching override in declared order wins", func(t *testing.T) {
		rules := rule.Custom[int]().
			OnError(func(v int, _ rule.Env) bool { return v < 10 }, "first").
			OnError(func(v int, _ rule.Env) bool { return v < 5 }, "second").
			Rules()

		assert.Equal(t, "first", rule.Evaluate(rules, 1, rule.Env{}).Message)
	})
}

func TestChain_RulesIsACopy(t *testing.T) {
	t.Parallel()
	c := rule.String().Required()
	rules := c.Rules()
	rules[0].Message = "changed"
	assert.Equal(t, "field is required", c.Rules()[0].Message)
}

func TestEvaluateContext_Async(t *testing.T) {
	t.Parallel()

	t.Run("async predicate receives the context", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "taken")
		rules := rule.String().MustAsync(func(ctx context.Context, v string, _ rule.Env) (bool, error) {
			return ctx.Value(key{}) != v, nil
		}, "already taken").Rules()

		assert.True(t, rule.IsAsync(rules))
		assert.True(t, rule.EvaluateContext(ctx, rules, "free", rule.Env{}).Valid)
		assert.Equal(t, "already taken", rule.EvaluateContext(ctx, rules, "taken", rule.Env{}).Message)
	})

	t.Run("predicate error fails the rule", func(t *testing.T) {
		boom := errors.New("lookup failed")
		rules := rule.String().MustAsync(func(context.Context, string, rule.Env) (bool, error) {
			return true, boom
		}, "cannot verify").Rules()

		out := rule.Evaluate(rules, "x", rule.Env{})
		assert.False(t, out.Valid)
		assert.Equal(t, "cannot verify", out.Message)
		assert.ErrorIs(t, out.Err, boom)
	})
}

func TestEnvIsPassedToPredicates(t *testing.T) {
	t.Parallel()
	var got rule.Env
	rules := rule.Custom[string]().Must(func(_ string, env rule.Env) bool {
		got = env
		return true
	}, "never").Rules()

	env := rule.Env{Field: "name", Container: "obj", Payload: 42}
	rule.Evaluate(rules, "x", env)
	assert.Equal(t, env, got)
}

func TestStringRules(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		rule  rule.Rule[string]
		value string
		valid bool
	}{
		{"required ok", rule.RequiredString(), "a", true},
		{"required blank", rule.RequiredString(), "   ", false},
		{"not empty blank", rule.NotEmpty(), " ", true},
		{"not empty empty", rule.NotEmpty(), "", false},
		{"min len runes", rule.MinLen(3), "äöü", true},
		{"min len short", rule.MinLen(3), "ab", false},
		{"max len", rule.MaxLen(2), "abc", false},
		{"len", rule.Len(2), "ab", true},
		{"match", rule.Match(regexp.MustCompile(`^a+$`), "only a"), "aaa", true},
		{"email ok", rule.Email(), "example@mail.com", true},
		{"email no domain dot", rule.Email(), "user@localhost", false},
		{"email display name", rule.Email(), "John <john@mail.com>", false},
		{"email empty", rule.Email(), "", false},
		{"url ok", rule.URL(), "https://example.com/path", true},
		{"url relative", rule.URL(), "/path", false},
		{"phone ok", rule.Phone(), "+1 234-567-8901", true},
		{"phone short", rule.Phone(), "+12", false},
		{"alphanumeric ok", rule.Alphanumeric(), "testuser1", true},
		{"alphanumeric empty", rule.Alphanumeric(), "", false},
		{"alpha digits", rule.Alpha(), "abc1", false},
		{"numeric ok", rule.NumericString(), "0123", true},
		{"uuid ok", rule.UUID(), uuid.NewString(), true},
		{"uuid bad", rule.UUID(), "not-a-uuid", false},
		{"one of", rule.OneOf("a", "b"), "b", true},
		{"not one of", rule.NotOneOf("a", "b"), "b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, rule.Evaluate([]rule.Rule[string]{tt.rule}, tt.value, rule.Env{}).Valid)
		})
	}
}

func TestNumberRules(t *testing.T) {
	t.Parallel()
	rules := rule.Number[int]().Required().Between(18, 100).Rules()

	assert.True(t, rule.Evaluate(rules, 25, rule.Env{}).Valid)
	assert.Equal(t, "field is required", rule.Evaluate(rules, 0, rule.Env{}).Message)
	out := rule.Evaluate(rules, 16, rule.Env{})
	assert.Equal(t, "must be between 18 and 100", out.Message)
	assert.Equal(t, map[string]any{"min": 18, "max": 100}, out.TranslationValues)

	assert.False(t, rule.Evaluate(rule.Number[float64]().Positive().Rules(), -0.5, rule.Env{}).Valid)
	assert.False(t, rule.Evaluate(rule.Number[uint]().Max(3).Rules(), 4, rule.Env{}).Valid)
	assert.True(t, rule.Evaluate(rule.Number[int]().Min(3).OneOf(3, 5).Rules(), 5, rule.Env{}).Valid)
}

func TestSliceRules(t *testing.T) {
	t.Parallel()
	rules := rule.Slice[string]().Required().MaxItems(2).Each(rule.NotEmpty()).Rules()

	assert.True(t, rule.Evaluate(rules, []string{"a"}, rule.Env{}).Valid)
	assert.Equal(t, "field is required", rule.Evaluate(rules, nil, rule.Env{}).Message)
	assert.Equal(t, "must have at most 2 items", rule.Evaluate(rules, []string{"a", "b", "c"}, rule.Env{}).Message)
	assert.Equal(t, "contains an invalid item: must not be empty", rule.Evaluate(rules, []string{"a", ""}, rule.Env{}).Message)
	assert.False(t, rule.Evaluate(rule.Slice[int]().MinItems(1).Rules(), []int{}, rule.Env{}).Valid)
}

func TestUUIDRules(t *testing.T) {
	t.Parallel()
	rules := rule.List[uuid.UUID]{rule.NonNilUUID()}
	assert.True(t, rule.Evaluate(rules.Rules(), uuid.New(), rule.Env{}).Valid)
	assert.False(t, rule.Evaluate(rules.Rules(), uuid.Nil, rule.Env{}).Valid)
}
