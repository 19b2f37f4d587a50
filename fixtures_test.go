package vtree_test

import (
	"slices"

	"github.com/dmitrymomot/vtree"
	"github.com/dmitrymomot/vtree/pkg/rule"
)

type Profile struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type User struct {
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Profile  Profile `json:"profile"`
}

var allowedEmails = []string{"example@mail.com"}

func newProfileTree(opts ...vtree.Option) *vtree.Tree[Profile] {
	return vtree.MustNew(vtree.Config[Profile]{
		Items: []vtree.Item[Profile]{
			vtree.Field("age", func(p *Profile) *int { return &p.Age },
				rule.Number[int]().
					Must(func(age int, _ rule.Env) bool { return age >= 18 }, "too young").
					Must(func(age int, _ rule.Env) bool { return age <= 100 }, "too old")),
		},
	}, opts...)
}

func newUserTree(opts ...vtree.Option) *vtree.Tree[User] {
	return vtree.MustNew(vtree.Config[User]{
		Items: []vtree.Item[User]{
			vtree.Field("email", func(u *User) *string { return &u.Email },
				rule.String().Required().Email().
					Must(func(v string, _ rule.Env) bool { return slices.Contains(allowedEmails, v) }, "unexpected email")),
			vtree.Field("username", func(u *User) *string { return &u.Username },
				rule.String().NotEmpty().Alphanumeric()),
		},
		Nested: []vtree.Child[User]{
			vtree.Nest("profile", func(u *User) *Profile { return &u.Profile }, newProfileTree()),
		},
	}, opts...)
}

func validUser() *User {
	return &User{
		Email:    "example@mail.com",
		Username: "testuser",
		Profile:  Profile{Name: "test", Age: 25},
	}
}
