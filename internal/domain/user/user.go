package user

import (
	"net/url"
	"strings"
	"time"

	"github.com/onlyfix/admin/internal/shared/query"
)

type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Roles     []Role     `json:"roles"`
}

func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// RoleDisplay joins the role names, or "No role".
func (u *User) RoleDisplay() string {
	if len(u.Roles) == 0 {
		return "No role"
	}
	return strings.Join(u.RoleNames(), ", ")
}

func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// Filter narrows the user list. Empty values are not sent.
type Filter struct {
	Role   string
	Search string
}

func (f Filter) Values(page int) url.Values {
	return query.NewBuilder(page).
		String("role", f.Role).
		String("search", f.Search).
		Values()
}
