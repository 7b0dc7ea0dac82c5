package car

import (
	"fmt"
	"net/url"
	"time"

	"github.com/onlyfix/admin/internal/domain/user"
	"github.com/onlyfix/admin/internal/shared/query"
)

type Car struct {
	ID           int        `json:"id"`
	UserID       int        `json:"user_id"`
	Make         string     `json:"make"`
	Model        string     `json:"model"`
	Year         int        `json:"year"`
	LicensePlate string     `json:"license_plate"`
	VIN          *string    `json:"vin"`
	Color        *string    `json:"color"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	User         *user.User `json:"user,omitempty"`
}

// DisplayName renders "{year} {make} {model}".
func (c *Car) DisplayName() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.Make, c.Model)
}

func (c *Car) OwnerDisplay() string {
	if c.User != nil {
		return c.User.Name
	}
	return fmt.Sprintf("User #%d", c.UserID)
}

// Filter narrows the car list. Search matches make, model and plate server-side.
type Filter struct {
	UserID *int
	Search string
}

func (f Filter) Values(page int) url.Values {
	return query.NewBuilder(page).
		IntPtr("user_id", f.UserID).
		String("search", f.Search).
		Values()
}
