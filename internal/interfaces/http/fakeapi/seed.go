package fakeapi

import (
	"github.com/onlyfix/admin/internal/domain/car"
	"github.com/onlyfix/admin/internal/domain/problem"
	"github.com/onlyfix/admin/internal/domain/ticket"
	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
	"github.com/onlyfix/admin/internal/domain/user"
)

const (
	// APIVersion is reported by /api/health.
	APIVersion = "1.0.0"

	DemoAdminEmail    = "admin@onlyfix.local"
	DemoAdminPassword = "password"
)

func strPtr(s string) *string { return &s }

// SeedAdmin creates the demo admin account only.
func (s *Store) SeedAdmin() error {
	_, err := s.CreateUser(user.CreateRequest{Name: "Admin", Email: DemoAdminEmail, Password: DemoAdminPassword, Role: "admin"})
	return err
}

// Seed loads a small demo workshop: an admin, two mechanics, customers with
// cars, the problem catalogue and tickets in every status.
func (s *Store) Seed() error {
	if err := s.SeedAdmin(); err != nil {
		return err
	}
	mechanic, err := s.CreateUser(user.CreateRequest{Name: "Mike Mechanic", Email: "mike@onlyfix.local", Password: DemoAdminPassword, Role: "mechanic"})
	if err != nil {
		return err
	}
	if _, err := s.CreateUser(user.CreateRequest{Name: "Maria Mechanic", Email: "maria@onlyfix.local", Password: DemoAdminPassword, Role: "mechanic"}); err != nil {
		return err
	}
	anna, err := s.CreateUser(user.CreateRequest{Name: "Anna Customer", Email: "anna@example.com", Password: DemoAdminPassword, Role: "user"})
	if err != nil {
		return err
	}
	bob, err := s.CreateUser(user.CreateRequest{Name: "Bob Customer", Email: "bob@example.com", Password: DemoAdminPassword, Role: "user"})
	if err != nil {
		return err
	}

	cars := []car.CreateRequest{
		{UserID: anna.ID, Make: "Toyota", Model: "Corolla", Year: 2018, LicensePlate: "ABC-123", VIN: strPtr("JTDBR32E720123456"), Color: strPtr("Silver")},
		{UserID: anna.ID, Make: "Honda", Model: "Civic", Year: 2015, LicensePlate: "HND-915"},
		{UserID: bob.ID, Make: "Ford", Model: "Focus", Year: 2020, LicensePlate: "FRD-020", Color: strPtr("Blue")},
	}
	var carIDs []int
	for _, req := range cars {
		c, err := s.CreateCar(req)
		if err != nil {
			return err
		}
		carIDs = append(carIDs, c.ID)
	}

	var problemIDs []int
	for _, p := range []struct{ name, category string }{
		{"Engine won't start", "engine"},
		{"Gear slipping", "transmission"},
		{"Battery drains overnight", "electrical"},
		{"Squeaking brakes", "brakes"},
		{"Clunk over bumps", "suspension"},
		{"Steering pulls left", "steering"},
		{"Door dent", "body"},
	} {
		created, err := s.CreateProblem(problem.NewCreateRequest(p.name, p.category))
		if err != nil {
			return err
		}
		problemIDs = append(problemIDs, created.ID)
	}

	tickets := []struct {
		req   ticket.CreateRequest
		steps []vo.Action
	}{
		{req: ticket.NewCreateRequest(carIDs[0], "Car does not start in the morning", problemIDs[:1], nil)},
		{req: ticket.NewCreateRequest(carIDs[1], "Brakes squeak when stopping", problemIDs[3:4], []*string{strPtr("front axle")}), steps: []vo.Action{vo.ActionAccept}},
		{req: ticket.NewCreateRequest(carIDs[2], "Battery and steering issues", []int{problemIDs[2], problemIDs[5]}, nil), steps: []vo.Action{vo.ActionAccept, vo.ActionStart}},
		{req: ticket.NewCreateRequest(carIDs[0], "Gearbox slipping in third", problemIDs[1:2], nil), steps: []vo.Action{vo.ActionAccept, vo.ActionStart, vo.ActionComplete}},
		{req: ticket.NewCreateRequest(carIDs[2], "Rear door dent", problemIDs[6:7], nil), steps: []vo.Action{vo.ActionClose}},
	}
	for n, tc := range tickets {
		if n%2 == 0 {
			tc.req.Priority = vo.PriorityHigh
		}
		t, err := s.CreateTicket(tc.req)
		if err != nil {
			return err
		}
		for _, step := range tc.steps {
			if _, err := s.Transition(t.ID, step, mechanic.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
