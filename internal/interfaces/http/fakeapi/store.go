// Package fakeapi is an in-memory stand-in for the repair-shop admin API. It
// serves the same routes and payload shapes and backs the dev-server command
// and the client tests.
package fakeapi

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/onlyfix/admin/internal/domain/car"
	"github.com/onlyfix/admin/internal/domain/problem"
	"github.com/onlyfix/admin/internal/domain/user"
	"github.com/onlyfix/admin/internal/shared/errors"
	"github.com/onlyfix/admin/internal/shared/pagination"
)

var roleIDs = map[string]int{"admin": 1, "mechanic": 2, "user": 3}

type ticketRecord struct {
	ticket.Ticket
	problemIDs []int
	notes      []*string
}

// Store holds the dataset. All methods are safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	users     []user.User
	passwords map[int]string
	cars      []car.Car
	problems  []problem.Problem
	tickets   []ticketRecord
	tokens    map[string]int
	nextID    map[string]int
	perPage   int
	now       func() time.Time
}

type StoreOption func(*Store)

// WithClock fixes the time used for timestamps and "completed today".
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithPerPage overrides the page size (default 15).
func WithPerPage(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.perPage = n
		}
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		passwords: map[int]string{},
		tokens:    map[string]int{},
		nextID:    map[string]int{},
		perPage:   pagination.DefaultPerPage,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) id(collection string) int {
	s.nextID[collection]++
	return s.nextID[collection]
}

func (s *Store) timestamp() *time.Time {
	t := s.now().UTC().Truncate(time.Second)
	return &t
}

func notFound(entity string) *errors.APIError {
	return errors.NewAPIError(http.StatusNotFound, fmt.Sprintf("No query results for model [%s].", entity), nil)
}

func fieldError(field, message string) *errors.APIError {
	return errors.NewValidationError(message, map[string][]string{field: {message}})
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// --- auth ---

// Authenticate checks credentials and issues a new opaque token.
func (s *Store) Authenticate(email, password string) (*user.User, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) && s.passwords[u.ID] == password {
			token := fmt.Sprintf("%d|%s", u.ID, strings.ReplaceAll(uuid.NewString(), "-", ""))
			s.tokens[token] = u.ID
			out := u
			return &out, token, true
		}
	}
	return nil, "", false
}

// IssueToken creates a token for an existing user without a password check.
func (s *Store) IssueToken(userID int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndex(userID) < 0 {
		return "", notFound("User")
	}
	token := fmt.Sprintf("%d|%s", userID, strings.ReplaceAll(uuid.NewString(), "-", ""))
	s.tokens[token] = userID
	return token, nil
}

func (s *Store) ResolveToken(token string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.tokens[token]
	return id, ok
}

func (s *Store) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// --- users ---

func (s *Store) userIndex(id int) int {
	return slices.IndexFunc(s.users, func(u user.User) bool { return u.ID == id })
}

func (s *Store) ListUsers(pageNum int, f user.Filter) pagination.Response[user.User] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []user.User
	for _, u := range s.users {
		if f.Role != "" && !u.HasRole(f.Role) {
			continue
		}
		if f.Search != "" && !containsFold(u.Name, f.Search) && !containsFold(u.Email, f.Search) {
			continue
		}
		out = append(out, u)
	}
	return pagination.Slice(out, pageNum, s.perPage)
}

func (s *Store) GetUser(id int) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.userIndex(id)
	if i < 0 {
		return nil, notFound("User")
	}
	u := s.users[i]
	return &u, nil
}

func (s *Store) CreateUser(req user.CreateRequest) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(req.Email, 0) {
		return nil, fieldError("email", "The email has already been taken.")
	}
	roleID, ok := roleIDs[req.Role]
	if !ok {
		return nil, fieldError("role", "The selected role is invalid.")
	}

	u := user.User{
		ID:        s.id("users"),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: s.timestamp(),
		UpdatedAt: s.timestamp(),
		Roles:     []user.Role{{ID: roleID, Name: req.Role}},
	}
	s.users = append(s.users, u)
	s.passwords[u.ID] = req.Password
	return &u, nil
}

func (s *Store) emailTaken(email string, exceptID int) bool {
	return slices.ContainsFunc(s.users, func(u user.User) bool {
		return u.ID != exceptID && strings.EqualFold(u.Email, email)
	})
}

func (s *Store) UpdateUser(id int, req user.UpdateRequest) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return nil, notFound("User")
	}
	u := s.users[i]
	if req.Email != nil {
		if s.emailTaken(*req.Email, id) {
			return nil, fieldError("email", "The email has already been taken.")
		}
		u.Email = *req.Email
	}
	if req.Role != nil {
		roleID, ok := roleIDs[*req.Role]
		if !ok {
			return nil, fieldError("role", "The selected role is invalid.")
		}
		u.Roles = []user.Role{{ID: roleID, Name: *req.Role}}
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Password != nil {
		s.passwords[id] = *req.Password
	}
	u.UpdatedAt = s.timestamp()
	s.users[i] = u
	return &u, nil
}

func (s *Store) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return notFound("User")
	}
	s.users = slices.Delete(s.users, i, i+1)
	delete(s.passwords, id)
	for token, owner := range s.tokens {
		if owner == id {
			delete(s.tokens, token)
		}
	}
	return nil
}

// --- cars ---

func (s *Store) carIndex(id int) int {
	return slices.IndexFunc(s.cars, func(c car.Car) bool { return c.ID == id })
}

func (s *Store) withOwner(c car.Car) car.Car {
	if i := s.userIndex(c.UserID); i >= 0 {
		owner := s.users[i]
		c.User = &owner
	}
	return c
}

func (s *Store) ListCars(pageNum int, f car.Filter) pagination.Response[car.Car] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []car.Car
	for _, c := range s.cars {
		if f.UserID != nil && c.UserID != *f.UserID {
			continue
		}
		if f.Search != "" && !carMatches(c, f.Search) {
			continue
		}
		out = append(out, s.withOwner(c))
	}
	return pagination.Slice(out, pageNum, s.perPage)
}

func carMatches(c car.Car, search string) bool {
	fields := []string{c.Make, c.Model, c.LicensePlate}
	if c.VIN != nil {
		fields = append(fields, *c.VIN)
	}
	return slices.ContainsFunc(fields, func(f string) bool { return containsFold(f, search) })
}

func (s *Store) GetCar(id int) (*car.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.carIndex(id)
	if i < 0 {
		return nil, notFound("Car")
	}
	c := s.withOwner(s.cars[i])
	return &c, nil
}

func (s *Store) CreateCar(req car.CreateRequest) (*car.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndex(req.UserID) < 0 {
		return nil, fieldError("user_id", "The selected user id is invalid.")
	}
	c := car.Car{
		ID:           s.id("cars"),
		UserID:       req.UserID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		VIN:          req.VIN,
		Color:        req.Color,
		CreatedAt:    s.timestamp(),
		UpdatedAt:    s.timestamp(),
	}
	s.cars = append(s.cars, c)
	return &c, nil
}

func (s *Store) UpdateCar(id int, req car.UpdateRequest) (*car.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.carIndex(id)
	if i < 0 {
		return nil, notFound("Car")
	}
	c := s.cars[i]
	if req.UserID != nil {
		if s.userIndex(*req.UserID) < 0 {
			return nil, fieldError("user_id", "The selected user id is invalid.")
		}
		c.UserID = *req.UserID
	}
	if req.Make != nil {
		c.Make = *req.Make
	}
	if req.Model != nil {
		c.Model = *req.Model
	}
	if req.Year != nil {
		c.Year = *req.Year
	}
	if req.LicensePlate != nil {
		c.LicensePlate = *req.LicensePlate
	}
	if req.VIN != nil {
		c.VIN = req.VIN
	}
	if req.Color != nil {
		c.Color = req.Color
	}
	c.UpdatedAt = s.timestamp()
	s.cars[i] = c
	return &c, nil
}

func (s *Store) DeleteCar(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.carIndex(id)
	if i < 0 {
		return notFound("Car")
	}
	s.cars = slices.Delete(s.cars, i, i+1)
	return nil
}

// --- problems ---

func (s *Store) problemIndex(id int) int {
	return slices.IndexFunc(s.problems, func(p problem.Problem) bool { return p.ID == id })
}

func (s *Store) ListProblems(pageNum int, f problem.Filter) pagination.Response[problem.Problem] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []problem.Problem
	for _, p := range s.problems {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.IsActive != nil && p.IsActive != *f.IsActive {
			continue
		}
		if f.Search != "" && !containsFold(p.Name, f.Search) &&
			(p.Description == nil || !containsFold(*p.Description, f.Search)) {
			continue
		}
		out = append(out, p)
	}
	return pagination.Slice(out, pageNum, s.perPage)
}

func (s *Store) GetProblem(id int) (*problem.Problem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.problemIndex(id)
	if i < 0 {
		return nil, notFound("Problem")
	}
	p := s.problems[i]
	return &p, nil
}

func (s *Store) CreateProblem(req problem.CreateRequest) (*problem.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := problem.Problem{
		ID:          s.id("problems"),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		IsActive:    req.IsActive,
		CreatedAt:   s.timestamp(),
		UpdatedAt:   s.timestamp(),
	}
	s.problems = append(s.problems, p)
	return &p, nil
}

func (s *Store) UpdateProblem(id int, req problem.UpdateRequest) (*problem.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.problemIndex(id)
	if i < 0 {
		return nil, notFound("Problem")
	}
	p := s.problems[i]
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.UpdatedAt = s.timestamp()
	s.problems[i] = p
	return &p, nil
}

func (s *Store) DeleteProblem(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.problemIndex(id)
	if i < 0 {
		return notFound("Problem")
	}
	s.problems = slices.Delete(s.problems, i, i+1)
	return nil
}

// ProblemStatistics ranks problems by how many tickets reference them.
func (s *Store) ProblemStatistics() problem.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := problem.Statistics{TotalProblems: len(s.problems), ProblemsByFrequency: []problem.Frequency{}}
	for _, p := range s.problems {
		if p.IsActive {
			stats.ActiveProblems++
		}
		count := 0
		for _, t := range s.tickets {
			if slices.Contains(t.problemIDs, p.ID) {
				count++
			}
		}
		stats.ProblemsByFrequency = append(stats.ProblemsByFrequency, problem.Frequency{
			ID: p.ID, Name: p.Name, Category: p.Category, TicketsCount: count,
		})
	}
	slices.SortStableFunc(stats.ProblemsByFrequency, func(a, b problem.Frequency) int {
		return b.TicketsCount - a.TicketsCount
	})
	if len(stats.ProblemsByFrequency) > 10 {
		stats.ProblemsByFrequency = stats.ProblemsByFrequency[:10]
	}
	return stats
}
