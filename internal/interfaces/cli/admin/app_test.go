package admin

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlyfix/admin/internal/interfaces/http/fakeapi"
	"github.com/onlyfix/admin/internal/shared/errors"
	"github.com/onlyfix/admin/internal/shared/logger"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// newTestAPI points the CLI at a seeded in-memory API and a throwaway
// session file.
func newTestAPI(t *testing.T) *fakeapi.Store {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := fakeapi.NewStore()
	require.NoError(t, store.Seed())
	srv := httptest.NewServer(fakeapi.NewRouter(store, logger.NewNop()))
	t.Cleanup(srv.Close)

	t.Chdir(t.TempDir())
	t.Setenv("ONLYFIX_API_BASE_URL", srv.URL)
	t.Setenv("ONLYFIX_CREDENTIALS_PATH", filepath.Join(t.TempDir(), "session.yaml"))
	t.Setenv("ONLYFIX_LOGGER_LEVEL", "error")
	return store
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func login(t *testing.T) {
	t.Helper()
	res := run(t, "", "login", "--email", fakeapi.DemoAdminEmail, "--password", fakeapi.DemoAdminPassword)
	require.NoError(t, res.err, res.stderr)
	require.Contains(t, res.stdout, "Logged in as Admin")
}

func TestSessionLifecycle(t *testing.T) {
	newTestAPI(t)

	res := run(t, "", "whoami")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Not logged in.")

	login(t)

	res = run(t, "", "whoami")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, fakeapi.DemoAdminEmail)
	assert.Contains(t, res.stdout, "admin")

	res = run(t, "", "logout")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Logged out.")

	res = run(t, "", "whoami")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Not logged in.")
}

func TestLogin_PromptsForMissingEmail(t *testing.T) {
	newTestAPI(t)

	res := run(t, fakeapi.DemoAdminEmail+"\n", "login", "--password", fakeapi.DemoAdminPassword)

	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Email: ")
	assert.Contains(t, res.stdout, "Logged in as Admin")
}

func TestLogin_BadCredentials(t *testing.T) {
	newTestAPI(t)

	res := run(t, "", "login", "--email", fakeapi.DemoAdminEmail, "--password", "wrong-password")

	require.Error(t, res.err)
	assert.True(t, IsReported(res.err))
	assert.True(t, errors.IsUnauthorized(res.err))
	assert.Contains(t, res.stderr, "Invalid credentials.")
	assert.NotContains(t, res.stderr, "Session expired")
}

func TestMemorySession_NotShared(t *testing.T) {
	newTestAPI(t)
	t.Setenv("ONLYFIX_CREDENTIALS_PATH", "memory")

	login(t)

	res := run(t, "", "whoami")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Not logged in.")
}

func TestList_WithoutSessionGoesToLogin(t *testing.T) {
	newTestAPI(t)

	res := run(t, "", "tickets", "list")

	require.Error(t, res.err)
	assert.True(t, IsReported(res.err))
	assert.Contains(t, res.stderr, "Session expired")
	assert.NotContains(t, res.stderr, "Error:")
}

func TestHealth(t *testing.T) {
	newTestAPI(t)

	res := run(t, "", "health")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "OK")
}

func TestTicketsList(t *testing.T) {
	newTestAPI(t)
	login(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "all tickets",
			args:     []string{"tickets", "list"},
			contains: []string{"Open", "Assigned", "In Progress", "Completed", "Closed", "Page 1 of 1, 5 total"},
		},
		{
			name:     "by status",
			args:     []string{"tickets", "list", "--status", "open"},
			contains: []string{"Anna Customer", "Unassigned", "accept close", "Page 1 of 1, 1 total"},
		},
		{
			name:     "by priority",
			args:     []string{"tickets", "list", "--priority", "urgent"},
			contains: []string{"No tickets found."},
		},
		{
			name:     "by car",
			args:     []string{"tickets", "list", "--car-id", "3"},
			contains: []string{"2020 Ford Focus", "Page 1 of 1, 2 total"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			require.NoError(t, res.err, res.stderr)
			for _, want := range tt.contains {
				assert.Contains(t, res.stdout, want)
			}
		})
	}
}

func TestTicketsList_InvalidStatusRejectedLocally(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "tickets", "list", "--status", "broken")

	require.Error(t, res.err)
	assert.False(t, IsReported(res.err))
	assert.Contains(t, res.err.Error(), "invalid ticket status: broken")
}

func TestTicketWorkflow(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "tickets", "accept", "1")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Ticket #1: Open -> Assigned")

	res = run(t, "", "tickets", "start", "1")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Ticket #1: Assigned -> In Progress")

	res = run(t, "", "tickets", "complete", "1")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Ticket #1: In Progress -> Completed")

	res = run(t, "", "tickets", "get", "1")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Admin")
	assert.Contains(t, res.stdout, "Engine won't start")
}

func TestTicketWorkflow_ServerRejects(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "tickets", "accept", "2")

	require.Error(t, res.err)
	assert.True(t, IsReported(res.err))
	assert.True(t, errors.IsValidationError(res.err))
	assert.Contains(t, res.stderr, "Ticket cannot be accepted while assigned.")
}

func TestTicketClose_Confirmation(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "n\n", "tickets", "close", "1")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Are you sure you want to close ticket #1?")
	assert.Contains(t, res.stdout, "Cancelled.")

	res = run(t, "y\n", "tickets", "close", "1")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Ticket #1: Open -> Closed")

	res = run(t, "", "--yes", "tickets", "close", "2")
	require.NoError(t, res.err, res.stderr)
	assert.NotContains(t, res.stdout, "Are you sure")
	assert.Contains(t, res.stdout, "Ticket #2: Assigned -> Closed")
}

func TestTicketsCreateWithNotes(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "tickets", "create",
		"--car-id", "2",
		"--description", "Rattle from the rear",
		"--priority", "high",
		"--problems", "4,5",
		"--notes", "rear left,",
	)

	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Created ticket #6.")
	assert.Contains(t, res.stdout, "rear left")
	assert.Contains(t, res.stdout, "Clunk over bumps")
	assert.Contains(t, res.stdout, "High")
}

func TestTicketsCreate_NoProblemsIsValidationError(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "tickets", "create", "--car-id", "2", "--description", "Noise")

	require.Error(t, res.err)
	assert.True(t, errors.IsValidationError(res.err))
	assert.Contains(t, res.stderr, "problem ids")
}

func TestUsersCRUD(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "users", "create", "--name", "Nora New", "--email", "nora@example.com", "--password", "longenough")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Created user #6.")
	assert.Contains(t, res.stdout, "user")

	res = run(t, "", "users", "update", "6", "--name", "Nora Renamed")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Updated user #6.")

	res = run(t, "", "users", "list", "--search", "Renamed")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Nora Renamed")
	assert.Contains(t, res.stdout, "Page 1 of 1, 1 total")

	res = run(t, "", "users", "update", "6")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "nothing to update")

	res = run(t, "", "--yes", "users", "delete", "6")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Deleted user #6.")

	res = run(t, "", "users", "get", "6")
	require.Error(t, res.err)
	assert.True(t, errors.IsNotFound(res.err))
	assert.Contains(t, res.stderr, "No query results for model [User].")
}

func TestUsersCreate_ValidatedBeforeSending(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "users", "create", "--name", "   ", "--email", "x@example.com", "--password", "short")

	require.Error(t, res.err)
	assert.True(t, IsReported(res.err))
	assert.True(t, errors.IsValidationError(res.err))
	assert.Contains(t, res.stderr, "The name field is required.")
}

func TestCreate_ServerDecidesFormatRules(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "users", "create", "--name", "Otto", "--email", "otto@shop", "--password", "short")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Created user #6.")

	res = run(t, "", "cars", "create", "--user-id", "6", "--make", "VW", "--model", "Beetle",
		"--year", "1968", "--plate", "B-1968", "--vin", "118123456")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "1968 VW Beetle")
	assert.Contains(t, res.stdout, "118123456")
}

func TestUsersList_InvalidRole(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "users", "list", "--role", "pilot")

	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), `invalid role "pilot"`)
}

func TestCarsListAndDelete(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "cars", "list", "--user-id", "4")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "2018 Toyota Corolla")
	assert.Contains(t, res.stdout, "2015 Honda Civic")
	assert.Contains(t, res.stdout, "Page 1 of 1, 2 total")

	res = run(t, "no\n", "cars", "delete", "2")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Are you sure you want to delete car #2?")
	assert.Contains(t, res.stdout, "Cancelled.")

	res = run(t, "", "cars", "get", "2")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "HND-915")
}

func TestProblems(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "problems", "create", "--name", "Worn tyres", "--category", "other", "--inactive")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Created problem #8.")
	assert.Contains(t, res.stdout, "Inactive")

	res = run(t, "", "problems", "list", "--active=false")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Worn tyres")
	assert.Contains(t, res.stdout, "Page 1 of 1, 1 total")

	res = run(t, "", "problems", "stats")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Inactive")
	assert.Contains(t, res.stdout, "Tickets")
}

func TestTicketsStats(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "tickets", "stats")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Completed today")
	assert.Contains(t, res.stdout, "In Progress")
	assert.Contains(t, res.stdout, "Urgent")
}

func TestInvalidID(t *testing.T) {
	newTestAPI(t)
	login(t)

	res := run(t, "", "tickets", "get", "abc")

	require.Error(t, res.err)
	assert.False(t, IsReported(res.err))
	assert.Contains(t, res.err.Error(), `invalid id "abc"`)
}

func TestVersion(t *testing.T) {
	newTestAPI(t)

	res := run(t, "", "version")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "onlyfix-admin dev")
	assert.Contains(t, res.stdout, "API v"+fakeapi.APIVersion)
	assert.NotContains(t, res.stdout, "consider upgrading")
}
