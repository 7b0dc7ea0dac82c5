package admin

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/onlyfix/admin/internal/application/common/listing"
)

// TerminalHost shows dialogs on the terminal. With assumeYes every
// confirmation is accepted without prompting.
type TerminalHost struct {
	in        *bufio.Reader
	out       io.Writer
	errOut    io.Writer
	assumeYes bool
}

func NewTerminalHost(in io.Reader, out, errOut io.Writer, assumeYes bool) *TerminalHost {
	return &TerminalHost{
		in:        bufio.NewReader(in),
		out:       out,
		errOut:    errOut,
		assumeYes: assumeYes,
	}
}

func (h *TerminalHost) GoTo(route listing.Route) {
	if route == listing.RouteLogin {
		fmt.Fprintln(h.errOut, theme.warning.Render("Session expired. Run `onlyfix-admin login` to sign in again."))
		return
	}
	fmt.Fprintf(h.errOut, "-> %s\n", route)
}

func (h *TerminalHost) Confirm(title, message string) bool {
	if h.assumeYes {
		return true
	}
	fmt.Fprintf(h.out, "%s\n%s [y/N] ", theme.title.Render(title), message)
	answer, err := h.in.ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(h.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func (h *TerminalHost) Alert(title, message string) {
	fmt.Fprintf(h.errOut, "%s %s\n", theme.danger.Render(title+":"), message)
}

// readLine prompts for one line of input.
func (h *TerminalHost) readLine(prompt string) (string, error) {
	fmt.Fprint(h.out, prompt)
	line, err := h.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
