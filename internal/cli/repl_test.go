package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeExec records which REPL commands were dispatched.
type fakeExec struct {
	loggedIn bool
	calls    []string
	args     map[string][]string
}

func newFakeExec(loggedIn bool) *fakeExec {
	return &fakeExec{loggedIn: loggedIn, args: make(map[string][]string)}
}

func (f *fakeExec) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login")
	return nil
}

func (f *fakeExec) Register(ctx context.Context) error {
	f.record("register")
	return nil
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout")
	return nil
}

func (f *fakeExec) Profile(ctx context.Context) error {
	f.record("profile")
	return nil
}

func (f *fakeExec) UpdateProfile(ctx context.Context) error {
	f.record("update")
	return nil
}

func (f *fakeExec) Reports(ctx context.Context) error {
	f.record("reports")
	return nil
}

func (f *fakeExec) Alerts(ctx context.Context) error {
	f.record("alerts")
	return nil
}

func (f *fakeExec) OpenCategory(ctx context.Context, args []string) error {
	f.record("open")
	f.args["open"] = args
	return nil
}

func (f *fakeExec) SubmitReport(ctx context.Context) error {
	f.record("report")
	return nil
}

func (f *fakeExec) EditReport(ctx context.Context, args []string) error {
	f.record("edit")
	f.args["edit"] = args
	return nil
}

func (f *fakeExec) DeleteReport(ctx context.Context, args []string) error {
	f.record("delete")
	f.args["delete"] = args
	return nil
}

func (f *fakeExec) Tips(ctx context.Context) error {
	f.record("tips")
	return nil
}

func (f *fakeExec) Badge(ctx context.Context, args []string) error {
	f.record("badge")
	f.args["badge"] = args
	return nil
}

func runScript(t *testing.T, exec *fakeExec, script string) []string {
	t.Helper()

	orig := printlnFn
	defer func() { printlnFn = orig }()

	var printed []string
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "" }, scanner)
	return printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := newFakeExec(true)

	runScript(t, exec, strings.Join([]string{
		"alerts",
		"open Flood",
		"reports",
		"report",
		"edit 42",
		"delete 42",
		"tips",
		"badge clear",
		"profile",
		"update",
		"logout",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"alerts", "open", "reports", "report", "edit",
		"delete", "tips", "badge", "profile", "update", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"Flood"}, exec.args["open"])
	assert.Equal(t, []string{"42"}, exec.args["edit"])
	assert.Equal(t, []string{"42"}, exec.args["delete"])
	assert.Equal(t, []string{"clear"}, exec.args["badge"])
}

func TestRunREPL_LoginAndRegister(t *testing.T) {
	exec := newFakeExec(false)

	runScript(t, exec, "login\nregister\nquit\n")

	assert.Equal(t, []string{"login", "register"}, exec.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	exec := newFakeExec(false)

	printed := runScript(t, exec, "frobnicate\nexit\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, printed, "Unknown command: frobnicate")
}

func TestRunREPL_EmptyLinesIgnored(t *testing.T) {
	exec := newFakeExec(false)

	runScript(t, exec, "\n   \nalerts\nexit\n")

	assert.Equal(t, []string{"alerts"}, exec.calls)
}

func TestRunREPL_HelpVariesWithLoginState(t *testing.T) {
	loggedOut := runScript(t, newFakeExec(false), "help\nexit\n")
	joinedOut := strings.Join(loggedOut, "\n")
	assert.Contains(t, joinedOut, "login, register")
	assert.NotContains(t, joinedOut, "report, edit")

	loggedIn := runScript(t, newFakeExec(true), "help\nexit\n")
	joinedIn := strings.Join(loggedIn, "\n")
	assert.Contains(t, joinedIn, "report, edit")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	exec := newFakeExec(false)

	runScript(t, exec, "alerts\n")

	assert.Equal(t, []string{"alerts"}, exec.calls)
}
