package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Reports(ctx context.Context) error
	Alerts(ctx context.Context) error
	OpenCategory(ctx context.Context, args []string) error
	SubmitReport(ctx context.Context) error
	EditReport(ctx context.Context, args []string) error
	DeleteReport(ctx context.Context, args []string) error
	Tips(ctx context.Context) error
	Badge(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the B.R.A.M. CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help           — show available commands
//	  - alerts         — category overview with unread markers
//	  - open <type>    — open one category (acknowledges its reports)
//	  - reports        — list the full feed
//	  - tips           — static safety tips per category
//	  - badge [clear]  — show or clear the new-activity badge
//	  - exit | quit    — leave the program
//
//	Not logged in:
//	  - login          — authenticate
//	  - register       — create an account
//
//	Logged in:
//	  - report         — submit a new disaster report
//	  - edit <id>      — edit one of your reports
//	  - delete <id>    — delete one of your reports
//	  - profile        — show the stored profile
//	  - update         — update profile fields
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bram %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: alerts, open <type>, reports, tips, badge [clear], exit")
			if a.isLoggedIn() {
				printlnFn("Account: report, edit <id>, delete <id>, profile, update, logout")
			} else {
				printlnFn("Account: login, register")
			}
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "update":
			_ = a.UpdateProfile(ctx)
		case "reports":
			_ = a.Reports(ctx)
		case "alerts":
			_ = a.Alerts(ctx)
		case "open":
			_ = a.OpenCategory(ctx, args)
		case "report":
			_ = a.SubmitReport(ctx)
		case "edit":
			_ = a.EditReport(ctx, args)
		case "delete":
			_ = a.DeleteReport(ctx, args)
		case "tips":
			_ = a.Tips(ctx)
		case "badge":
			_ = a.Badge(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
