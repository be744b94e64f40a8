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
	VerifyEmail(ctx context.Context, args []string) error
	ResetPassword(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Dns(ctx context.Context, args []string) error
	Propagation(ctx context.Context, args []string) error
	Smtp(ctx context.Context, args []string) error
	Ssl(ctx context.Context, args []string) error
	Blacklist(ctx context.Context, args []string) error
	Keys(ctx context.Context) error
	NewKey(ctx context.Context, args []string) error
	RevokeKey(ctx context.Context, args []string) error
	KeyUsage(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the mxradar CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the rest as arguments, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help                      — show available commands
//	  - dns <domain> [type]       — DNS record lookup
//	  - prop <domain> [type]      — DNS propagation check
//	  - smtp <domain>             — mail server diagnostics
//	  - ssl <host>                — certificate diagnostics
//	  - bl <ip|domain>            — blacklist check
//	  - exit | quit               — leave the program
//
//	Not logged in:
//	  - login                     — authenticate
//	  - register                  — create an account
//	  - verify <token>            — confirm e-mail address
//	  - reset <email> | reset <token> <newpassword>
//
//	Logged in:
//	  - whoami                    — show the signed-in profile
//	  - profile                   — edit the profile
//	  - keys                      — list API keys
//	  - newkey <name>             — issue an API key
//	  - revoke <id>               — revoke an API key
//	  - usage [id]                — usage counters (all keys when no id)
//	  - logout                    — sign out
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mx> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Always: dns <domain> [type], prop <domain> [type], smtp <domain>, ssl <host>, bl <ip|domain>, exit")
			if a.isLoggedIn() {
				printlnFn("Account: whoami, profile, keys, newkey <name>, revoke <id>, usage [id], logout")
			} else {
				printlnFn("Account: login, register, verify <token>, reset <email> | reset <token> <newpassword>")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "verify":
			_ = a.VerifyEmail(ctx, args)

		case "reset":
			_ = a.ResetPassword(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.EditProfile(ctx)

		case "dns":
			_ = a.Dns(ctx, args)

		case "prop":
			_ = a.Propagation(ctx, args)

		case "smtp":
			_ = a.Smtp(ctx, args)

		case "ssl":
			_ = a.Ssl(ctx, args)

		case "bl", "blacklist":
			_ = a.Blacklist(ctx, args)

		case "keys":
			_ = a.Keys(ctx)

		case "newkey":
			_ = a.NewKey(ctx, args)

		case "revoke":
			_ = a.RevokeKey(ctx, args)

		case "usage":
			_ = a.KeyUsage(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
