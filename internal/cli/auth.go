package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mxradar/mxradar/internal/apierr"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// showError prints the human-readable message of a classified API error, or
// a generic line for anything else. Raw transport details never reach the
// user.
func showError(err error) {
	var classified *apierr.Error
	if errors.As(err, &classified) {
		printlnFn(classified.Message)
		return
	}
	printlnFn("Something went wrong:", err.Error())
}

// Login prompts for credentials and signs in. On success the session is
// persisted by the API client, so the user stays signed in across restarts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	profile, err := a.auth.Login(ctx, email, password)
	if err != nil {
		showError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Signed in as %s", profile.Email))
	return nil
}

// Register prompts for the account fields and creates a new account. The
// backend mails a verification token; the account activates via 'verify'.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	company, err := getSimpleText(a.reader, "Enter company (optional)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.auth.Register(ctx, email, password, name, company); err != nil {
		showError(err)
		return err
	}

	printlnFn("Account created. Check your mailbox for the verification token, then run: verify <token>")
	return nil
}

// VerifyEmail confirms a registration using the mailed token.
func (a *App) VerifyEmail(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: verify <token>")
		return nil
	}

	if _, err := a.auth.VerifyEmail(ctx, args[0]); err != nil {
		showError(err)
		return err
	}

	printlnFn("E-mail verified. You can sign in now.")
	return nil
}

// ResetPassword drives both halves of the reset flow: with one argument it
// requests a reset mail for that address, with two it confirms the reset
// using a mailed token and the new password.
func (a *App) ResetPassword(ctx context.Context, args []string) error {
	switch len(args) {
	case 1:
		if _, err := a.auth.RequestPasswordReset(ctx, args[0]); err != nil {
			showError(err)
			return err
		}
		printlnFn("If that address has an account, a reset token is on its way.")
		return nil
	case 2:
		if _, err := a.auth.ConfirmPasswordReset(ctx, args[0], args[1]); err != nil {
			showError(err)
			return err
		}
		printlnFn("Password changed. Sign in with the new password.")
		return nil
	default:
		printlnFn("Usage: reset <email>  |  reset <token> <newpassword>")
		return nil
	}
}

// Logout clears the locally stored session. Idempotent and local only.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		showError(err)
		return err
	}
	printlnFn("Signed out.")
	return nil
}

// Whoami prints the stored profile. No network round-trip: the profile is
// part of the persisted session.
func (a *App) Whoami(_ context.Context) error {
	p := a.auth.Profile()
	if p == nil {
		printlnFn("Not signed in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s>", p.Name, p.Email))
	if p.Company != "" {
		printlnFn("Company:", p.Company)
	}
	if p.Plan != "" {
		printlnFn("Plan:", p.Plan)
	}
	if exp, ok := a.auth.TokenExpiry(); ok {
		printlnFn("Token expires:", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// EditProfile prompts for the editable fields (empty keeps the current
// value) and pushes the change to the backend.
func (a *App) EditProfile(ctx context.Context) error {
	current := a.auth.Profile()
	if current == nil {
		printlnFn("Not signed in.")
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", current.Name), os.Stdout)
	if err != nil {
		return err
	}
	company, err := getSimpleText(a.reader, fmt.Sprintf("Company [%s]", current.Company), os.Stdout)
	if err != nil {
		return err
	}

	edited := *current
	if name != "" {
		edited.Name = name
	}
	if company != "" {
		edited.Company = company
	}
	if edited == *current {
		printlnFn("Nothing to change.")
		return nil
	}

	updated, err := a.auth.UpdateProfile(ctx, edited)
	if err != nil {
		showError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Profile updated: %s <%s>", updated.Name, updated.Email))
	return nil
}
