package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hotelbook/internal/client/client"
	"github.com/dmitrijs2005/hotelbook/internal/client/models"
	"github.com/dmitrijs2005/hotelbook/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and signs the new user in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	r := models.Registration{Email: email, Password: string(password), FirstName: firstName, LastName: lastName}
	if err := a.api.Register(ctx, r); err != nil {
		return err
	}

	// the register response carries no id; the cookie it set does
	userID, err := a.api.ValidateToken(ctx)
	if err != nil {
		return err
	}
	a.setSession(userID, email)

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	userID, err := a.api.SignIn(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login unsuccessful: %w", err)
	}
	a.setSession(userID, email)

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// WhoAmI asks the server who the session cookie belongs to. An expired
// session is dropped locally.
func (a *App) WhoAmI(ctx context.Context) error {
	userID, err := a.api.ValidateToken(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.setSession("", "")
			return errors.New("not logged in")
		}
		return err
	}

	fmt.Fprintf(a.out, "user id: %s\n", userID)
	return nil
}

// Logout ends the session on the server and locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.SignOut(ctx); err != nil {
		return err
	}
	a.setSession("", "")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
