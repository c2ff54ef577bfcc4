package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/roommate-finder/internal/facades"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/spf13/cobra"
)

// profileFlags binds the editable profile fields. Optional fields are only
// taken from flags that were given; an empty value clears the field.
type profileFlags struct {
	email       string
	fullName    string
	age         int
	gender      string
	profileURL  string
	phoneNumber string
	bio         string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.email, "email", "", "Email address")
	cmd.Flags().StringVar(&f.fullName, "full-name", "", "Full name")
	cmd.Flags().IntVar(&f.age, "age", 0, "Age, 18 to 100")
	cmd.Flags().StringVar(&f.gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&f.profileURL, "profile-url", "", "Avatar URL")
	cmd.Flags().StringVar(&f.phoneNumber, "phone", "", "Phone number")
	cmd.Flags().StringVar(&f.bio, "bio", "", "Short bio")
}

// apply overwrites the fields of p whose flags were given.
func (f *profileFlags) apply(cmd *cobra.Command, p *models.UserProfile) {
	changed := cmd.Flags().Changed
	if changed("email") {
		p.Email = f.email
	}
	if changed("full-name") {
		p.FullName = f.fullName
	}
	if changed("age") {
		p.Age = f.age
	}
	if changed("gender") {
		p.Gender = f.gender
	}
	if changed("profile-url") {
		p.ProfileURL = optional(f.profileURL)
	}
	if changed("phone") {
		p.PhoneNumber = optional(f.phoneNumber)
	}
	if changed("bio") {
		p.Bio = optional(f.bio)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func profileOf(u *models.User) models.UserProfile {
	return models.UserProfile{
		Email:       u.Email,
		FullName:    u.FullName,
		Age:         u.Age,
		Gender:      u.Gender,
		ProfileURL:  u.ProfileURL,
		PhoneNumber: u.PhoneNumber,
		Bio:         u.Bio,
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	var (
		password string
		flags    profileFlags
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var profile models.UserProfile
			flags.apply(cmd, &profile)

			user, err := a.api.Register(cmd.Context(), password, profile)
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			if err := a.session.Set(user.Summary()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered and signed in as %s <%s>\n", user.FullName, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Password")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.api.Login(cmd.Context(), email, password)
			var apiErr *facades.APIError
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
				return errors.New("invalid email or password")
			}
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := a.session.Set(user); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", user.FullName, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := a.session.Current()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> %s\n", user.FullName, user.Email, user.UserID)
			return nil
		},
	}
}

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the signed-in user's profile",
	}
	cmd.AddCommand(newProfileShowCmd(a), newProfileUpdateCmd(a))
	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the full profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.currentUser()
			if err != nil {
				return err
			}
			user, err := a.api.GetUser(cmd.Context(), current.UserID)
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			return printUser(cmd.OutOrStdout(), user)
		},
	}
}

// newProfileUpdateCmd loads the stored profile, overlays the given flags
// and sends the result as a full replacement.
func newProfileUpdateCmd(a *app) *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.currentUser()
			if err != nil {
				return err
			}

			user, err := a.api.GetUser(cmd.Context(), current.UserID)
			if facades.IsNotFound(err) {
				_ = a.session.Clear()
				return errors.New("signed-in user no longer exists, session cleared")
			}
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}

			profile := profileOf(user)
			flags.apply(cmd, &profile)

			updated, err := a.api.UpdateUser(cmd.Context(), user.UserID, profile)
			if err != nil {
				return fmt.Errorf("profile update failed: %w", err)
			}
			if err := a.session.Set(updated.Summary()); err != nil {
				return err
			}

			return printUser(cmd.OutOrStdout(), updated)
		},
	}

	flags.register(cmd)

	return cmd
}
