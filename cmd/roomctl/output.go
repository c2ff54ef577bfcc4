package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sbilibin2017/roommate-finder/internal/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printRooms(w io.Writer, rooms []models.RoomView) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tRENT\tLOCATION\tROOMMATES")
	for _, r := range rooms {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			r.RoomID, r.Title, orDash(r.RoomType), rent(r.RentAmount, r.Currency), locationLabel(r.Location), len(r.Roommates))
	}
	return tw.Flush()
}

func printRoom(w io.Writer, r *models.RoomView) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", r.RoomID)
	fmt.Fprintf(tw, "Title:\t%s\n", r.Title)
	fmt.Fprintf(tw, "Type:\t%s\n", orDash(r.RoomType))
	fmt.Fprintf(tw, "Rent:\t%s\n", rent(r.RentAmount, r.Currency))
	if r.DepositAmount != nil {
		fmt.Fprintf(tw, "Deposit:\t%s\n", rent(*r.DepositAmount, r.Currency))
	}
	if r.AvailableFrom != nil {
		fmt.Fprintf(tw, "Available from:\t%s\n", r.AvailableFrom.Format("2006-01-02"))
	}
	fmt.Fprintf(tw, "Location:\t%s\n", locationLabel(r.Location))
	fmt.Fprintf(tw, "Furnished:\t%s\n", yesNo(r.IsFurnished))
	fmt.Fprintf(tw, "Private bathroom:\t%s\n", yesNo(r.IsPrivateBathroom))
	fmt.Fprintf(tw, "Amenities:\t%s\n", orDash(strings.Join(r.Amenities, ", ")))
	if r.Description != nil && *r.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", *r.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Photos) > 0 {
		fmt.Fprintln(w, "\nPhotos:")
		for _, p := range r.Photos {
			caption := ""
			if p.Caption != nil {
				caption = " " + *p.Caption
			}
			fmt.Fprintf(w, "  %d. %s%s\n", p.DisplayOrder, p.PhotoURL, caption)
		}
	}

	fmt.Fprintln(w, "\nRoommates:")
	if len(r.Roommates) == 0 {
		fmt.Fprintln(w, "  none")
		return nil
	}
	for _, m := range r.Roommates {
		fmt.Fprintf(w, "  %s <%s>\n", m.Name, m.Email)
	}
	return nil
}

func printRoommates(w io.Writer, users []models.User) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tAGE\tGENDER\tPHONE\tEMAIL")
	for _, u := range users {
		phone := "N/A"
		if u.PhoneNumber != nil && *u.PhoneNumber != "" {
			phone = *u.PhoneNumber
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n", u.UserID, u.FullName, u.Age, u.Gender, phone, u.Email)
	}
	return tw.Flush()
}

func printUser(w io.Writer, u *models.User) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", u.UserID)
	fmt.Fprintf(tw, "Name:\t%s\n", u.FullName)
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Age:\t%d\n", u.Age)
	fmt.Fprintf(tw, "Gender:\t%s\n", u.Gender)
	fmt.Fprintf(tw, "Phone:\t%s\n", orDash(deref(u.PhoneNumber)))
	fmt.Fprintf(tw, "Profile URL:\t%s\n", orDash(deref(u.ProfileURL)))
	fmt.Fprintf(tw, "Bio:\t%s\n", orDash(deref(u.Bio)))
	return tw.Flush()
}

func locationLabel(l models.RoomLocation) string {
	var parts []string
	for _, p := range []*string{l.City, l.State, l.Country} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return orDash(strings.Join(parts, ", "))
}

func rent(amount float64, currency string) string {
	return strings.TrimSpace(fmt.Sprintf("%.2f %s", amount, currency))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
