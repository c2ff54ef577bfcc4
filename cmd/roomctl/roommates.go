package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/roommate-finder/internal/filters"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/poller"
	"github.com/spf13/cobra"
)

type roommateFilterFlags struct {
	ageMin int
	ageMax int
	gender string
	sortBy string
}

func (f *roommateFilterFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.ageMin, "age-min", 0, "Minimum age")
	cmd.Flags().IntVar(&f.ageMax, "age-max", 0, "Maximum age")
	cmd.Flags().StringVar(&f.gender, "gender", "", "Gender, or any")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "Order: newest or oldest")
}

func (f *roommateFilterFlags) filter(cmd *cobra.Command) filters.RoommateFilter {
	rf := filters.RoommateFilter{
		Gender: f.gender,
		SortBy: filters.SortKey(f.sortBy),
	}
	if cmd.Flags().Changed("age-min") {
		v := f.ageMin
		rf.AgeMin = &v
	}
	if cmd.Flags().Changed("age-max") {
		v := f.ageMax
		rf.AgeMax = &v
	}
	return rf
}

func newRoommatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roommates",
		Short: "Browse roommate profiles",
	}
	cmd.AddCommand(newRoommatesListCmd(a), newRoommatesWatchCmd(a))
	return cmd
}

func newRoommatesListCmd(a *app) *cobra.Command {
	var (
		limit int
		flags roommateFilterFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List roommates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.api.ListUsers(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list roommates: %w", err)
			}

			view := filters.NewRoommateView()
			view.SetItems(users)
			return printRoommates(cmd.OutOrStdout(), view.Apply(flags.filter(cmd)))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultListLimit, "Maximum number of profiles to fetch")
	flags.register(cmd)

	return cmd
}

func newRoommatesWatchCmd(a *app) *cobra.Command {
	var (
		limit    int
		interval time.Duration
		flags    roommateFilterFlags
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "List roommates and refresh them periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := flags.filter(cmd)
			view := filters.NewRoommateView()
			out := cmd.OutOrStdout()

			fetch := func(ctx context.Context) ([]models.User, error) {
				return a.api.ListUsers(ctx, limit)
			}
			p := poller.New(fetch, interval, func(res poller.Result[[]models.User]) {
				if res.Err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "refresh failed, showing last result: %v\n", res.Err)
					return
				}
				view.SetItems(res.Value)
				users := view.Apply(filter)
				fmt.Fprintf(out, "\n[%s] %d of %d roommates\n", time.Now().Format(time.TimeOnly), len(users), len(res.Value))
				_ = printRoommates(out, users)
			})

			return watch(cmd.Context(), p.Run)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultListLimit, "Maximum number of profiles to fetch")
	cmd.Flags().DurationVar(&interval, "interval", poller.DefaultInterval, "Refresh interval")
	flags.register(cmd)

	return cmd
}
