package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/facades"
	"github.com/sbilibin2017/roommate-finder/internal/filters"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/poller"
	"github.com/spf13/cobra"
)

const defaultListLimit = 100

// roomFilterFlags binds the room filter to command flags. Bounds are only
// applied when their flag was given.
type roomFilterFlags struct {
	priceMin float64
	priceMax float64
	roomType string
	location string
	sortBy   string
}

func (f *roomFilterFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.priceMin, "price-min", 0, "Minimum monthly rent")
	cmd.Flags().Float64Var(&f.priceMax, "price-max", 0, "Maximum monthly rent")
	cmd.Flags().StringVar(&f.roomType, "type", "", "Room type: private, shared, studio, entire or any")
	cmd.Flags().StringVar(&f.location, "location", "", "Substring of the address")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "Order: newest, oldest, price-asc or price-desc")
}

func (f *roomFilterFlags) filter(cmd *cobra.Command) filters.RoomFilter {
	rf := filters.RoomFilter{
		RoomType: f.roomType,
		Location: f.location,
		SortBy:   filters.SortKey(f.sortBy),
	}
	if cmd.Flags().Changed("price-min") {
		v := f.priceMin
		rf.PriceMin = &v
	}
	if cmd.Flags().Changed("price-max") {
		v := f.priceMax
		rf.PriceMax = &v
	}
	return rf
}

func newRoomsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Browse room listings",
	}
	cmd.AddCommand(newRoomsListCmd(a), newRoomsGetCmd(a), newRoomsWatchCmd(a))
	return cmd
}

func newRoomsListCmd(a *app) *cobra.Command {
	var (
		limit int
		flags roomFilterFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := a.api.ListRooms(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list rooms: %w", err)
			}

			view := filters.NewRoomView()
			view.SetItems(rooms)
			return printRooms(cmd.OutOrStdout(), view.Apply(flags.filter(cmd)))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultListLimit, "Maximum number of rooms to fetch")
	flags.register(cmd)

	return cmd
}

func newRoomsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one room with its amenities, photos and roommates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[0])
			}

			room, err := a.api.GetRoom(cmd.Context(), id)
			if facades.IsNotFound(err) {
				return fmt.Errorf("room %s not found", id)
			}
			if err != nil {
				return fmt.Errorf("failed to get room: %w", err)
			}

			return printRoom(cmd.OutOrStdout(), room)
		},
	}
}

func newRoomsWatchCmd(a *app) *cobra.Command {
	var (
		limit    int
		interval time.Duration
		flags    roomFilterFlags
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "List rooms and refresh them periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := flags.filter(cmd)
			view := filters.NewRoomView()
			out := cmd.OutOrStdout()

			fetch := func(ctx context.Context) ([]models.RoomView, error) {
				return a.api.ListRooms(ctx, limit)
			}
			p := poller.New(fetch, interval, func(res poller.Result[[]models.RoomView]) {
				if res.Err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "refresh failed, showing last result: %v\n", res.Err)
					return
				}
				view.SetItems(res.Value)
				rooms := view.Apply(filter)
				fmt.Fprintf(out, "\n[%s] %d of %d rooms\n", time.Now().Format(time.TimeOnly), len(rooms), len(res.Value))
				_ = printRooms(out, rooms)
			})

			return watch(cmd.Context(), p.Run)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultListLimit, "Maximum number of rooms to fetch")
	cmd.Flags().DurationVar(&interval, "interval", poller.DefaultInterval, "Refresh interval")
	flags.register(cmd)

	return cmd
}

// watch runs a poller until ctx is done or the process is interrupted.
func watch(ctx context.Context, run func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
