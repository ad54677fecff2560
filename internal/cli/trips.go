package cli

import (
	"skateplan/internal/core/domain"

	"github.com/spf13/cobra"
)

func newTripsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Plan synchro team travel, itineraries and rooming",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list <synchro-id>",
		Short: "List the trips of a synchro team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("synchro-id", args[0])
			if err != nil {
				return err
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			trips, err := deps.Logistics.ListTrips(cmd.Context(), sess.Token, id)
			if err != nil {
				return err
			}
			return a.print(trips)
		},
	})

	var trip domain.TeamTrip
	add := &cobra.Command{
		Use:   "add <synchro-id>",
		Short: "Create a trip",
		Long: `Examples:
  skateplan trips add 3 --title "Worlds 2026" --start 2026-04-08 --end 2026-04-13 --hotel "Hotel Lindner"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("synchro-id", args[0])
			if err != nil {
				return err
			}
			trip.IsActive = true
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			created, err := deps.Logistics.CreateTrip(cmd.Context(), sess.Token, id, trip)
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	add.Flags().StringVar(&trip.Title, "title", "", "trip title")
	add.Flags().StringVar(&trip.StartDate, "start", "", "departure date, YYYY-MM-DD")
	add.Flags().StringVar(&trip.EndDate, "end", "", "return date, YYYY-MM-DD")
	add.Flags().StringVar(&trip.HotelInfo, "hotel", "", "hotel details")
	add.Flags().StringVar(&trip.GroundTransportNotes, "transport", "", "ground transport notes")
	_ = add.MarkFlagRequired("title")
	_ = add.MarkFlagRequired("start")
	_ = add.MarkFlagRequired("end")

	rm := &cobra.Command{
		Use:   "rm <trip-id>",
		Short: "Delete a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("trip-id", args[0])
			if err != nil {
				return err
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			if err := deps.Logistics.DeleteTrip(cmd.Context(), sess.Token, id); err != nil {
				return err
			}
			a.printf("Deleted trip %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, rm, newItineraryCommand(a), newRoomsCommand(a))
	return cmd
}

func newItineraryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "itinerary",
		Short: "Show or extend a trip itinerary",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list <trip-id>",
		Short: "List itinerary items in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("trip-id", args[0])
			if err != nil {
				return err
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			items, err := deps.Logistics.ListItinerary(cmd.Context(), sess.Token, id)
			if err != nil {
				return err
			}
			return a.print(items)
		},
	})

	var item domain.ItineraryItem
	add := &cobra.Command{
		Use:   "add <trip-id>",
		Short: "Add an itinerary item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("trip-id", args[0])
			if err != nil {
				return err
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			created, err := deps.Logistics.CreateItineraryItem(cmd.Context(), sess.Token, id, item)
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	add.Flags().StringVar(&item.StartTime, "at", "", "start time, e.g. 2026-04-09T07:30")
	add.Flags().StringVar(&item.EndTime, "until", "", "end time")
	add.Flags().StringVar(&item.Activity, "activity", "", "what happens")
	add.Flags().StringVar(&item.Location, "location", "", "where it happens")
	add.Flags().StringVar(&item.Category, "category", "", "TRAVEL, ICE, OFF_ICE, MEAL, MEETING, COMPETITION or OTHER")
	_ = add.MarkFlagRequired("at")
	_ = add.MarkFlagRequired("activity")

	cmd.AddCommand(add)
	return cmd
}

func newRoomsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Manage a trip rooming list",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list <trip-id>",
		Short: "List room assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("trip-id", args[0])
			if err != nil {
				return err
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			rooms, err := deps.Logistics.ListHousing(cmd.Context(), sess.Token, id)
			if err != nil {
				return err
			}
			return a.print(rooms)
		},
	})

	var room domain.HousingAssignment
	add := &cobra.Command{
		Use:   "add <trip-id>",
		Short: "Assign skaters to a room",
		Long: `Examples:
  skateplan trips rooms add 4 --room 412 --skater 31 --skater 32 --guests "Team manager"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("trip-id", args[0])
			if err != nil {
				return err
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			created, err := deps.Logistics.CreateHousing(cmd.Context(), sess.Token, id, room)
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	add.Flags().StringVar(&room.RoomNumber, "room", "", "room number")
	add.Flags().Int64SliceVar(&room.OccupantIDs, "skater", nil, "roster skater id, repeatable")
	add.Flags().StringVar(&room.GuestOccupants, "guests", "", "occupants who are not on the roster")
	add.Flags().StringVar(&room.Notes, "notes", "", "notes")
	_ = add.MarkFlagRequired("room")

	cmd.AddCommand(add)
	return cmd
}
