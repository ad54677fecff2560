package services

import (
	"context"
	"fmt"
	"net/http"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
)

// LogisticsService manages synchro team trips, their itinerary and the
// rooming list.
type LogisticsService struct {
	gw ports.Gateway
}

func NewLogisticsService(gw ports.Gateway) *LogisticsService {
	return &LogisticsService{gw: gw}
}

func (s *LogisticsService) ListTrips(ctx context.Context, token string, teamID int64) ([]domain.TeamTrip, error) {
	path, err := entityPath(domain.KindSynchro, teamID, "trips/")
	if err != nil {
		return nil, err
	}
	return call[[]domain.TeamTrip](ctx, s.gw, path, http.MethodGet, nil, token)
}

func (s *LogisticsService) CreateTrip(ctx context.Context, token string, teamID int64, trip domain.TeamTrip) (*domain.TeamTrip, error) {
	path, err := entityPath(domain.KindSynchro, teamID, "trips/")
	if err != nil {
		return nil, err
	}
	body, err := tripBody(trip)
	if err != nil {
		return nil, err
	}
	return call[*domain.TeamTrip](ctx, s.gw, path, http.MethodPost, body, token)
}

func (s *LogisticsService) UpdateTrip(ctx context.Context, token string, tripID int64, trip domain.TeamTrip) (*domain.TeamTrip, error) {
	path, err := idPath("trips", tripID, "")
	if err != nil {
		return nil, err
	}
	body, err := tripBody(trip)
	if err != nil {
		return nil, err
	}
	return call[*domain.TeamTrip](ctx, s.gw, path, http.MethodPatch, body, token)
}

func (s *LogisticsService) DeleteTrip(ctx context.Context, token string, tripID int64) error {
	path, err := idPath("trips", tripID, "")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodDelete, nil, token)
}

func (s *LogisticsService) ListItinerary(ctx context.Context, token string, tripID int64) ([]domain.ItineraryItem, error) {
	path, err := idPath("trips", tripID, "itinerary/")
	if err != nil {
		return nil, err
	}
	return call[[]domain.ItineraryItem](ctx, s.gw, path, http.MethodGet, nil, token)
}

func (s *LogisticsService) CreateItineraryItem(ctx context.Context, token string, tripID int64, item domain.ItineraryItem) (*domain.ItineraryItem, error) {
	path, err := idPath("trips", tripID, "itinerary/")
	if err != nil {
		return nil, err
	}
	if item.Category == "" {
		item.Category = domain.ItineraryOther
	}
	body, err := jsonBody(item)
	if err != nil {
		return nil, err
	}
	return call[*domain.ItineraryItem](ctx, s.gw, path, http.MethodPost, body, token)
}

func (s *LogisticsService) DeleteItineraryItem(ctx context.Context, token string, itemID int64) error {
	path, err := idPath("itinerary", itemID, "")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodDelete, nil, token)
}

func (s *LogisticsService) ListHousing(ctx context.Context, token string, tripID int64) ([]domain.HousingAssignment, error) {
	path, err := idPath("trips", tripID, "housing/")
	if err != nil {
		return nil, err
	}
	return call[[]domain.HousingAssignment](ctx, s.gw, path, http.MethodGet, nil, token)
}

// CreateHousing assigns a room. Occupants are roster skater ids; guests
// who are not on the roster go in GuestOccupants.
func (s *LogisticsService) CreateHousing(ctx context.Context, token string, tripID int64, room domain.HousingAssignment) (*domain.HousingAssignment, error) {
	path, err := idPath("trips", tripID, "housing/")
	if err != nil {
		return nil, err
	}
	if room.OccupantIDs == nil {
		room.OccupantIDs = []int64{}
	}
	body, err := jsonBody(room)
	if err != nil {
		return nil, err
	}
	return call[*domain.HousingAssignment](ctx, s.gw, path, http.MethodPost, body, token)
}

func (s *LogisticsService) DeleteHousing(ctx context.Context, token string, roomID int64) error {
	path, err := idPath("housing", roomID, "")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodDelete, nil, token)
}

func tripBody(trip domain.TeamTrip) (ports.RequestBody, error) {
	if trip.EndDate < trip.StartDate {
		return nil, fmt.Errorf("%w: trip %q ends before it starts", domain.ErrInvalidDates, trip.Title)
	}
	if trip.TravelSegments == nil {
		trip.TravelSegments = []domain.TravelSegment{}
	}
	return jsonBody(trip)
}
