package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/planventure/planventure-api/internal/core/domain"
	"github.com/planventure/planventure-api/internal/core/ports"
)

type stubTripRepo struct {
	trips     map[int64]*domain.Trip
	nextID    int64
	createErr error
	updateErr error
}

func newStubTripRepo() *stubTripRepo {
	return &stubTripRepo{trips: make(map[int64]*domain.Trip), nextID: 1}
}

func cloneTrip(t *domain.Trip) *domain.Trip {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTripRepo) Create(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := cloneTrip(trip)
	created.ID = r.nextID
	r.nextID++
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	r.trips[created.ID] = cloneTrip(created)
	return created, nil
}

func (r *stubTripRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Trip, error) {
	var out []*domain.Trip
	for id := int64(1); id < r.nextID; id++ {
		if t, ok := r.trips[id]; ok && t.UserID == userID {
			out = append(out, cloneTrip(t))
		}
	}
	return out, nil
}

func (r *stubTripRepo) FindByID(_ context.Context, userID, tripID int64) (*domain.Trip, error) {
	t, ok := r.trips[tripID]
	if !ok || t.UserID != userID {
		return nil, domain.ErrTripNotFound
	}
	return cloneTrip(t), nil
}

func (r *stubTripRepo) Update(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	existing, ok := r.trips[trip.ID]
	if !ok || existing.UserID != trip.UserID {
		return nil, domain.ErrTripNotFound
	}
	updated := cloneTrip(trip)
	updated.UpdatedAt = time.Now().UTC()
	r.trips[trip.ID] = cloneTrip(updated)
	return updated, nil
}

func (r *stubTripRepo) Delete(_ context.Context, userID, tripID int64) error {
	t, ok := r.trips[tripID]
	if !ok || t.UserID != userID {
		return domain.ErrTripNotFound
	}
	delete(r.trips, tripID)
	return nil
}

func newTripService(repo *stubTripRepo) *TripService {
	return NewTripService(repo, zerolog.Nop())
}

func itineraryEntries(t *testing.T, raw json.RawMessage) map[string]domain.DayPlan {
	t.Helper()
	var entries map[string]domain.DayPlan
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatalf("itinerary is not a per-date object: %v", err)
	}
	return entries
}

func TestTripService_Create_DefaultItinerary(t *testing.T) {
	svc := newTripService(newStubTripRepo())

	trip, err := svc.Create(context.Background(), 1, ports.CreateTripInput{
		Destination: "Tokyo",
		StartDate:   "2024-04-01",
		EndDate:     "2024-04-03",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if trip.ID == 0 {
		t.Fatalf("expected generated id")
	}

	entries := itineraryEntries(t, trip.Itinerary)
	if len(entries) != 3 {
		t.Fatalf("expected 3 daily entries, got %d", len(entries))
	}
	plan, ok := entries["2024-04-02"]
	if !ok {
		t.Fatalf("missing middle day")
	}
	if plan.Meals.Breakfast.Time != "08:00" {
		t.Fatalf("unexpected breakfast time: %q", plan.Meals.Breakfast.Time)
	}
}

func TestTripService_Create_SuppliedItineraryPassesThrough(t *testing.T) {
	svc := newTripService(newStubTripRepo())

	custom := json.RawMessage(`[{"day":1,"plan":"visit Senso-ji"}]`)
	trip, err := svc.Create(context.Background(), 1, ports.CreateTripInput{
		Destination: "Tokyo",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-07",
		Coordinates: &domain.Coordinates{Lat: 35.6762, Lng: 139.6503},
		Itinerary:   custom,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if string(trip.Itinerary) != string(custom) {
		t.Fatalf("itinerary was not passed through opaquely: %s", trip.Itinerary)
	}
	if trip.Coordinates == nil || trip.Coordinates.Lat != 35.6762 {
		t.Fatalf("coordinates lost: %+v", trip.Coordinates)
	}
}

func TestTripService_Create_Validation(t *testing.T) {
	svc := newTripService(newStubTripRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, ports.CreateTripInput{Destination: "", StartDate: "2024-03-01", EndDate: "2024-03-02"}); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Create(ctx, 1, ports.CreateTripInput{Destination: "Tokyo", StartDate: "bad", EndDate: "2024-03-02"}); !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	// Equal dates violate the strict ordering; one day apart is fine.
	if _, err := svc.Create(ctx, 1, ports.CreateTripInput{Destination: "Tokyo", StartDate: "2024-03-01", EndDate: "2024-03-01"}); !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if _, err := svc.Create(ctx, 1, ports.CreateTripInput{Destination: "Tokyo", StartDate: "2024-03-01", EndDate: "2024-03-02"}); err != nil {
		t.Fatalf("one-day trip should succeed: %v", err)
	}
}

func TestTripService_OwnershipFilter(t *testing.T) {
	repo := newStubTripRepo()
	svc := newTripService(repo)
	ctx := context.Background()

	trip, err := svc.Create(ctx, 1, ports.CreateTripInput{Destination: "Tokyo", StartDate: "2024-03-01", EndDate: "2024-03-07"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Another user must see NotFound on every operation, never Forbidden.
	if _, err := svc.Get(ctx, 2, trip.ID); !errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("Get: expected ErrTripNotFound, got %v", err)
	}
	dest := "Osaka"
	if _, err := svc.Update(ctx, 2, trip.ID, ports.UpdateTripInput{Destination: &dest}); !errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("Update: expected ErrTripNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 2, trip.ID); !errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("Delete: expected ErrTripNotFound, got %v", err)
	}

	trips, err := svc.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("expected no trips for other user, got %d", len(trips))
	}

	// The owner still sees the trip untouched.
	if _, err := svc.Get(ctx, 1, trip.ID); err != nil {
		t.Fatalf("owner Get failed: %v", err)
	}
}

func TestTripService_Update_Partial(t *testing.T) {
	svc := newTripService(newStubTripRepo())
	ctx := context.Background()

	trip, err := svc.Create(ctx, 1, ports.CreateTripInput{Destination: "Tokyo", StartDate: "2024-03-01", EndDate: "2024-03-07"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	dest := "Osaka"
	updated, err := svc.Update(ctx, 1, trip.ID, ports.UpdateTripInput{Destination: &dest})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Destination != "Osaka" {
		t.Fatalf("destination not updated: %q", updated.Destination)
	}
	if !updated.StartDate.Equal(trip.StartDate) || !updated.EndDate.Equal(trip.EndDate) {
		t.Fatalf("dates must be untouched by a destination-only update")
	}
	if string(updated.Itinerary) != string(trip.Itinerary) {
		t.Fatalf("itinerary must be untouched when dates do not change")
	}
}

func TestTripService_Update_ResultingRangeValidated(t *testing.T) {
	svc := newTripService(newStubTripRepo())
	ctx := context.Background()

	trip, err := svc.Create(ctx, 1, ports.CreateTripInput{Destination: "Tokyo", StartDate: "2024-03-01", EndDate: "2024-03-07"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Moving start past the stored end must fail against the resulting range.
	start := "2024-03-08"
	if _, err := svc.Update(ctx, 1, trip.ID, ports.UpdateTripInput{StartDate: &start}); !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}

	bad := "08-03-2024"
	if _, err := svc.Update(ctx, 1, trip.ID, ports.UpdateTripInput{StartDate: &bad}); !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestTripService_Update_RegeneratesItineraryOnDateChange(t *testing.T) {
	svc := newTripService(newStubTripRepo())
	ctx := context.Background()

	trip, err := svc.Create(ctx, 1, ports.CreateTripInput{Destination: "Tokyo", StartDate: "2024-03-01", EndDate: "2024-03-07"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(itineraryEntries(t, trip.Itinerary)) != 7 {
		t.Fatalf("expected 7 initial entries")
	}

	end := "2024-03-03"
	updated, err := svc.Update(ctx, 1, trip.ID, ports.UpdateTripInput{EndDate: &end})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	entries := itineraryEntries(t, updated.Itinerary)
	if len(entries) != 3 {
		t.Fatalf("expected regenerated 3-entry itinerary, got %d", len(entries))
	}
	if _, ok := entries["2024-03-07"]; ok {
		t.Fatalf("old range must not survive regeneration")
	}
}

func TestTripService_Update_SuppliedItineraryWinsOverRegeneration(t *testing.T) {
	svc := newTripService(newStubTripRepo())
	ctx := context.Background()

	trip, err := svc.Create(ctx, 1, ports.CreateTripInput{Destination: "Tokyo", StartDate: "2024-03-01", EndDate: "2024-03-07"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	end := "2024-03-03"
	custom := json.RawMessage(`[{"day":1,"plan":"rest"}]`)
	updated, err := svc.Update(ctx, 1, trip.ID, ports.UpdateTripInput{EndDate: &end, Itinerary: custom})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if string(updated.Itinerary) != string(custom) {
		t.Fatalf("explicit itinerary must not be overwritten: %s", updated.Itinerary)
	}
}

func TestTripService_Delete(t *testing.T) {
	svc := newTripService(newStubTripRepo())
	ctx := context.Background()

	trip, err := svc.Create(ctx, 1, ports.CreateTripInput{Destination: "Tokyo", StartDate: "2024-03-01", EndDate: "2024-03-07"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(ctx, 1, trip.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(ctx, 1, trip.ID); !errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, 1, trip.ID); !errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("double delete: expected ErrTripNotFound, got %v", err)
	}
}

func TestTripService_Create_RepoFailure(t *testing.T) {
	repo := newStubTripRepo()
	repo.createErr = errors.New("connection reset")
	svc := newTripService(repo)

	_, err := svc.Create(context.Background(), 1, ports.CreateTripInput{Destination: "Tokyo", StartDate: "2024-03-01", EndDate: "2024-03-07"})
	if err == nil || errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("expected opaque persistence error, got %v", err)
	}
	if len(repo.trips) != 0 {
		t.Fatalf("no row may be left behind on failure")
	}
}
