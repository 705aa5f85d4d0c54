package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"wedding_server/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// maxBookingNights caps the rooms:bookings fan-out for nonsense date
// ranges; the venue block is a single weekend.
const maxBookingNights = 60

// RSVPService records guest responses. Entries are append-only and
// follow the same record-plus-index layout as claims. Room selections
// are advisory: the claim registry is told about them, but a booking
// conflict never rejects the RSVP itself.
type RSVPService struct {
	Store  KVStore
	Claims *ClaimService
}

// Append validates entry, assigns its id and submission time, and
// writes it. Validation failures happen before any store access.
func (s *RSVPService) Append(ctx context.Context, entry models.RSVPEntry) (string, error) {
	if err := validate.Struct(entry); err != nil {
		return "", err
	}

	entry.ID = newEntryID()
	entry.SubmittedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.Store.PutItem(ctx, models.RSVPKey(entry.ID), entry); err != nil {
		return "", fmt.Errorf("write rsvp: %w", err)
	}
	if err := s.Store.AddToSet(ctx, models.RSVPIndexKey, "ids", entry.ID); err != nil {
		return "", fmt.Errorf("index rsvp %q: %w", entry.ID, err)
	}

	if entry.RoomBooking != "" {
		s.recordRoomBooking(ctx, entry)
	}

	log.Info().Str("id", entry.ID).Str("attending", entry.Attending).Msg("rsvp recorded")
	return entry.ID, nil
}

// recordRoomBooking claims the room and records the booked nights.
// Both are best-effort: the RSVP is already durable, and whole-item
// room exclusivity is advisory by design.
func (s *RSVPService) recordRoomBooking(ctx context.Context, entry models.RSVPEntry) {
	if !models.KnownRoom(entry.RoomBooking) {
		log.Warn().Str("roomId", entry.RoomBooking).Msg("rsvp references unknown room id")
	}

	err := s.Claims.TryClaim(ctx, entry.RoomBooking, entry.Name)
	if err != nil && !errors.Is(err, ErrAlreadyClaimed) {
		log.Warn().Err(err).Str("roomId", entry.RoomBooking).Msg("room claim failed")
	}

	nights := nightsBetween(entry.ArrivalDate, entry.DepartureDate)
	if len(nights) == 0 {
		return
	}
	if err := s.Store.AddToSet(ctx, models.RoomBookingsKey, entry.RoomBooking, nights...); err != nil {
		log.Warn().Err(err).Str("roomId", entry.RoomBooking).Msg("room dates not recorded")
	}
}

// ListAll returns every RSVP, newest first. Index ids whose record is
// missing are skipped.
func (s *RSVPService) ListAll(ctx context.Context) ([]models.RSVPEntry, error) {
	ids, err := s.Store.GetSet(ctx, models.RSVPIndexKey, "ids")
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}

	entries := make([]models.RSVPEntry, 0, len(ids))
	for _, id := range ids {
		var entry models.RSVPEntry
		err := s.Store.GetItem(ctx, models.RSVPKey(id), &entry)
		if errors.Is(err, ErrItemNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SubmittedAt > entries[j].SubmittedAt
	})
	return entries, nil
}

// Stats aggregates all responses
func (s *RSVPService) Stats(ctx context.Context) (models.RSVPStats, error) {
	entries, err := s.ListAll(ctx)
	if err != nil {
		return models.RSVPStats{}, err
	}

	stats := models.RSVPStats{Total: len(entries)}
	for _, entry := range entries {
		if entry.Attending == models.AttendingYes {
			stats.Attending++
			stats.TotalGuests += entry.GuestCount
		} else {
			stats.NotAttending++
		}
	}
	return stats, nil
}

// BookedRoomIDs returns the ids of rooms referenced by any RSVP,
// deduplicated and sorted. This is the advisory availability view.
func (s *RSVPService) BookedRoomIDs(ctx context.Context) ([]string, error) {
	entries, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	booked := []string{}
	for _, entry := range entries {
		if entry.RoomBooking == "" || seen[entry.RoomBooking] {
			continue
		}
		seen[entry.RoomBooking] = true
		booked = append(booked, entry.RoomBooking)
	}
	sort.Strings(booked)
	return booked, nil
}

// RoomDateBookings returns booked dates per room id
func (s *RSVPService) RoomDateBookings(ctx context.Context) (map[string][]string, error) {
	bookings, err := s.Store.GetSetMap(ctx, models.RoomBookingsKey)
	if err != nil {
		return nil, fmt.Errorf("room bookings: %w", err)
	}
	for _, dates := range bookings {
		sort.Strings(dates)
	}
	return bookings, nil
}

// ExportCSV writes all entries to w as CSV, newest first
func (s *RSVPService) ExportCSV(ctx context.Context, w io.Writer) error {
	entries, err := s.ListAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"id", "name", "email", "phone", "attending", "guestCount", "guestNames",
		"arrivalDate", "departureDate", "roomBooking", "dietary", "message", "submittedAt"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		row := []string{e.ID, e.Name, e.Email, e.Phone, e.Attending, strconv.Itoa(e.GuestCount),
			e.GuestNames, e.ArrivalDate, e.DepartureDate, e.RoomBooking, e.Dietary, e.Message, e.SubmittedAt}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// newEntryID builds a submission id from the current time and a random
// suffix, so ids sort roughly by submission order.
func newEntryID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// nightsBetween lists the nights of a stay: every date from arrival up
// to but not including departure. Unparseable or inverted ranges yield
// nothing.
func nightsBetween(arrival, departure string) []string {
	start, err := time.Parse(dateLayout, arrival)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dateLayout, departure)
	if err != nil {
		return nil
	}

	var nights []string
	for d := start; d.Before(end) && len(nights) < maxBookingNights; d = d.AddDate(0, 0, 1) {
		nights = append(nights, d.Format(dateLayout))
	}
	return nights
}
