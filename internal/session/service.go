package session

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"local-guide/internal/assistant"
	"local-guide/internal/location"
	"local-guide/internal/mapview"
	"local-guide/internal/places"
	"local-guide/internal/types"
	"local-guide/internal/weather"
)

// ChatResult is the outcome of one chat turn
type ChatResult struct {
	Session *Session          `json:"session"`
	Answer  *assistant.Answer `json:"answer"`
	// Candidates are search results for a place named in the message
	Candidates []places.Place `json:"candidates"`
}

// NearbyResult is the set of points of interest added to the map
type NearbyResult struct {
	Session *Session       `json:"session"`
	Places  []places.Place `json:"places"`
}

type Service interface {
	// Start acquires a location from the device fix and opens a session there
	Start(ctx context.Context, fix location.Fix) (*Session, error)
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// MoveTo changes the shared coordinate without selecting a place
	MoveTo(ctx context.Context, id uuid.UUID, coords types.Coords) (*Session, error)
	// SelectPlace moves the shared coordinate to the place centre and flies the map there
	SelectPlace(ctx context.Context, id uuid.UUID, place places.Place) (*Session, error)
	// Chat records a user message and the assistant reply. Generation failures
	// are recorded as the apology and also returned.
	Chat(ctx context.Context, id uuid.UUID, message string, speak bool) (*ChatResult, error)
	// SetVoice updates speech preferences; disabling voice clears the name
	SetVoice(ctx context.Context, id uuid.UUID, enabled bool, name string) (*Session, error)
	Weather(ctx context.Context, id uuid.UUID) (*weather.Report, error)
	// Nearby finds points of interest around the shared coordinate and adds them as markers
	Nearby(ctx context.Context, id uuid.UUID, radiusMeters uint) (*NearbyResult, error)
}

type sessionService struct {
	store     Store
	location  location.Service
	places    places.Service
	weather   weather.Service
	assistant assistant.Service
	logger    *slog.Logger
	now       func() time.Time

	// locks serialises read-modify-write cycles, striped by session id
	locks [lockStripes]sync.Mutex
}

const lockStripes = 256

func NewSessionService(
	store Store,
	locationService location.Service,
	placesService places.Service,
	weatherService weather.Service,
	assistantService assistant.Service,
	logger *slog.Logger,
) Service {
	return &sessionService{
		store:     store,
		location:  locationService,
		places:    placesService,
		weather:   weatherService,
		assistant: assistantService,
		logger:    logger.With("component", "session-service"),
		now:       time.Now,
	}
}

func (s *sessionService) Start(ctx context.Context, fix location.Fix) (*Session, error) {
	pos, err := s.location.Acquire(ctx, fix)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.New(),
		Map:       mapview.Initial(pos.Coords),
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	sess.applyPosition(pos)

	if err := s.store.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info("session started",
		"session_id", sess.ID,
		"source", sess.Source,
		"latitude", sess.Coords.Latitude,
		"longitude", sess.Coords.Longitude,
	)

	return sess, nil
}

func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.store.Get(ctx, id)
}

func (s *sessionService) Delete(ctx context.Context, id uuid.UUID) error {
	mu := s.lock(id)
	defer mu.Unlock()

	return s.store.Delete(ctx, id)
}

func (s *sessionService) MoveTo(ctx context.Context, id uuid.UUID, coords types.Coords) (*Session, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	return s.update(ctx, id, func(sess *Session) error {
		pos, err := s.location.Describe(ctx, coords)
		if err != nil {
			return err
		}
		sess.applyPosition(pos)
		sess.SelectedPlace = nil
		sess.Map = mapview.FlyTo(sess.Map, coords)
		return nil
	})
}

func (s *sessionService) SelectPlace(ctx context.Context, id uuid.UUID, place places.Place) (*Session, error) {
	coords := types.NewCoordsFromCenter(place.Center)
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	place.Coords = coords

	return s.update(ctx, id, func(sess *Session) error {
		pos, err := s.location.Describe(ctx, coords)
		if err != nil {
			return err
		}
		sess.applyPosition(pos)
		sess.SelectedPlace = &place
		sess.Map = mapview.FlyTo(sess.Map, coords)

		s.logger.Debug("place selected", "session_id", sess.ID, "place", place.Name)
		return nil
	})
}

func (s *sessionService) Chat(ctx context.Context, id uuid.UUID, message string, speak bool) (*ChatResult, error) {
	result := &ChatResult{Candidates: []places.Place{}}

	var askErr error
	sess, err := s.update(ctx, id, func(sess *Session) error {
		var (
			wg         sync.WaitGroup
			candidates []places.Place
		)

		// The place search runs alongside generation
		if query, ok := assistant.ExtractLocation(message); ok {
			near := sess.Coords
			wg.Add(1)
			go func() {
				defer wg.Done()
				found, err := s.places.Search(ctx, query, &near)
				if err != nil {
					s.logger.Warn("failed to search extracted location", "query", query, "error", err)
					return
				}
				candidates = found
			}()
		}

		answer, err := s.assistant.Ask(ctx, assistant.Request{
			Message:  message,
			Place:    sess.SelectedPlace,
			Coords:   sess.Coords,
			Timezone: sess.Timezone,
			Speak:    speak || (sess.Voice.Enabled && sess.Voice.Name != ""),
		})
		wg.Wait()

		if answer == nil {
			return err
		}
		askErr = err

		now := s.now()
		sess.appendMessage(SenderUser, message, nil, now)
		sess.appendMessage(SenderAI, answer.Text, &answer.Reply, now)

		result.Answer = answer
		if candidates != nil {
			result.Candidates = candidates
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Session = sess
	return result, askErr
}

func (s *sessionService) SetVoice(ctx context.Context, id uuid.UUID, enabled bool, name string) (*Session, error) {
	return s.update(ctx, id, func(sess *Session) error {
		sess.Voice = Voice{Enabled: enabled}
		if enabled {
			sess.Voice.Name = name
		}
		return nil
	})
}

func (s *sessionService) Weather(ctx context.Context, id uuid.UUID) (*weather.Report, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.weather.GetReport(ctx, sess.Coords)
}

func (s *sessionService) Nearby(ctx context.Context, id uuid.UUID, radiusMeters uint) (*NearbyResult, error) {
	result := &NearbyResult{}

	sess, err := s.update(ctx, id, func(sess *Session) error {
		found, err := s.places.Nearby(ctx, sess.Coords, radiusMeters)
		if err != nil {
			return err
		}
		sess.Map = mapview.WithPointsOfInterest(sess.Map, found)
		result.Places = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Session = sess
	return result, nil
}

// update loads a session, applies fn and saves it under the session lock.
// Nothing is saved when fn fails.
func (s *sessionService) update(ctx context.Context, id uuid.UUID, fn func(*Session) error) (*Session, error) {
	mu := s.lock(id)
	defer mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(sess); err != nil {
		return nil, err
	}

	sess.UpdatedAt = s.now()
	if err := s.store.Save(ctx, sess); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) lock(id uuid.UUID) *sync.Mutex {
	mu := s.stripe(id)
	mu.Lock()
	return mu
}

func (s *sessionService) stripe(id uuid.UUID) *sync.Mutex {
	h := fnv.New32a()
	h.Write(id[:])
	return &s.locks[h.Sum32()%lockStripes]
}
