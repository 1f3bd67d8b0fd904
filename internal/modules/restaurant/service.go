// README: Restaurant service runs the search -> filter -> pick -> detail -> itinerary pipeline.
package restaurant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"aleoresto/internal/metrics"
	"aleoresto/internal/types"
)

// State is a step of one pick run. Failed is reachable from every other state.
type State string

const (
	StateValidating        State = "validating"
	StateSearching         State = "searching"
	StateFiltering         State = "filtering"
	StateSelecting         State = "selecting"
	StateDetailFetching    State = "detail_fetching"
	StateItineraryFetching State = "itinerary_fetching"
	StateResponding        State = "responding"
	StateFailed            State = "failed"
)

const DefaultCallTimeout = 5 * time.Second

type SearchQuery struct {
	Location types.Point
	Radius   int
	Keyword  string
}

type Searcher interface {
	SearchNearby(ctx context.Context, q SearchQuery) ([]Candidate, error)
}

type DetailFetcher interface {
	FetchDetail(ctx context.Context, placeID string, origin types.Point, mode TransportMode) (RestaurantDetail, error)
}

type ItineraryFetcher interface {
	FetchItinerary(ctx context.Context, origin, destination types.Point, mode TransportMode) (Itinerary, error)
}

// PickRecorder stores served picks. Failures never fail the request.
type PickRecorder interface {
	RecordPick(ctx context.Context, req Request, p Payload) error
}

// PipelineError records the state a run failed in. It unwraps to the cause.
type PipelineError struct {
	State State
	Err   error
}

func (e *PipelineError) Error() string { return fmt.Sprintf("%s: %v", e.State, e.Err) }

func (e *PipelineError) Unwrap() error { return e.Err }

// FailedState returns the state a FindRandom error came from, or StateFailed.
func FailedState(err error) State {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.State
	}
	return StateFailed
}

type Service struct {
	search      Searcher
	details     DetailFetcher
	routes      ItineraryFetcher
	picker      Picker
	history     PickRecorder
	callTimeout time.Duration
	log         logrus.FieldLogger
	tracer      trace.Tracer
}

type Option func(*Service)

func WithPicker(p Picker) Option {
	return func(s *Service) {
		if p != nil {
			s.picker = p
		}
	}
}

func WithHistory(h PickRecorder) Option {
	return func(s *Service) { s.history = h }
}

func WithCallTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.callTimeout = d
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(search Searcher, details DetailFetcher, routes ItineraryFetcher, opts ...Option) *Service {
	s := &Service{
		search:      search,
		details:     details,
		routes:      routes,
		picker:      RandomPicker(),
		callTimeout: DefaultCallTimeout,
		log:         logrus.StandardLogger(),
		tracer:      otel.Tracer("aleoresto/restaurant"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// pickRun carries data between steps of one FindRandom call.
type pickRun struct {
	req        Request
	candidates []Candidate
	chosen     Candidate
	detail     RestaurantDetail
	itinerary  Itinerary
}

type step struct {
	state State
	run   func(ctx context.Context, r *pickRun) error
}

func (s *Service) steps() []step {
	return []step{
		{StateValidating, s.validate},
		{StateSearching, s.searchCandidates},
		{StateFiltering, s.filterByPrice},
		{StateSelecting, s.selectCandidate},
		{StateDetailFetching, s.fetchDetail},
		{StateItineraryFetching, s.fetchItinerary},
		{StateResponding, s.respond},
	}
}

// FindRandom picks one open restaurant near req.Location matching its filters,
// then resolves its details and a route to it.
func (s *Service) FindRandom(ctx context.Context, req Request) (Payload, error) {
	ctx, span := s.tracer.Start(ctx, "restaurant.FindRandom")
	defer span.End()

	run := &pickRun{req: req}
	for _, st := range s.steps() {
		stepCtx, stepSpan := s.tracer.Start(ctx, "restaurant."+string(st.state))
		err := st.run(stepCtx, run)
		if err != nil {
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, err.Error())
		}
		stepSpan.End()

		if err != nil {
			span.SetAttributes(attribute.String("pick.failed_state", string(st.state)))
			span.SetStatus(codes.Error, string(st.state))
			metrics.Picks.WithLabelValues(pickOutcome(err)).Inc()
			return Payload{}, &PipelineError{State: st.state, Err: err}
		}
		s.log.WithField("state", st.state).Debug("pick step done")
	}

	metrics.Picks.WithLabelValues(metrics.OutcomeOK).Inc()
	return Payload{Restaurant: run.detail, Itinerary: run.itinerary}, nil
}

func (s *Service) validate(_ context.Context, r *pickRun) error {
	if err := r.req.Validate(); err != nil {
		return err
	}
	if r.req.TransportMode == "" {
		r.req.TransportMode = ModeWalking
	}
	return nil
}

func (s *Service) searchCandidates(ctx context.Context, r *pickRun) error {
	q := SearchQuery{
		Location: r.req.Location,
		Radius:   r.req.Filters.Radius,
		Keyword:  r.req.Filters.Query(),
	}
	var found []Candidate
	err := s.call(ctx, StageSearch, func(ctx context.Context) error {
		var err error
		found, err = s.search.SearchNearby(ctx, q)
		return err
	})
	if err != nil {
		return err
	}
	r.candidates = FilterByCategory(found)
	s.log.WithFields(logrus.Fields{"found": len(found), "food_venues": len(r.candidates)}).Debug("nearby search done")
	if len(r.candidates) == 0 {
		return ErrNoRestaurants
	}
	return nil
}

func (s *Service) filterByPrice(_ context.Context, r *pickRun) error {
	r.candidates = FilterByPrice(r.candidates, r.req.Filters.PriceRange)
	if len(r.candidates) == 0 {
		return ErrNoPriceMatch
	}
	return nil
}

func (s *Service) selectCandidate(_ context.Context, r *pickRun) error {
	r.chosen = s.picker.Pick(r.candidates)
	if r.chosen.PlaceID == "" {
		return ErrMissingPlaceID
	}
	return nil
}

func (s *Service) fetchDetail(ctx context.Context, r *pickRun) error {
	return s.call(ctx, StageDetail, func(ctx context.Context) error {
		var err error
		r.detail, err = s.details.FetchDetail(ctx, r.chosen.PlaceID, r.req.Location, r.req.TransportMode)
		return err
	})
}

func (s *Service) fetchItinerary(ctx context.Context, r *pickRun) error {
	return s.call(ctx, StageItinerary, func(ctx context.Context) error {
		var err error
		r.itinerary, err = s.routes.FetchItinerary(ctx, r.req.Location, r.detail.Location, r.req.TransportMode)
		return err
	})
}

func (s *Service) respond(ctx context.Context, r *pickRun) error {
	if s.history == nil {
		return nil
	}
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.callTimeout)
	defer cancel()
	if err := s.history.RecordPick(recordCtx, r.req, Payload{Restaurant: r.detail, Itinerary: r.itinerary}); err != nil {
		s.log.WithError(err).WithField("place_id", r.detail.PlaceID).Warn("recording pick failed")
	}
	return nil
}

// call runs one upstream request under its own timeout and normalises its error.
func (s *Service) call(ctx context.Context, stage Stage, fn func(ctx context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	start := time.Now()
	err := fn(callCtx)
	metrics.UpstreamDuration.WithLabelValues(string(stage)).Observe(time.Since(start).Seconds())
	metrics.UpstreamCalls.WithLabelValues(string(stage), callOutcome(err)).Inc()
	if err == nil {
		return nil
	}

	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		if upErr.Stage == "" {
			upErr.Stage = stage
		}
		return upErr
	}
	return &UpstreamError{Stage: stage, Err: err}
}

func callOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, context.Canceled):
		return metrics.OutcomeCanceled
	}
	return metrics.OutcomeError
}

func pickOutcome(err error) string {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return metrics.OutcomeInvalid
	case errors.Is(err, ErrNoRestaurants), errors.Is(err, ErrNoPriceMatch):
		return metrics.OutcomeNotFound
	case errors.Is(err, context.Canceled):
		return metrics.OutcomeCanceled
	}
	return metrics.OutcomeError
}
