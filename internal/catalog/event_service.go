package catalog

import (
	"context"
	"time"

	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
)

// EventFilters carries the optional browse dimensions for events.
// Date bounds apply to the event start date.
type EventFilters struct {
	Search     string
	EventTypes []string
	States     []string
	FromDate   *time.Time
	ToDate     *time.Time
	ActiveOnly bool
}

func (p EventFilters) Build() (*Filter, error) {
	f := &Filter{}
	f.Search(p.Search, "name", "description", "city")

	types, err := resolveCodes("eventType", p.EventTypes, func(c string) (string, error) {
		v, err := domain.ParseEventType(c)
		return v.String(), err
	})
	if err != nil {
		return nil, err
	}
	f.In("event_type", types)

	if len(p.States) > 0 {
		states := make([]interface{}, 0, len(p.States))
		for _, s := range p.States {
			states = append(states, s)
		}
		f.In("state", states)
	}

	if p.FromDate != nil {
		f.GTE("start_date", *p.FromDate)
	}
	if p.ToDate != nil {
		f.LTE("start_date", *p.ToDate)
	}

	if p.ActiveOnly {
		f.Eq("is_active", true)
	}
	return f, nil
}

// EventService serves event browse, upcoming teaser and calendar queries.
type EventService struct {
	repo EventRepository
	now  func() time.Time
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{repo: repo, now: time.Now}
}

// Browse returns one page of events matching the filters.
func (s *EventService) Browse(ctx context.Context, filters EventFilters, pr PageRequest) (Page[EventDTO], error) {
	f, err := filters.Build()
	if err != nil {
		return Page[EventDTO]{}, err
	}
	rows, total, err := s.repo.Page(ctx, f, pr)
	if err != nil {
		return Page[EventDTO]{}, err
	}
	return NewPage(eventDTOs(rows), pr.Page, pr.Size, total), nil
}

// FindUpcoming returns up to limit active events starting today or later.
func (s *EventService) FindUpcoming(ctx context.Context, limit int) ([]EventDTO, error) {
	today := truncateToDay(s.now())
	rows, err := s.repo.Upcoming(ctx, today, limit)
	if err != nil {
		return nil, err
	}
	return eventDTOs(rows), nil
}

// FindByMonth returns active events overlapping the given calendar month.
func (s *EventService) FindByMonth(ctx context.Context, year int, month time.Month) ([]EventDTO, error) {
	rows, err := s.repo.ByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return eventDTOs(rows), nil
}

// FindByState returns active events in a state.
func (s *EventService) FindByState(ctx context.Context, state string) ([]EventDTO, error) {
	rows, err := s.repo.ByState(ctx, state)
	if err != nil {
		return nil, err
	}
	return eventDTOs(rows), nil
}

// FindByID returns the event with the given id or ErrNotFound.
func (s *EventService) FindByID(ctx context.Context, id int64) (EventDTO, error) {
	e, err := s.repo.ByID(ctx, id)
	if err != nil {
		return EventDTO{}, err
	}
	return EventToDTO(e), nil
}

// FindBySlug returns the event with the given slug or ErrNotFound.
func (s *EventService) FindBySlug(ctx context.Context, slug string) (EventDTO, error) {
	e, err := s.repo.BySlug(ctx, slug)
	if err != nil {
		return EventDTO{}, err
	}
	return EventToDTO(e), nil
}

func (s *EventService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// FindAll returns every event, used for sitemap rendering.
func (s *EventService) FindAll(ctx context.Context) ([]EventDTO, error) {
	rows, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return eventDTOs(rows), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func eventDTOs(rows []domain.Event) []EventDTO {
	out := make([]EventDTO, 0, len(rows))
	for i := range rows {
		out = append(out, EventToDTO(&rows[i]))
	}
	return out
}
