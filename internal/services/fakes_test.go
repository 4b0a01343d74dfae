package services

import (
	"errors"
	"sync"
	"time"

	"eventpass/internal/models"
)

// In-memory fakes shared by the service tests. The ticket fake implements
// the same compare-and-swap redemption semantics as the Postgres repository,
// guarded by a mutex, so the concurrency properties can be exercised
// without a database.

type fakeEventRepo struct {
	mu      sync.RWMutex
	events  map[int64]*models.Event
	nextID  int64
	failOps map[string]bool
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:  make(map[int64]*models.Event),
		nextID:  1,
		failOps: make(map[string]bool),
	}
}

func (f *fakeEventRepo) Create(req *models.EventCreateRequest) (*models.Event, error) {
	if f.failOps["Create"] {
		return nil, errors.New("storage failure")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	event := &models.Event{
		ID:          f.nextID,
		Name:        req.Name,
		Date:        req.Date,
		Location:    req.Location,
		Price:       req.Price,
		Currency:    req.Currency,
		FeeModel:    req.FeeModel,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	f.events[f.nextID] = event
	f.nextID++
	return event, nil
}

func (f *fakeEventRepo) GetByID(id int64) (*models.Event, error) {
	if f.failOps["GetByID"] {
		return nil, errors.New("storage failure")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	event, ok := f.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) List() ([]*models.Event, error) {
	if f.failOps["List"] {
		return nil, errors.New("storage failure")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var events []*models.Event
	for id := int64(1); id < f.nextID; id++ {
		if event, ok := f.events[id]; ok {
			copied := *event
			events = append(events, &copied)
		}
	}
	return events, nil
}

func (f *fakeEventRepo) Count() (int, error) {
	if f.failOps["Count"] {
		return 0, errors.New("storage failure")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.events), nil
}

// setPrice mutates a stored event in place, bypassing the catalog's
// immutability, to prove ticket snapshots do not follow
func (f *fakeEventRepo) setPrice(id int64, price int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if event, ok := f.events[id]; ok {
		event.Price = price
	}
}

type fakeTicketRepo struct {
	mu             sync.Mutex
	tickets        map[string]*models.Ticket
	order          []string
	failOps        map[string]bool
	duplicateFails int // next N creates fail with ErrDuplicateTicketID
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{
		tickets: make(map[string]*models.Ticket),
		failOps: make(map[string]bool),
	}
}

func (f *fakeTicketRepo) Create(ticket *models.Ticket) error {
	if f.failOps["Create"] {
		return errors.New("storage failure")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.duplicateFails > 0 {
		f.duplicateFails--
		return models.ErrDuplicateTicketID
	}
	if _, exists := f.tickets[ticket.ID]; exists {
		return models.ErrDuplicateTicketID
	}

	copied := *ticket
	f.tickets[ticket.ID] = &copied
	f.order = append(f.order, ticket.ID)
	return nil
}

func (f *fakeTicketRepo) GetByID(id string) (*models.Ticket, error) {
	if f.failOps["GetByID"] {
		return nil, errors.New("storage failure")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	ticket, ok := f.tickets[id]
	if !ok {
		return nil, models.ErrTicketNotFound
	}
	copied := *ticket
	return &copied, nil
}

func (f *fakeTicketRepo) List() ([]*models.Ticket, error) {
	if f.failOps["List"] {
		return nil, errors.New("storage failure")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var tickets []*models.Ticket
	for _, id := range f.order {
		copied := *f.tickets[id]
		tickets = append(tickets, &copied)
	}
	return tickets, nil
}

func (f *fakeTicketRepo) ListByEvent(eventID int64) ([]*models.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var tickets []*models.Ticket
	for _, id := range f.order {
		if f.tickets[id].EventID == eventID {
			copied := *f.tickets[id]
			tickets = append(tickets, &copied)
		}
	}
	return tickets, nil
}

func (f *fakeTicketRepo) Redeem(id string, usedAt time.Time) (*models.Ticket, error) {
	if f.failOps["Redeem"] {
		return nil, errors.New("storage failure")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	ticket, ok := f.tickets[id]
	if !ok || ticket.Status != models.TicketUnused {
		return nil, nil
	}

	ticket.Status = models.TicketUsed
	ticket.UsedAt = &usedAt
	copied := *ticket
	return &copied, nil
}

func (f *fakeTicketRepo) Totals() (*models.Stats, error) {
	if f.failOps["Totals"] {
		return nil, errors.New("storage failure")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	stats := &models.Stats{}
	for _, ticket := range f.tickets {
		stats.TotalTickets++
		if ticket.Status == models.TicketUsed {
			stats.TicketsUsed++
		}
		stats.GrossSales += ticket.PricePaid
		stats.NetRevenue += ticket.NetRevenue
		stats.TotalFeesCollected += ticket.PlatformFee
	}
	return stats, nil
}

func (f *fakeTicketRepo) TotalsByEvent() ([]*models.EventStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	byEvent := make(map[int64]*models.EventStats)
	var eventOrder []int64
	for _, id := range f.order {
		ticket := f.tickets[id]
		es, ok := byEvent[ticket.EventID]
		if !ok {
			es = &models.EventStats{EventID: ticket.EventID, EventName: ticket.EventName}
			byEvent[ticket.EventID] = es
			eventOrder = append(eventOrder, ticket.EventID)
		}
		es.TicketsIssued++
		if ticket.Status == models.TicketUsed {
			es.TicketsUsed++
		}
		es.GrossSales += ticket.PricePaid
		es.NetRevenue += ticket.NetRevenue
		es.FeesCollected += ticket.PlatformFee
	}

	var totals []*models.EventStats
	for _, eventID := range eventOrder {
		totals = append(totals, byEvent[eventID])
	}
	return totals, nil
}

// newTestEvent stores an event with the given pricing and returns it
func newTestEvent(t interface{ Fatalf(string, ...any) }, repo *fakeEventRepo, price int, currency string, model models.FeeModel) *models.Event {
	event, err := repo.Create(&models.EventCreateRequest{
		Name:     "Tech Conference 2024",
		Date:     "2024-11-15",
		Location: "San Francisco, CA",
		Price:    price,
		Currency: currency,
		FeeModel: model,
	})
	if err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}
	return event
}
