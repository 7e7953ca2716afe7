package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/utils"
)

// RosterListener holds a dedicated connection in LISTEN mode on the roster
// channel and fans incoming notifications out to subscribers.
type RosterListener struct {
	pool        *pgxpool.Pool
	subscribe   chan chan models.RosterEvent
	unsubscribe chan chan models.RosterEvent
}

func NewRosterListener(pool *pgxpool.Pool) *RosterListener {
	return &RosterListener{
		pool:        pool,
		subscribe:   make(chan chan models.RosterEvent),
		unsubscribe: make(chan chan models.RosterEvent),
	}
}

// Subscribe registers a new subscriber. The returned channel receives roster
// events until the context is done; slow subscribers have events dropped
// rather than blocking the feed.
func (l *RosterListener) Subscribe(ctx context.Context) chan models.RosterEvent {
	events := make(chan models.RosterEvent, 16)
	l.subscribe <- events
	go func() {
		<-ctx.Done()
		l.unsubscribe <- events
	}()
	return events
}

// Run blocks, listening for notifications until the context is cancelled. The
// LISTEN connection is re-acquired after failures with a fixed backoff.
func (l *RosterListener) Run(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)

	notifications := make(chan models.RosterEvent, 16)
	go l.dispatch(ctx, notifications)

	for {
		if err := l.listen(ctx, notifications); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.WarnContext(ctx, "roster listener connection lost, reconnecting",
				"error", err.Error())
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
		}
	}
}

func (l *RosterListener) listen(ctx context.Context, notifications chan<- models.RosterEvent) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire roster listener connection")
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+RosterChannel); err != nil {
		return errors.Wrap(err, "failed to LISTEN on roster channel")
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var payload struct {
			MemberId  string `json:"member_id"`
			Operation string `json:"operation"`
		}
		if err := json.Unmarshal([]byte(notification.Payload), &payload); err != nil {
			utils.LoggerFromContext(ctx).WarnContext(ctx,
				"discarding malformed roster notification", "payload", notification.Payload)
			continue
		}

		notifications <- models.RosterEvent{
			MemberId:  payload.MemberId,
			Operation: payload.Operation,
			At:        time.Now(),
		}
	}
}

func (l *RosterListener) dispatch(ctx context.Context, notifications <-chan models.RosterEvent) {
	subscribers := make(map[chan models.RosterEvent]struct{})

	for {
		select {
		case <-ctx.Done():
			for sub := range subscribers {
				close(sub)
			}
			return
		case sub := <-l.subscribe:
			subscribers[sub] = struct{}{}
		case sub := <-l.unsubscribe:
			if _, ok := subscribers[sub]; ok {
				delete(subscribers, sub)
				close(sub)
			}
		case event := <-notifications:
			for sub := range subscribers {
				select {
				case sub <- event:
				default:
				}
			}
		}
	}
}
