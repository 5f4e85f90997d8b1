// Package store persists the seller's local marketplace data: products,
// the artisan profile, and marketing campaigns. Everything is an
// append-only event log in embedded JetStream; current state is rebuilt by
// reducing the log on read.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/janhvi-crypto/CraftConnect/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Event is one append-only record in the event log. All writes (product
// publishes, profile changes, campaign updates) are stored as events and
// reduced into State on read.
type Event struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Entity    string          `json:"entity"` // product, profile, campaign
	Action    string          `json:"action"` // create, set, update, ...
	Data      json.RawMessage `json:"data"`   // entity payload
}

// Store reads and appends marketplace events through JetStream.
type Store struct {
	js     jetstream.JetStream
	stream jetstream.Stream
}

// NewStore creates a Store over an existing JetStream context and stream.
func NewStore(js jetstream.JetStream, stream jetstream.Stream) *Store {
	return &Store{js: js, stream: stream}
}

// Handle bundles the embedded server, connection, and Store for callers
// that own the whole lifecycle (the CLI commands). Close shuts everything
// down in order.
type Handle struct {
	Store *Store

	ns *server.Server
	nc *nats.Conn
}

// Open starts the embedded server against dataDir and returns a ready
// Handle.
func Open(ctx context.Context, dataDir string) (*Handle, error) {
	ns, err := StartEmbeddedNATS(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to start embedded server: %w", err)
	}

	nc, err := ConnectInProcess(ns)
	if err != nil {
		ns.Shutdown()
		return nil, fmt.Errorf("failed to connect in-process: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		Shutdown(nc, ns)
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	stream, err := SetupStream(ctx, js)
	if err != nil {
		Shutdown(nc, ns)
		return nil, fmt.Errorf("failed to set up stream: %w", err)
	}

	return &Handle{Store: NewStore(js, stream), ns: ns, nc: nc}, nil
}

// Close drains the connection and stops the embedded server.
func (h *Handle) Close() error {
	return Shutdown(h.nc, h.ns)
}

// PublishEvent appends an event to the log. The subject follows the
// pattern craftconnect.{entity}.{action}.
func (s *Store) PublishEvent(ctx context.Context, event Event) (*jetstream.PubAck, error) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event: %v", err)
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := SubjectForEntity(event.Entity, event.Action)
	logger.Debug("Publishing event: entity=%s action=%s id=%s", event.Entity, event.Action, event.ID)

	ack, err := s.js.Publish(ctx, subject, data)
	if err != nil {
		logger.Error("Failed to publish event to subject %s: %v", subject, err)
		return nil, fmt.Errorf("failed to publish event: %w", err)
	}

	return ack, nil
}

// State is the reduced view of the event log.
type State struct {
	Products  []*Product  `json:"products"`  // chronological, oldest first
	Profile   *Artisan    `json:"profile"`   // nil until setup has run
	Campaigns []*Campaign `json:"campaigns"` // chronological, oldest first
}

// Apply reduces one event into the state.
func (st *State) Apply(event Event) {
	switch event.Entity {
	case EntityProduct:
		st.applyProductEvent(event)
	case EntityProfile:
		st.applyProfileEvent(event)
	case EntityCampaign:
		st.applyCampaignEvent(event)
	}
}

func (st *State) applyProductEvent(event Event) {
	switch event.Action {
	case "create":
		var p Product
		if err := json.Unmarshal(event.Data, &p); err != nil {
			logger.Warn("Skipping malformed product event %s: %v", event.ID, err)
			return
		}
		if p.ID == "" {
			p.ID = event.ID
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = event.Timestamp
		}
		st.Products = append(st.Products, &p)
	}
}

func (st *State) applyProfileEvent(event Event) {
	switch event.Action {
	case "set":
		var a Artisan
		if err := json.Unmarshal(event.Data, &a); err != nil {
			logger.Warn("Skipping malformed profile event %s: %v", event.ID, err)
			return
		}
		if a.JoinedAt.IsZero() {
			a.JoinedAt = event.Timestamp
		}
		// Last write wins; the identity and JoinedAt of the first set
		// survive replacements.
		if st.Profile != nil {
			a.ID = st.Profile.ID
			a.JoinedAt = st.Profile.JoinedAt
		}
		st.Profile = &a
	}
}

func (st *State) applyCampaignEvent(event Event) {
	switch event.Action {
	case "create":
		var c Campaign
		if err := json.Unmarshal(event.Data, &c); err != nil {
			logger.Warn("Skipping malformed campaign event %s: %v", event.ID, err)
			return
		}
		if c.ID == "" {
			c.ID = event.ID
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = event.Timestamp
		}
		st.Campaigns = append(st.Campaigns, &c)
	}
}

// LoadState reconstructs current state by reading and reducing the whole
// event log.
func (s *Store) LoadState(ctx context.Context) (*State, error) {
	consumer, err := s.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject: "craftconnect.>",
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		logger.Error("Failed to create consumer: %v", err)
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	state := &State{}

	const batchSize = 1000
	malformed := 0
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		count := 0
		for msg := range msgs.Messages() {
			count++
			var event Event
			if err := json.Unmarshal(msg.Data(), &event); err != nil {
				malformed++
				meta, _ := msg.Metadata()
				logger.Warn("Skipping malformed event (seq=%d): %v", meta.Sequence.Stream, err)
				msg.Ack()
				continue
			}
			if event.ID == "" {
				meta, _ := msg.Metadata()
				event.ID = fmt.Sprintf("%d", meta.Sequence.Stream)
			}
			state.Apply(event)
			msg.Ack()
		}

		if count < batchSize {
			break
		}
	}

	if malformed > 0 {
		logger.Warn("Skipped %d malformed events while loading state", malformed)
	}

	logger.Debug("State loaded: %d products, %d campaigns, profile=%v",
		len(state.Products), len(state.Campaigns), state.Profile != nil)

	return state, nil
}
