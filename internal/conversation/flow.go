// Package conversation drives the client-facing turn-taking loop: which
// core operations fire, in what order, and what happens when the user
// pauses or stops mid-flight.
package conversation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/visualgenius/server/internal/domain"
	"github.com/visualgenius/server/internal/service"
)

// State is the local conversation state. Idle precedes any server-side
// session; Active and Paused both have a session and retained cards.
type State string

const (
	StateIdle   State = "idle"
	StateActive State = "active"
	StatePaused State = "paused"
)

// Flow is the turn-taking state machine. It holds the local UI-facing
// state explicitly (no module-level singletons) and keeps it consistent
// with the remote session and persisted timeline through the service.
type Flow struct {
	mu  sync.Mutex
	svc *service.Service

	ownerUserID string
	parentID    string
	childID     string

	sessionID      string
	state          State
	topic          string
	currentSpeaker domain.Speaker
	generatedCards []domain.VisualCard
	timeline       []domain.TimelineEntry

	// genEpoch invalidates in-flight generations: a Stop or a newer Start
	// bumps it, and a stale generation's result is discarded, not an error.
	genEpoch uint64
}

// Snapshot is a copy of the flow state for rendering.
type Snapshot struct {
	SessionID      string
	State          State
	Topic          string
	CurrentSpeaker domain.Speaker
	GeneratedCards []domain.VisualCard
	Timeline       []domain.TimelineEntry
}

// NewFlow creates an idle flow for one parent/child pair.
func NewFlow(svc *service.Service, ownerUserID, parentID, childID string) *Flow {
	return &Flow{
		svc:            svc,
		ownerUserID:    ownerUserID,
		parentID:       parentID,
		childID:        childID,
		state:          StateIdle,
		currentSpeaker: domain.SpeakerParent,
	}
}

// Start moves idle -> active: it requires a topic or non-empty custom
// prompt, creates a session if none exists yet, and generates cards for
// the prompt. If the flow was stopped or restarted while generation was in
// flight, the stale result is discarded and Start returns nil cards.
func (f *Flow) Start(ctx context.Context, topic string) ([]domain.VisualCard, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: a topic or custom prompt is required", domain.ErrValidation)
	}

	f.mu.Lock()
	// Paused conversations go back through Resume or Stop, never a fresh
	// Start; regenerating cards here would bypass the pause.
	if f.state != StateIdle {
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: conversation already started", domain.ErrValidation)
	}

	if f.sessionID == "" {
		session, err := f.svc.CreateSession(ctx, domain.CreateSessionRequest{
			ParentID:    f.parentID,
			ChildID:     f.childID,
			OwnerUserID: f.ownerUserID,
			Topic:       topic,
		})
		if err != nil {
			f.mu.Unlock()
			return nil, err
		}
		f.sessionID = session.ID
	}

	f.state = StateActive
	f.topic = topic
	f.genEpoch++
	epoch := f.genEpoch
	f.mu.Unlock()

	// Generation runs unlocked so Stop stays responsive; the epoch check
	// below decides whether the result is still wanted.
	cards, err := f.svc.GenerateCards(ctx, topic)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.genEpoch != epoch || f.state != StateActive {
		// Superseded or stopped mid-generation; the call completed on its
		// own terms, the result is just no longer relevant.
		return nil, nil
	}
	if err != nil {
		// Prior state stays untouched on failure.
		return nil, err
	}

	f.generatedCards = cards
	return cards, nil
}

// SelectCard records a card selection for the current speaker. Only valid
// while active.
func (f *Flow) SelectCard(ctx context.Context, card domain.VisualCard) error {
	return f.record(ctx, domain.TimelineEntry{Card: &card})
}

// QuickResponse records a quick-response text turn for the current speaker.
func (f *Flow) QuickResponse(ctx context.Context, text string) error {
	return f.record(ctx, domain.TimelineEntry{Transcript: text})
}

func (f *Flow) record(ctx context.Context, entry domain.TimelineEntry) error {
	f.mu.Lock()
	if f.state != StateActive {
		f.mu.Unlock()
		return fmt.Errorf("%w: conversation is not active", domain.ErrValidation)
	}
	sessionID := f.sessionID
	entry.Speaker = f.currentSpeaker
	entry.CreatedAt = time.Now()
	f.mu.Unlock()

	recorded, err := f.svc.AppendEntry(ctx, sessionID, entry)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.timeline = append(f.timeline, *recorded)
	return nil
}

// SwitchSpeaker flips the current speaker. The one-tap switch is the only
// way turns alternate.
func (f *Flow) SwitchSpeaker() domain.Speaker {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.currentSpeaker == domain.SpeakerParent {
		f.currentSpeaker = domain.SpeakerChild
	} else {
		f.currentSpeaker = domain.SpeakerParent
	}
	return f.currentSpeaker
}

// Pause suspends the exchange; cards are retained.
func (f *Flow) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateActive {
		return fmt.Errorf("%w: can only pause an active conversation", domain.ErrValidation)
	}
	f.state = StatePaused
	return nil
}

// Resume returns a paused exchange to active.
func (f *Flow) Resume() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StatePaused {
		return fmt.Errorf("%w: can only resume a paused conversation", domain.ErrValidation)
	}
	f.state = StateActive
	return nil
}

// Stop discards generated cards and the chosen topic and returns to idle.
// Already-recorded timeline entries are never deleted by Stop.
func (f *Flow) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateIdle
	f.topic = ""
	f.generatedCards = nil
	f.genEpoch++
}

// ClearHistory clears the session's stored timeline and the local cache.
// Distinct, explicit action; Stop never does this.
func (f *Flow) ClearHistory(ctx context.Context) error {
	f.mu.Lock()
	sessionID := f.sessionID
	f.mu.Unlock()

	if sessionID == "" {
		return nil
	}
	if err := f.svc.ClearTimeline(ctx, sessionID); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.timeline = nil
	return nil
}

// Snapshot returns a copy of the current state.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		SessionID:      f.sessionID,
		State:          f.state,
		Topic:          f.topic,
		CurrentSpeaker: f.currentSpeaker,
		GeneratedCards: append([]domain.VisualCard(nil), f.generatedCards...),
		Timeline:       append([]domain.TimelineEntry(nil), f.timeline...),
	}
}
