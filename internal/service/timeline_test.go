package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/visualgenius/server/internal/domain"
)

func TestAppendEntryValidation(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)
	ctx := context.Background()
	session := createTestSession(t, svc)

	_, err := svc.AppendEntry(ctx, "", domain.TimelineEntry{Speaker: domain.SpeakerParent, Transcript: "hi"})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AppendEntry(ctx, session.ID, domain.TimelineEntry{Transcript: "hi"})
	require.ErrorIs(t, err, domain.ErrValidation)

	// At least one of card, transcript, or recording must be present.
	_, err = svc.AppendEntry(ctx, session.ID, domain.TimelineEntry{Speaker: domain.SpeakerParent})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AppendEntry(ctx, "nope", domain.TimelineEntry{Speaker: domain.SpeakerParent, Transcript: "hi"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppendEntryDefaultsAndRoundTrip(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)
	ctx := context.Background()
	session := createTestSession(t, svc)

	entry, err := svc.AppendEntry(ctx, session.ID, domain.TimelineEntry{
		Speaker:      domain.SpeakerChild,
		Transcript:   "I want juice",
		RecordingURL: "https://recordings.test/1.webm",
	})
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)
	require.False(t, entry.CreatedAt.IsZero())

	timeline, err := svc.GetTimeline(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, timeline, 1)
	require.Equal(t, "I want juice", timeline[0].Transcript)
	require.Equal(t, "https://recordings.test/1.webm", timeline[0].RecordingURL)

	require.NoError(t, svc.ClearTimeline(ctx, session.ID))
	timeline, err = svc.GetTimeline(ctx, session.ID)
	require.NoError(t, err)
	require.Empty(t, timeline)
}

func entryAt(speaker domain.Speaker, text string, at time.Time) domain.TimelineEntry {
	return domain.TimelineEntry{Speaker: speaker, Transcript: text, CreatedAt: at}
}

func TestGroupTimelineMergesRapidSameSpeaker(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	groups := GroupTimeline([]domain.TimelineEntry{
		entryAt(domain.SpeakerParent, "first", base),
		entryAt(domain.SpeakerParent, "second", base.Add(2*time.Second)),
		entryAt(domain.SpeakerParent, "third", base.Add(4*time.Second)),
	})

	require.Len(t, groups, 1)
	require.Equal(t, domain.SpeakerParent, groups[0].Speaker)
	require.Equal(t, []string{"first", "second", "third"}, groups[0].Messages)
	require.True(t, groups[0].CreatedAt.Equal(base))
}

func TestGroupTimelineSplitsOnGap(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	groups := GroupTimeline([]domain.TimelineEntry{
		entryAt(domain.SpeakerParent, "first", base),
		entryAt(domain.SpeakerParent, "later", base.Add(6*time.Second)),
	})

	require.Len(t, groups, 2)
	require.Equal(t, []string{"first"}, groups[0].Messages)
	require.Equal(t, []string{"later"}, groups[1].Messages)
}

func TestGroupTimelineSplitsOnSpeakerChange(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	groups := GroupTimeline([]domain.TimelineEntry{
		entryAt(domain.SpeakerParent, "want some juice?", base),
		entryAt(domain.SpeakerChild, "yes", base.Add(1*time.Second)),
		entryAt(domain.SpeakerChild, "please", base.Add(2*time.Second)),
	})

	require.Len(t, groups, 2)
	require.Equal(t, domain.SpeakerParent, groups[0].Speaker)
	require.Equal(t, domain.SpeakerChild, groups[1].Speaker)
	require.Equal(t, []string{"yes", "please"}, groups[1].Messages)
}

func TestGroupTimelineGapMeasuredFromGroupHead(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	// Each entry is 3s after the previous one, but the third is 6s past the
	// group head, so it opens a new group.
	groups := GroupTimeline([]domain.TimelineEntry{
		entryAt(domain.SpeakerParent, "a", base),
		entryAt(domain.SpeakerParent, "b", base.Add(3*time.Second)),
		entryAt(domain.SpeakerParent, "c", base.Add(6*time.Second)),
	})

	require.Len(t, groups, 2)
	require.Equal(t, []string{"a", "b"}, groups[0].Messages)
	require.Equal(t, []string{"c"}, groups[1].Messages)
}

func TestGroupTimelinePrefersCardTitle(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	card := domain.VisualCard{ID: "card-1", Title: "Eat Breakfast"}
	groups := GroupTimeline([]domain.TimelineEntry{
		{Speaker: domain.SpeakerParent, Card: &card, Transcript: "tapped a card", CreatedAt: base},
	})

	require.Len(t, groups, 1)
	require.Equal(t, []string{"Eat Breakfast"}, groups[0].Messages)
}

func TestGroupTimelineEmpty(t *testing.T) {
	groups := GroupTimeline(nil)
	require.NotNil(t, groups)
	require.Empty(t, groups)
}
