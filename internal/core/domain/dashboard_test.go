package domain

import (
	"testing"
	"time"
)

func TestMergeActivity_SortsAndTruncates(t *testing.T) {
	base := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	var events, inquiries []ActivityItem
	for i := 0; i < 5; i++ {
		events = append(events, ActivityItem{Type: "event", Time: base.Add(time.Duration(2*i) * time.Minute)})
		inquiries = append(inquiries, ActivityItem{Type: "inquiry", Time: base.Add(time.Duration(2*i+1) * time.Minute)})
	}

	got := MergeActivity(ActivityFeedLimit, events, inquiries)
	if len(got) != ActivityFeedLimit {
		t.Fatalf("expected %d items, got %d", ActivityFeedLimit, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Time.After(got[i-1].Time) {
			t.Fatalf("feed not sorted descending at %d: %v after %v", i, got[i].Time, got[i-1].Time)
		}
	}
	if got[0].Type != "inquiry" || !got[0].Time.Equal(base.Add(9*time.Minute)) {
		t.Fatalf("unexpected head: %+v", got[0])
	}
}

func TestMergeActivity_StableOnEqualTimes(t *testing.T) {
	ts := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	got := MergeActivity(ActivityFeedLimit,
		[]ActivityItem{{Type: "event", Time: ts}},
		[]ActivityItem{{Type: "inquiry", Time: ts}},
	)
	if len(got) != 2 || got[0].Type != "event" || got[1].Type != "inquiry" {
		t.Fatalf("expected input order kept for ties, got %+v", got)
	}
}

func TestMergeActivity_EmptyIsNonNil(t *testing.T) {
	got := MergeActivity(ActivityFeedLimit)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestActivityLabels(t *testing.T) {
	ev := EventActivity(&Event{Title: "Orientation"})
	if ev.Subtitle != "Event created by Admin" || ev.Icon != "event" {
		t.Fatalf("unexpected event item: %+v", ev)
	}
	q := InquiryActivity(&Inquiry{Subject: "Fee question", User: UserRef{ID: "u1", Name: "Ana"}})
	if q.Subtitle != "Inquiry from Ana" || q.Icon != "chat" || q.Type != "inquiry" {
		t.Fatalf("unexpected inquiry item: %+v", q)
	}
}
