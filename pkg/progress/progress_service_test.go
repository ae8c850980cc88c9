package progress

import (
	"MacroTrackr-Bot/domain"
	"MacroTrackr-Bot/entities"
	"context"
	"strings"
	"testing"
	"time"
)

// stubMealService feeds Snapshot a fixed ledger total.
type stubMealService struct {
	total      int
	resetOK    bool
	lastWindow domain.DayWindow
}

func (s *stubMealService) Store(ctx context.Context, userID int64, userName string, calories int, analysisText, photoURL string) bool {
	return true
}

func (s *stubMealService) DailyTotal(ctx context.Context, userID int64, window domain.DayWindow) int {
	s.lastWindow = window
	return s.total
}

func (s *stubMealService) ResetWindow(ctx context.Context, userID int64, window domain.DayWindow) bool {
	s.lastWindow = window
	return s.resetOK
}

func (s *stubMealService) DeleteLast(ctx context.Context, userID int64) (*entities.MealEntry, bool) {
	return nil, false
}

func TestSnapshotRoundsAndFloors(t *testing.T) {
	stub := &stubMealService{total: 950}
	svc := NewProgressService(stub, Config{TargetCalories: 1350, BoundaryHour: 5, BarLength: 20})

	snap := svc.Snapshot(context.Background(), 42, time.Now())

	if snap.TotalCalories != 950 {
		t.Fatalf("TotalCalories = %d, want 950", snap.TotalCalories)
	}
	if snap.Percentage != 70 {
		t.Fatalf("Percentage = %d, want 70 (rounded from 70.37)", snap.Percentage)
	}
	if snap.RemainingCalories != 400 {
		t.Fatalf("RemainingCalories = %d, want 400", snap.RemainingCalories)
	}
}

func TestSnapshotCapsOvershoot(t *testing.T) {
	stub := &stubMealService{total: 1500}
	svc := NewProgressService(stub, Config{TargetCalories: 1350, BoundaryHour: 5, BarLength: 20})

	snap := svc.Snapshot(context.Background(), 42, time.Now())

	if snap.Percentage != 100 {
		t.Fatalf("Percentage = %d, want 100 (capped)", snap.Percentage)
	}
	if snap.RemainingCalories != 0 {
		t.Fatalf("RemainingCalories = %d, want 0 (floored)", snap.RemainingCalories)
	}
}

func TestSnapshotZeroTarget(t *testing.T) {
	stub := &stubMealService{total: 500}
	svc := NewProgressService(stub, Config{TargetCalories: 0, BoundaryHour: 5, BarLength: 20})

	snap := svc.Snapshot(context.Background(), 42, time.Now())

	if snap.Percentage != 0 {
		t.Fatalf("Percentage with zero target = %d, want 0", snap.Percentage)
	}
}

func TestSnapshotQueriesCurrentWindow(t *testing.T) {
	stub := &stubMealService{total: 0}
	svc := NewProgressService(stub, Config{TargetCalories: 1350, BoundaryHour: 21, BarLength: 20})

	now := time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC)
	svc.Snapshot(context.Background(), 42, now)

	wantStart := time.Date(2024, 1, 14, 21, 0, 0, 0, time.UTC)
	if !stub.lastWindow.Start.Equal(wantStart) {
		t.Fatalf("window start = %s, want %s", stub.lastWindow.Start, wantStart)
	}
}

func TestResetDelegatesToLedger(t *testing.T) {
	stub := &stubMealService{resetOK: true}
	svc := NewProgressService(stub, Config{TargetCalories: 1350, BoundaryHour: 5, BarLength: 20})

	if !svc.Reset(context.Background(), 42, time.Now()) {
		t.Fatal("Reset reported failure")
	}
	if !stub.lastWindow.Contains(time.Now()) {
		t.Fatalf("Reset used window %+v which does not contain now", stub.lastWindow)
	}
}

func TestBarRendering(t *testing.T) {
	bar := Bar(70, 20)

	if !strings.HasPrefix(bar, "[") || !strings.HasSuffix(bar, "]") {
		t.Fatalf("bar %q missing brackets", bar)
	}
	if got := strings.Count(bar, "█"); got != 14 {
		t.Fatalf("filled cells = %d, want 14", got)
	}
	if got := strings.Count(bar, "░"); got != 6 {
		t.Fatalf("empty cells = %d, want 6", got)
	}
}

func TestBarEdges(t *testing.T) {
	if got := Bar(0, 20); strings.Count(got, "█") != 0 || strings.Count(got, "░") != 20 {
		t.Fatalf("Bar(0) = %q, want all empty", got)
	}
	if got := Bar(100, 20); strings.Count(got, "█") != 20 || strings.Count(got, "░") != 0 {
		t.Fatalf("Bar(100) = %q, want all filled", got)
	}
}
