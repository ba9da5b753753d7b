package calllog

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avamus/visionboard/internal/domain/entities"
	"github.com/avamus/visionboard/internal/domain/repositories"
)

// stubRepo is an in-memory CallLogRepository honoring the interface
// contract: ascending call_date listing and per-member call_number
// assignment.
type stubRepo struct {
	logs   []*entities.CallLog
	nextID int64

	lastPatch *repositories.CallLogPatch
}

func (r *stubRepo) ListByMember(ctx context.Context, memberID string) ([]*entities.CallLog, error) {
	var out []*entities.CallLog
	for _, l := range r.logs {
		if l.MemberID == memberID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubRepo) FindByID(ctx context.Context, id int64) (*entities.CallLog, error) {
	for _, l := range r.logs {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) Insert(ctx context.Context, log *entities.CallLog) error {
	max := 0
	for _, l := range r.logs {
		if l.MemberID == log.MemberID && l.CallNumber > max {
			max = l.CallNumber
		}
	}
	r.nextID++
	log.ID = r.nextID
	log.CallNumber = max + 1
	r.logs = append(r.logs, log)
	return nil
}

func (r *stubRepo) UpdatePartial(ctx context.Context, id int64, patch repositories.CallLogPatch) (*entities.CallLog, error) {
	r.lastPatch = &patch
	for _, l := range r.logs {
		if l.ID == id {
			if patch.CallNotes != nil {
				l.CallNotes = *patch.CallNotes
			}
			if patch.Scores.Engagement != nil {
				l.EngagementScore = patch.Scores.Engagement
			}
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) Delete(ctx context.Context, id int64) (*entities.CallLog, error) {
	for i, l := range r.logs {
		if l.ID == id {
			r.logs = append(r.logs[:i], r.logs[i+1:]...)
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubCache struct {
	lists       map[string][]*entities.CallLog
	invalidated []string
}

func newStubCache() *stubCache {
	return &stubCache{lists: make(map[string][]*entities.CallLog)}
}

func (c *stubCache) GetCalls(ctx context.Context, memberID string) ([]*entities.CallLog, bool) {
	logs, ok := c.lists[memberID]
	return logs, ok
}

func (c *stubCache) SetCalls(ctx context.Context, memberID string, logs []*entities.CallLog) {
	c.lists[memberID] = logs
}

func (c *stubCache) Invalidate(ctx context.Context, memberID string) {
	delete(c.lists, memberID)
	c.invalidated = append(c.invalidated, memberID)
}

func newService(repo *stubRepo, cache CallListCache) *CallLogService {
	return NewCallLogService(repo, cache, zap.NewNop())
}

func TestAddCall_AssignsSequentialCallNumbers(t *testing.T) {
	repo := &stubRepo{}
	svc := newService(repo, nil)
	ctx := context.Background()

	first, err := svc.AddCall(ctx, "member-1", NewCallInput{CallDate: time.Now()})
	if err != nil {
		t.Fatalf("AddCall: %v", err)
	}
	if first.CallNumber != 1 {
		t.Errorf("first call_number = %d, want 1 for empty member", first.CallNumber)
	}

	second, err := svc.AddCall(ctx, "member-1", NewCallInput{CallDate: time.Now()})
	if err != nil {
		t.Fatalf("AddCall: %v", err)
	}
	if second.CallNumber != 2 {
		t.Errorf("second call_number = %d, want 2", second.CallNumber)
	}

	other, err := svc.AddCall(ctx, "member-2", NewCallInput{CallDate: time.Now()})
	if err != nil {
		t.Fatalf("AddCall: %v", err)
	}
	if other.CallNumber != 1 {
		t.Errorf("other member's first call_number = %d, want independent sequence", other.CallNumber)
	}
}

func TestListCalls_CachesPerMember(t *testing.T) {
	repo := &stubRepo{}
	cache := newStubCache()
	svc := newService(repo, cache)
	ctx := context.Background()

	if _, err := svc.AddCall(ctx, "member-1", NewCallInput{CallDate: time.Now()}); err != nil {
		t.Fatalf("AddCall: %v", err)
	}

	logs, err := svc.ListCalls(ctx, "member-1")
	if err != nil {
		t.Fatalf("ListCalls: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	if _, ok := cache.lists["member-1"]; !ok {
		t.Error("list must be cached after a read")
	}

	// A write for the member drops the cached list.
	if _, err := svc.AddCall(ctx, "member-1", NewCallInput{CallDate: time.Now()}); err != nil {
		t.Fatalf("AddCall: %v", err)
	}
	if _, ok := cache.lists["member-1"]; ok {
		t.Error("cache must be invalidated after a write")
	}
}

func TestSaveNotes_PatchesOnlyCallNotes(t *testing.T) {
	repo := &stubRepo{}
	svc := newService(repo, nil)
	ctx := context.Background()

	added, err := svc.AddCall(ctx, "member-1", NewCallInput{CallDate: time.Now()})
	if err != nil {
		t.Fatalf("AddCall: %v", err)
	}

	updated, err := svc.SaveNotes(ctx, added.ID, "follow up on pricing")
	if err != nil {
		t.Fatalf("SaveNotes: %v", err)
	}
	if updated.CallNotes != "follow up on pricing" {
		t.Errorf("call_notes = %q", updated.CallNotes)
	}

	p := repo.lastPatch
	if p == nil || p.CallNotes == nil {
		t.Fatal("patch must carry call_notes")
	}
	if p.Scores.Engagement != nil || p.Feedback.Engagement != nil {
		t.Error("notes save must not touch score or feedback fields")
	}
}

func TestDeleteCall_NotFound(t *testing.T) {
	repo := &stubRepo{}
	svc := newService(repo, nil)

	if err := svc.DeleteCall(context.Background(), 99); err != gorm.ErrRecordNotFound {
		t.Fatalf("DeleteCall unknown id: err = %v, want gorm.ErrRecordNotFound", err)
	}
}
