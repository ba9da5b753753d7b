package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dto "github.com/avamus/visionboard/internal/adapter/dto/calllog"
	"github.com/avamus/visionboard/internal/domain/entities"
	"github.com/avamus/visionboard/internal/domain/repositories"
	calllogUsecase "github.com/avamus/visionboard/internal/usecase/calllog"
	pkgvalidator "github.com/avamus/visionboard/pkg/validator"
)

// stubService is an in-memory calllog.Service for handler tests.
type stubService struct {
	byMember map[string][]*entities.CallLog
	byID     map[int64]*entities.CallLog
	nextID   int64
	listErr  error
}

func newStubService() *stubService {
	return &stubService{
		byMember: make(map[string][]*entities.CallLog),
		byID:     make(map[int64]*entities.CallLog),
	}
}

func (s *stubService) seed(memberID string, dates ...time.Time) []*entities.CallLog {
	logs := make([]*entities.CallLog, 0, len(dates))
	for _, d := range dates {
		l := &entities.CallLog{
			MemberID:   memberID,
			CallDate:   d,
			CallNumber: len(s.byMember[memberID]) + 1,
		}
		s.nextID++
		l.ID = s.nextID
		s.byMember[memberID] = append(s.byMember[memberID], l)
		s.byID[l.ID] = l
		logs = append(logs, l)
	}
	return logs
}

func (s *stubService) ListCalls(_ context.Context, memberID string) ([]*entities.CallLog, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.byMember[memberID], nil
}

func (s *stubService) GetCall(_ context.Context, id int64) (*entities.CallLog, error) {
	l, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (s *stubService) AddCall(_ context.Context, memberID string, input calllogUsecase.NewCallInput) (*entities.CallLog, error) {
	s.nextID++
	l := &entities.CallLog{
		ID:         s.nextID,
		MemberID:   memberID,
		CallNumber: len(s.byMember[memberID]) + 1,
		CallDate:   input.CallDate,
		CallNotes:  input.CallNotes,
	}
	s.byMember[memberID] = append(s.byMember[memberID], l)
	s.byID[l.ID] = l
	return l, nil
}

func (s *stubService) UpdateCall(_ context.Context, id int64, patch repositories.CallLogPatch) (*entities.CallLog, error) {
	l, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if patch.CallNotes != nil {
		l.CallNotes = *patch.CallNotes
	}
	if patch.Scores.Engagement != nil {
		l.EngagementScore = patch.Scores.Engagement
	}
	return l, nil
}

func (s *stubService) SaveNotes(ctx context.Context, id int64, notes string) (*entities.CallLog, error) {
	return s.UpdateCall(ctx, id, repositories.CallLogPatch{CallNotes: &notes})
}

func (s *stubService) DeleteCall(_ context.Context, id int64) error {
	l, ok := s.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.byID, id)
	logs := s.byMember[l.MemberID]
	for i, cur := range logs {
		if cur.ID == id {
			s.byMember[l.MemberID] = append(logs[:i], logs[i+1:]...)
			break
		}
	}
	return nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func setupDashboard(t *testing.T, svc *stubService) *echo.Echo {
	t.Helper()
	e := newTestEcho()
	h := NewDashboardHandler(svc, zap.NewNop())
	e.GET("/api/dashboard", h.ListCalls)
	e.POST("/api/dashboard", h.AddCall)
	e.PUT("/api/dashboard", h.UpdateCall)
	e.DELETE("/api/dashboard", h.DeleteCall)
	return e
}

func TestListCalls_MissingMemberID(t *testing.T) {
	e := setupDashboard(t, newStubService())

	rec := doRequest(e, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Member ID required" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestListCalls_ReturnsMemberCalls(t *testing.T) {
	svc := newStubService()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.seed("member-1", base, base.AddDate(0, 0, 1))
	svc.seed("member-2", base)
	e := setupDashboard(t, svc)

	rec := doRequest(e, http.MethodGet, "/api/dashboard?memberId=member-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body []dto.CallLogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 records, got %d", len(body))
	}
	if body[0].CallNumber != 1 || body[1].CallNumber != 2 {
		t.Fatalf("unexpected call numbers: %d, %d", body[0].CallNumber, body[1].CallNumber)
	}
}

func TestAddCall_MissingFields(t *testing.T) {
	e := setupDashboard(t, newStubService())

	cases := []struct {
		name string
		body string
	}{
		{"missing member id", `{"callData":{}}`},
		{"missing call data", `{"memberId":"member-1"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/dashboard", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAddCall_InsertsRecord(t *testing.T) {
	svc := newStubService()
	e := setupDashboard(t, svc)

	rec := doRequest(e, http.MethodPost, "/api/dashboard",
		`{"memberId":"member-1","callData":{"call_notes":"follow up"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body dto.CallLogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.CallNumber != 1 {
		t.Fatalf("expected call number 1, got %d", body.CallNumber)
	}
	if body.CallNotes != "follow up" {
		t.Fatalf("unexpected notes: %q", body.CallNotes)
	}
}

func TestUpdateCall_MissingID(t *testing.T) {
	e := setupDashboard(t, newStubService())

	rec := doRequest(e, http.MethodPut, "/api/dashboard", `{"call_notes":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateCall_UnknownID(t *testing.T) {
	e := setupDashboard(t, newStubService())

	rec := doRequest(e, http.MethodPut, "/api/dashboard?id=42", `{"call_notes":"x"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Call log not found" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestUpdateCall_PartialMerge(t *testing.T) {
	svc := newStubService()
	logs := svc.seed("member-1", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	logs[0].CallNotes = "original"
	e := setupDashboard(t, svc)

	rec := doRequest(e, http.MethodPut, "/api/dashboard?id=1", `{"scores":{"engagement":85}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body dto.CallLogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Scores.Engagement == nil || *body.Scores.Engagement != 85 {
		t.Fatalf("expected engagement 85, got %v", body.Scores.Engagement)
	}
	if body.CallNotes != "original" {
		t.Fatalf("notes should be untouched, got %q", body.CallNotes)
	}
}

func TestDeleteCall(t *testing.T) {
	svc := newStubService()
	svc.seed("member-1", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	e := setupDashboard(t, svc)

	rec := doRequest(e, http.MethodDelete, "/api/dashboard?id=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body dto.DeleteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success true")
	}

	// Deleting again reports not found.
	rec = doRequest(e, http.MethodDelete, "/api/dashboard?id=1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestDeleteCall_MissingID(t *testing.T) {
	e := setupDashboard(t, newStubService())

	rec := doRequest(e, http.MethodDelete, "/api/dashboard", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Call ID required" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}
