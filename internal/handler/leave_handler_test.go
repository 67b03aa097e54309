package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"hrms-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type mockLeaveRepo struct {
	leaves []model.Leave
	nextID uint
}

func (m *mockLeaveRepo) GetAll() ([]model.Leave, error) { return m.leaves, nil }

func (m *mockLeaveRepo) GetByID(id uint) (*model.Leave, error) {
	for i := range m.leaves {
		if m.leaves[i].ID == id {
			leave := m.leaves[i]
			return &leave, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLeaveRepo) Create(leave *model.Leave) error {
	m.nextID++
	leave.ID = m.nextID
	m.leaves = append(m.leaves, *leave)
	return nil
}

func (m *mockLeaveRepo) Update(leave *model.Leave) error {
	for i := range m.leaves {
		if m.leaves[i].ID == leave.ID {
			m.leaves[i] = *leave
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockLeaveRepo) Delete(id uint) error {
	kept := m.leaves[:0]
	for _, leave := range m.leaves {
		if leave.ID != id {
			kept = append(kept, leave)
		}
	}
	m.leaves = kept
	return nil
}

func (m *mockLeaveRepo) CountByStatus(status string) (int64, error) {
	var n int64
	for _, leave := range m.leaves {
		if leave.Status == status {
			n++
		}
	}
	return n, nil
}

type mockNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (m *mockNotifier) SendLeaveDecision(to, fullname, leaveType, startDate, endDate, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, fmt.Sprintf("%s:%s", to, status))
}

func leaveTestApp(repo *mockLeaveRepo, notifier LeaveNotifier) *fiber.App {
	app := fiber.New()
	// Stand-in for the auth middleware's claim extraction
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("email", "boss@example.com")
		return c.Next()
	})

	hdl := NewLeaveHandler(repo, notifier)
	api := app.Group("/api/leaves")
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Patch("/:id/status", hdl.UpdateStatus)
	api.Delete("/:id", hdl.Delete)
	return app
}

func jsonRequest(method, target string, payload any) *http.Request {
	var req *http.Request
	if payload != nil {
		raw, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeLeave(t *testing.T, resp *http.Response) model.Leave {
	t.Helper()
	var body struct {
		Data model.Leave `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body.Data
}

func TestLeaveCreate_DerivesDuration(t *testing.T) {
	repo := &mockLeaveRepo{}
	app := leaveTestApp(repo, nil)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/leaves/", model.Leave{
		EmployeeID: 1,
		Type:       "Vacation",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-05",
	}), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	leave := decodeLeave(t, resp)
	if leave.Duration != 5 {
		t.Errorf("expected derived duration 5, got %d", leave.Duration)
	}
	if leave.Status != "Pending" {
		t.Errorf("new leave should default to Pending, got %q", leave.Status)
	}
	if leave.ID == 0 {
		t.Error("identifier should be assigned by the server")
	}
}

func TestLeaveCreate_RejectsUnknownType(t *testing.T) {
	app := leaveTestApp(&mockLeaveRepo{}, nil)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/leaves/", model.Leave{
		EmployeeID: 1,
		Type:       "Sabbatical",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-02",
	}), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLeaveUpdateStatus_RecordsApproverAndNotifies(t *testing.T) {
	employee := &model.Employee{
		Model:    gorm.Model{ID: 2},
		Fullname: "Priya Nair",
		Email:    "priya@example.com",
	}
	repo := &mockLeaveRepo{
		leaves: []model.Leave{{
			Model:      gorm.Model{ID: 1},
			EmployeeID: 2,
			Type:       "Sick",
			StartDate:  "2024-02-01",
			EndDate:    "2024-02-02",
			Status:     "Pending",
			Employee:   employee,
		}},
		nextID: 1,
	}
	notifier := &mockNotifier{}
	app := leaveTestApp(repo, notifier)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/leaves/1/status",
		map[string]string{"status": "Approved"}), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	leave := decodeLeave(t, resp)
	if leave.Status != "Approved" {
		t.Errorf("expected Approved, got %q", leave.Status)
	}
	if leave.ApprovedBy != "boss@example.com" {
		t.Errorf("approver should come from the JWT claims, got %q", leave.ApprovedBy)
	}

	// Notification runs in a goroutine
	deadline := time.Now().Add(time.Second)
	for {
		notifier.mu.Lock()
		n := len(notifier.calls)
		notifier.mu.Unlock()
		if n > 0 || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.calls) != 1 || notifier.calls[0] != "priya@example.com:Approved" {
		t.Errorf("expected one notification to the employee, got %v", notifier.calls)
	}
}

func TestLeaveUpdateStatus_UnknownID(t *testing.T) {
	app := leaveTestApp(&mockLeaveRepo{}, nil)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/leaves/42/status",
		map[string]string{"status": "Approved"}), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestLeaveDelete_RemovesRecord(t *testing.T) {
	repo := &mockLeaveRepo{
		leaves: []model.Leave{{Model: gorm.Model{ID: 1}, EmployeeID: 2, Type: "Sick"}},
		nextID: 1,
	}
	app := leaveTestApp(repo, nil)

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/leaves/1", nil), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(repo.leaves) != 0 {
		t.Errorf("record should be removed, got %+v", repo.leaves)
	}
}
