package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func testForm(t *testing.T, api *mockAPI) (*Form[rec], *Store[rec]) {
	t.Helper()
	s := New[rec](api)
	t.Cleanup(s.Close)

	defaults := map[string]string{"status": "Pending"}
	seed := func(r rec) map[string]string {
		return map[string]string{"status": r.Status}
	}
	shape := func(buffer map[string]string) (any, error) {
		if buffer["status"] == "" {
			return nil, fmt.Errorf("status is required")
		}
		return rec{Status: buffer["status"]}, nil
	}
	return NewForm(s, defaults, seed, shape), s
}

func TestForm_OpenSeedsDefaults(t *testing.T) {
	f, _ := testForm(t, &mockAPI{})

	f.Open()
	if f.State() != Creating {
		t.Fatalf("expected Creating, got %v", f.State())
	}
	if f.Get("status") != "Pending" {
		t.Errorf("buffer should carry field defaults, got %q", f.Get("status"))
	}
	if f.EditingID() != 0 {
		t.Error("create flow must not bind an identifier")
	}
}

func TestForm_EditSeedsFromRecord(t *testing.T) {
	f, _ := testForm(t, &mockAPI{})

	f.Edit(rec{ID: 4, Status: "Approved"})
	if f.State() != Editing {
		t.Fatalf("expected Editing, got %v", f.State())
	}
	if f.EditingID() != 4 {
		t.Errorf("expected bound id 4, got %d", f.EditingID())
	}
	if f.Get("status") != "Approved" {
		t.Errorf("buffer should be seeded from the record, got %q", f.Get("status"))
	}
}

func TestForm_SetMutatesBufferOnly(t *testing.T) {
	api := &mockAPI{}
	f, s := testForm(t, api)

	f.Open()
	f.Set("status", "Approved")
	if f.Get("status") != "Approved" {
		t.Errorf("buffer mutation lost, got %q", f.Get("status"))
	}
	if len(s.Items()) != 0 {
		t.Error("field input must have no external effect")
	}
}

func TestForm_SetIgnoredWhenClosed(t *testing.T) {
	f, _ := testForm(t, &mockAPI{})

	f.Set("status", "Approved")
	if f.Get("status") != "" {
		t.Error("closed form must ignore input")
	}
}

func TestForm_CancelDiscardsBuffer(t *testing.T) {
	f, _ := testForm(t, &mockAPI{})

	f.Open()
	f.Set("status", "Approved")
	f.Cancel()

	if f.State() != Closed {
		t.Fatalf("expected Closed, got %v", f.State())
	}
	if f.Get("status") != "" {
		t.Error("buffer should be discarded on cancel")
	}
}

func TestForm_SubmitCreateClosesOnSuccess(t *testing.T) {
	api := &mockAPI{nextID: 10}
	f, s := testForm(t, api)

	f.Open()
	f.Set("status", "Active")
	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if f.State() != Closed {
		t.Error("successful submission should close the form")
	}
	items := s.Items()
	if len(items) != 1 || items[0].Status != "Active" {
		t.Errorf("store should hold the created record, got %+v", items)
	}
}

func TestForm_SubmitUpdateDispatchesToBoundID(t *testing.T) {
	api := &mockAPI{listResult: []rec{{ID: 4, Status: "Pending"}}}
	f, s := testForm(t, api)
	if err := s.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	f.Edit(rec{ID: 4, Status: "Pending"})
	f.Set("status", "Approved")
	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	items := s.Items()
	if len(items) != 1 || items[0].ID != 4 || items[0].Status != "Approved" {
		t.Errorf("update should replace the bound record, got %+v", items)
	}
}

func TestForm_SubmitRejectionKeepsBuffer(t *testing.T) {
	api := &mockAPI{failWith: errors.New("duplicate name")}
	f, s := testForm(t, api)

	f.Open()
	f.Set("status", "Active")
	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected Submit to fail")
	}

	if f.State() != Creating {
		t.Error("rejected submission must keep the form open")
	}
	if f.Get("status") != "Active" {
		t.Error("rejected submission must keep the buffer for correction")
	}
	if s.Err() != "duplicate name" {
		t.Errorf("error should surface via the store observable, got %q", s.Err())
	}
}

func TestForm_ShapeErrorDoesNotDispatch(t *testing.T) {
	api := &mockAPI{}
	f, s := testForm(t, api)

	f.Open()
	f.Set("status", "")
	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected a shaping error")
	}
	if len(s.Items()) != 0 {
		t.Error("shape failure must not reach the store")
	}
	if f.State() != Creating {
		t.Error("shape failure must keep the form open")
	}
}

func TestForm_SubmitClosedIsError(t *testing.T) {
	f, _ := testForm(t, &mockAPI{})
	if err := f.Submit(context.Background()); err == nil {
		t.Error("submitting a closed form should error")
	}
}
