package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type widget struct {
	ID   uint   `json:"ID"`
	Name string `json:"name"`
}

// fiberDoer routes client requests straight into an in-process app.
type fiberDoer struct {
	app *fiber.App
}

func (d fiberDoer) Do(req *http.Request) (*http.Response, error) {
	return d.app.Test(req, -1)
}

func stubApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/widgets", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": []widget{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}})
	})
	app.Post("/api/widgets", func(c *fiber.Ctx) error {
		var w widget
		if err := c.BodyParser(&w); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if w.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
		}
		w.ID = 7
		return c.JSON(fiber.Map{"message": "Widget created", "data": w})
	})
	app.Put("/api/widgets/:id", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Widget not found"})
	})
	app.Patch("/api/widgets/:id/status", func(c *fiber.Ctx) error {
		var body struct {
			Status string `json:"status"`
		}
		c.BodyParser(&body)
		return c.JSON(fiber.Map{"data": widget{ID: 3, Name: body.Status}})
	})
	app.Delete("/api/widgets/:id", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Widget deleted"})
	})
	app.Get("/api/broken", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).SendString("boom")
	})
	app.Get("/api/auth-echo", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": []widget{{ID: 1, Name: c.Get("Authorization")}}})
	})
	return app
}

func testResource(t *testing.T, path, token string) *Resource[widget] {
	t.Helper()
	cfg := Config{
		BaseURL: "http://hrms.local",
		Token:   token,
		HTTP:    fiberDoer{app: stubApp()},
	}
	return NewResource[widget](cfg, path)
}

func TestList_UnwrapsEnvelope(t *testing.T) {
	r := testResource(t, "/api/widgets", "")

	items, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 || items[0].Name != "a" || items[1].ID != 2 {
		t.Errorf("unexpected collection: %+v", items)
	}
}

func TestCreate_ReturnsCanonicalRecord(t *testing.T) {
	r := testResource(t, "/api/widgets", "")

	created, err := r.Create(context.Background(), widget{Name: "gizmo"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != 7 || created.Name != "gizmo" {
		t.Errorf("expected the server-assigned record, got %+v", created)
	}
}

func TestCreate_ServerMessagePassedVerbatim(t *testing.T) {
	r := testResource(t, "/api/widgets", "")

	_, err := r.Create(context.Background(), widget{})
	if err == nil {
		t.Fatal("expected a rejection")
	}
	if err.Error() != "name is required" {
		t.Errorf("server message should pass through verbatim, got %q", err)
	}
}

func TestUpdate_NotFoundSurfacesServerMessage(t *testing.T) {
	r := testResource(t, "/api/widgets", "")

	_, err := r.Update(context.Background(), 99, widget{Name: "x"})
	if err == nil || err.Error() != "Widget not found" {
		t.Errorf("expected \"Widget not found\", got %v", err)
	}
}

func TestUpdateStatus_PatchesStatusEndpoint(t *testing.T) {
	r := testResource(t, "/api/widgets", "")

	updated, err := r.UpdateStatus(context.Background(), 3, "Approved")
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Name != "Approved" {
		t.Errorf("status payload not delivered, got %+v", updated)
	}
}

func TestDelete_Succeeds(t *testing.T) {
	r := testResource(t, "/api/widgets", "")

	if err := r.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestErrorFallback_WhenBodyHasNoMessage(t *testing.T) {
	r := testResource(t, "/api/broken", "")

	_, err := r.List(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "request failed (status 500)" {
		t.Errorf("expected the generic fallback, got %q", err)
	}
}

func TestBearerToken_AttachedWhenPresent(t *testing.T) {
	r := testResource(t, "/api/auth-echo", "tok-123")

	items, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if items[0].Name != "Bearer tok-123" {
		t.Errorf("bearer header missing, got %q", items[0].Name)
	}
}

func TestNoToken_RequestStillSent(t *testing.T) {
	r := testResource(t, "/api/auth-echo", "")

	items, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if items[0].Name != "" {
		t.Errorf("request should go out unauthenticated, got %q", items[0].Name)
	}
}
