package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/uniportal/event-portal/internal/api/middleware"
	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/ports"
)

func TestEventHandler_Create(t *testing.T) {
	e := newEcho()
	stub := &stubEventService{
		createFn: func(ctx context.Context, actor *domain.User, in ports.CreateEventInput) (*domain.Event, error) {
			if actor != adminUser {
				t.Fatalf("expected the authenticated admin as actor")
			}
			return &domain.Event{ID: "e1", User: domain.UserRef{ID: actor.ID}, Title: in.Title, Category: in.Category, Attendees: []string{}}, nil
		},
	}
	handler := NewEventHandler(stub, nil)

	body := `{"title":"Orientation","date":"2024-09-01","time":"10:00","location":"Hall A","description":"Welcome session","category":"academic"}`
	c, rec := jsonContext(e, http.MethodPost, "/events", body, adminUser)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["_id"] != "e1" || resp["title"] != "Orientation" || resp["user"] != "admin_1" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestEventHandler_Create_MissingFields(t *testing.T) {
	e := newEcho()
	stub := &stubEventService{
		createFn: func(context.Context, *domain.User, ports.CreateEventInput) (*domain.Event, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEventHandler(stub, nil)

	c, _ := jsonContext(e, http.MethodPost, "/events", `{"title":"Orientation","date":"2024-09-01","time":"10:00","description":"d"}`, adminUser)
	err := handler.Create(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 || ve.Fields[0] != "location" || ve.Fields[1] != "category" {
		t.Fatalf("unexpected fields: %v", ve.Fields)
	}
}

func TestEventHandler_Update_PartialPatch(t *testing.T) {
	e := newEcho()
	stub := &stubEventService{
		updateFn: func(ctx context.Context, actor *domain.User, id string, p domain.EventPatch) (*domain.Event, error) {
			if id != "e1" {
				t.Fatalf("unexpected id %s", id)
			}
			if p.Title == nil || *p.Title != "New title" || p.Location != nil || p.Date != nil {
				t.Fatalf("unexpected patch: %+v", p)
			}
			return &domain.Event{ID: id, Title: *p.Title}, nil
		},
	}
	handler := NewEventHandler(stub, nil)

	c, rec := jsonContext(e, http.MethodPut, "/events/e1", `{"title":"New title"}`, adminUser)
	c.SetParamNames("id")
	c.SetParamValues("e1")
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEventHandler_Update_PropagatesForbidden(t *testing.T) {
	e := newEcho()
	stub := &stubEventService{
		updateFn: func(ctx context.Context, actor *domain.User, id string, p domain.EventPatch) (*domain.Event, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewEventHandler(stub, nil)

	c, rec := jsonContext(e, http.MethodPut, "/events/e1", `{"title":"x"}`, studentUser)
	c.SetParamNames("id")
	c.SetParamValues("e1")
	if err := handler.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("handler must not write on error")
	}
}

func TestEventHandler_Delete(t *testing.T) {
	e := newEcho()
	var deleted string
	stub := &stubEventService{
		deleteFn: func(ctx context.Context, actor *domain.User, id string) error {
			deleted = id
			return nil
		},
	}
	handler := NewEventHandler(stub, nil)

	c, rec := jsonContext(e, http.MethodDelete, "/events/e1", "", adminUser)
	c.SetParamNames("id")
	c.SetParamValues("e1")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if deleted != "e1" || resp["id"] != "e1" {
		t.Fatalf("unexpected delete result %q %v", deleted, resp)
	}
}

func TestEventHandler_List(t *testing.T) {
	e := newEcho()
	stub := &stubEventService{
		listFn: func(ctx context.Context) ([]*domain.Event, error) {
			return []*domain.Event{{ID: "e2", Title: "Newer"}, {ID: "e1", Title: "Older"}}, nil
		},
	}
	handler := NewEventHandler(stub, nil)

	c, rec := jsonContext(e, http.MethodGet, "/events", "", nil)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["_id"] != "e2" {
		t.Fatalf("expected service order to be preserved, got %v", resp)
	}
}

func multipartContext(t *testing.T, e *echo.Echo, field, filename string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = part.Write(content)
	} else {
		_ = w.WriteField("note", "no file")
	}
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/events/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, adminUser)
	return c, rec
}

func TestEventHandler_Upload(t *testing.T) {
	e := newEcho()
	uploads := &stubUploadService{
		saveFn: func(ctx context.Context, actor *domain.User, in ports.ImageUpload) (string, error) {
			data, _ := io.ReadAll(in.Content)
			if in.Filename != "poster.png" || string(data) != "png-bytes" || in.Size != int64(len(data)) {
				t.Fatalf("unexpected upload: %s %q %d", in.Filename, data, in.Size)
			}
			return "/uploads/image-1.png", nil
		},
	}
	handler := NewEventHandler(&stubEventService{}, uploads)

	c, rec := multipartContext(t, e, "image", "poster.png", []byte("png-bytes"))
	if err := handler.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["imageUrl"] != "/uploads/image-1.png" {
		t.Fatalf("unexpected response %v", resp)
	}
}

func TestEventHandler_Upload_MissingFile(t *testing.T) {
	e := newEcho()
	handler := NewEventHandler(&stubEventService{}, &stubUploadService{})

	c, _ := multipartContext(t, e, "", "", nil)
	err := handler.Upload(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Fields[0] != "image" {
		t.Fatalf("expected validation error for image, got %v", err)
	}
}
