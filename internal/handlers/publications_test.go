package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"real-estate-publications/internal/dto"
	"real-estate-publications/internal/publication"

	"github.com/gin-gonic/gin"
)

type fakeService struct {
	items      map[int]dto.Publication
	nextID     int
	failWith   error
	lastUpdate dto.PublicationRequest
	lastIDs    []int
}

func newFakeService() *fakeService {
	return &fakeService{items: map[int]dto.Publication{}, nextID: 1}
}

func (f *fakeService) ListAll(ctx context.Context) ([]dto.Publication, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	res := []dto.Publication{}
	for id := f.nextID - 1; id > 0; id-- {
		if p, ok := f.items[id]; ok {
			res = append(res, p)
		}
	}
	return res, nil
}

func (f *fakeService) GetOne(ctx context.Context, id int) (dto.Publication, error) {
	p, ok := f.items[id]
	if !ok {
		return dto.Publication{}, &publication.Error{Kind: publication.KindNotFound, Msg: "publication not found."}
	}
	return p, nil
}

func (f *fakeService) Create(ctx context.Context, req dto.PublicationRequest) (dto.Publication, error) {
	if err := publication.Validate(req); err != nil {
		return dto.Publication{}, err
	}
	p := dto.Publication{ID: f.nextID, PropertyType: req.PropertyType, Images: []dto.PublicationImage{}}
	f.items[p.ID] = p
	f.nextID++
	return p, nil
}

func (f *fakeService) Update(ctx context.Context, id int, req dto.PublicationRequest) error {
	if err := publication.Validate(req); err != nil {
		return err
	}
	if _, ok := f.items[id]; !ok {
		return &publication.Error{Kind: publication.KindNotFound, Msg: "publication not found."}
	}
	f.lastUpdate = req
	return nil
}

func (f *fakeService) Delete(ctx context.Context, id int) error {
	if _, ok := f.items[id]; !ok {
		return &publication.Error{Kind: publication.KindNotFound, Msg: "publication not found."}
	}
	delete(f.items, id)
	return nil
}

func (f *fakeService) DeleteMany(ctx context.Context, ids []int) (dto.BulkDeleteResult, error) {
	f.lastIDs = ids
	if ids == nil {
		return dto.BulkDeleteResult{}, &publication.Error{Kind: publication.KindDomainValidation, Msg: "ids must be provided."}
	}
	res := dto.BulkDeleteResult{DeletedIDs: []int{}, NotFoundIDs: []int{}}
	for _, id := range ids {
		if _, ok := f.items[id]; ok {
			delete(f.items, id)
			res.DeletedIDs = append(res.DeletedIDs, id)
		} else {
			res.NotFoundIDs = append(res.NotFoundIDs, id)
		}
	}
	res.DeletedCount = len(res.DeletedIDs)
	res.NotFoundCount = len(res.NotFoundIDs)
	return res, nil
}

func setupRouter(svc PublicationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.Use(RequestID())
	api := r.Group("/api")
	NewPublicationHandler(svc, "/api", logger).Register(api)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) Problem {
	t.Helper()
	var p Problem
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode problem: %v (body %q)", err, rec.Body.String())
	}
	return p
}

const validBody = `{"propertyType":"Casa","operationType":"Venta","description":"Nice","roomCount":3,"areaM2":120,"ageYears":5,"latitude":10,"longitude":20,"images":[{"url":"a"}]}`

func TestCreateReturns201WithLocation(t *testing.T) {
	r := setupRouter(newFakeService())

	rec := doRequest(r, http.MethodPost, "/api/publications", validBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != "/api/publications/1" {
		t.Fatalf("Location = %q", got)
	}

	var created dto.Publication
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != 1 || created.PropertyType != "Casa" {
		t.Fatalf("unexpected body: %+v", created)
	}
}

func TestCreateValidationFailureIs400(t *testing.T) {
	r := setupRouter(newFakeService())

	rec := doRequest(r, http.MethodPost, "/api/publications",
		`{"propertyType":"","operationType":"Venta","description":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	p := decodeProblem(t, rec)
	if p.Detail != "propertyType is required." || p.Status != http.StatusBadRequest {
		t.Fatalf("unexpected problem: %+v", p)
	}
}

func TestMalformedJSONIs400(t *testing.T) {
	r := setupRouter(newFakeService())

	for _, path := range []string{"/api/publications", "/api/publications/bulk-delete"} {
		rec := doRequest(r, http.MethodPost, path, `{"propertyType":`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", path, rec.Code)
		}
	}
}

func TestGetUnknownAndNonIntegerIDsAre404(t *testing.T) {
	r := setupRouter(newFakeService())

	tests := []string{"/api/publications/999", "/api/publications/abc"}
	for _, path := range tests {
		rec := doRequest(r, http.MethodGet, path, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: status = %d, want 404", path, rec.Code)
		}
		if p := decodeProblem(t, rec); p.Status != http.StatusNotFound {
			t.Fatalf("%s: problem status = %d", path, p.Status)
		}
	}
}

func TestUpdateAndDeleteReturn204(t *testing.T) {
	svc := newFakeService()
	r := setupRouter(svc)
	doRequest(r, http.MethodPost, "/api/publications", validBody)

	rec := doRequest(r, http.MethodPut, "/api/publications/1", validBody)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("update status = %d, want 204", rec.Code)
	}
	if svc.lastUpdate.Description != "Nice" {
		t.Fatalf("update request not forwarded: %+v", svc.lastUpdate)
	}

	rec = doRequest(r, http.MethodPut, "/api/publications/2", validBody)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update missing status = %d, want 404", rec.Code)
	}

	rec = doRequest(r, http.MethodDelete, "/api/publications/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
	rec = doRequest(r, http.MethodDelete, "/api/publications/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestBulkDelete(t *testing.T) {
	svc := newFakeService()
	r := setupRouter(svc)
	doRequest(r, http.MethodPost, "/api/publications", validBody)
	doRequest(r, http.MethodPost, "/api/publications", validBody)

	rec := doRequest(r, http.MethodPost, "/api/publications/bulk-delete", `{"ids":[1,2,999]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.BulkDeleteResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.DeletedCount != 2 || res.NotFoundCount != 1 || res.NotFoundIDs[0] != 999 {
		t.Fatalf("unexpected result: %+v", res)
	}

	rec = doRequest(r, http.MethodPost, "/api/publications/bulk-delete", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing ids status = %d, want 400", rec.Code)
	}
	if p := decodeProblem(t, rec); p.Detail != "ids must be provided." {
		t.Fatalf("unexpected detail %q", p.Detail)
	}
}

func TestUnexpectedErrorHidesDetail(t *testing.T) {
	svc := newFakeService()
	svc.failWith = &publication.Error{Kind: publication.KindUnexpected, Msg: "list publications", Err: errors.New("connection refused")}
	r := setupRouter(svc)

	rec := doRequest(r, http.MethodGet, "/api/publications", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if p := decodeProblem(t, rec); bytes.Contains([]byte(p.Detail), []byte("connection refused")) {
		t.Fatalf("internal error leaked: %q", p.Detail)
	}
}

func TestRequestIDHeader(t *testing.T) {
	r := setupRouter(newFakeService())

	rec := doRequest(r, http.MethodGet, "/api/publications", "")
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/publications", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("request id = %q, want abc-123", got)
	}
}

// slowService waits for the request context before answering
type slowService struct {
	*fakeService
	seen error
}

func (s *slowService) ListAll(ctx context.Context) ([]dto.Publication, error) {
	<-ctx.Done()
	s.seen = ctx.Err()
	return nil, &publication.Error{Kind: publication.KindUnexpected, Msg: "list publications", Err: ctx.Err()}
}

func TestTimeoutCancelsServiceCall(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &slowService{fakeService: newFakeService()}

	r := gin.New()
	api := r.Group("/api", Timeout(time.Nanosecond))
	NewPublicationHandler(svc, "/api", slog.New(slog.NewTextHandler(io.Discard, nil))).Register(api)

	rec := doRequest(r, http.MethodGet, "/api/publications", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !errors.Is(svc.seen, context.DeadlineExceeded) {
		t.Fatalf("service saw %v, want deadline exceeded", svc.seen)
	}
}
