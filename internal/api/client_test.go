package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/repkit/repkit/internal/config"
	"github.com/repkit/repkit/internal/models"
	"github.com/repkit/repkit/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Service) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.New(session.NewFileStore(filepath.Join(t.TempDir(), "token.json")))
	cfg := &config.Config{BaseURL: server.URL, RequestTimeout: 5 * time.Second}
	return NewClient(cfg, sess), sess
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))

	// Unauthenticated GET: no bearer, no content type.
	if _, err := client.ListWorkouts(context.Background()); err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if got.Get("Authorization") != "" {
		t.Errorf("expected no Authorization header without a credential, got %q", got.Get("Authorization"))
	}
	if got.Get("Content-Type") != "" {
		t.Errorf("expected no Content-Type header on a bodyless request, got %q", got.Get("Content-Type"))
	}
	if got.Get("X-Request-Id") == "" {
		t.Error("expected an X-Request-Id header")
	}

	// Authenticated GET: bearer present.
	if err := sess.Set("tok123"); err != nil {
		t.Fatal(err)
	}
	if _, err := client.ListWorkouts(context.Background()); err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if auth := got.Get("Authorization"); auth != "Bearer tok123" {
		t.Errorf("expected bearer header, got %q", auth)
	}
}

func TestRequestSetsContentTypeWithBody(t *testing.T) {
	var got http.Header
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"u1","email":"a@b.c"}`))
	}))

	if _, err := client.Signup(context.Background(), "a@b.c", "password123"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if ct := got.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json content type, got %q", ct)
	}
}

func TestLoginStoresToken(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"fresh-token","token_type":"bearer"}`))
	}))

	tok, err := client.Login(context.Background(), "a@b.c", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if tok.AccessToken != "fresh-token" {
		t.Errorf("unexpected token response: %+v", tok)
	}

	stored, err := sess.Get()
	if err != nil {
		t.Fatalf("expected a stored credential, got %v", err)
	}
	if stored != "fresh-token" {
		t.Errorf("expected fresh-token stored, got %q", stored)
	}
}

func TestFailedLoginLeavesStoredTokenUntouched(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}))

	if err := sess.Set("existing-token"); err != nil {
		t.Fatal(err)
	}

	_, err := client.Login(context.Background(), "a@b.c", "wrong")
	if err == nil {
		t.Fatal("expected an error from the rejected login")
	}
	if !IsUnauthorized(err) {
		t.Errorf("expected an unauthorized error, got %v", err)
	}

	stored, getErr := sess.Get()
	if getErr != nil || stored != "existing-token" {
		t.Errorf("a rejected login must not disturb the stored credential, got %q, %v", stored, getErr)
	}
}

func TestUnauthorizedPurgesCredential(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))

	if err := sess.Set("stale-token"); err != nil {
		t.Fatal(err)
	}

	notified := false
	sess.Subscribe(func(session.Origin) { notified = true })

	_, err := client.Me(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}

	if _, err := sess.Get(); !errors.Is(err, session.ErrNoToken) {
		t.Errorf("expected credential purged after 401, got %v", err)
	}
	if !notified {
		t.Error("expected the purge to notify session subscribers")
	}
}

func TestGenerateProgramFoldsRejection(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":{"code":"NOT_FITNESS","message":"Ask about training.","hints":["Describe a fitness goal"]}}`))
	}))

	resp, err := client.GenerateProgram(context.Background(), models.GenerateRequest{Text: "write me a poem about the sea"})
	if err != nil {
		t.Fatalf("expected the rejection folded into the response, got error %v", err)
	}
	if resp.Rejected == nil {
		t.Fatal("expected the rejected variant")
	}
	if string(resp.Rejected.Code) != "NOT_FITNESS" {
		t.Errorf("unexpected code %q", resp.Rejected.Code)
	}
	if len(resp.Rejected.Hints) != 1 {
		t.Errorf("expected one hint, got %v", resp.Rejected.Hints)
	}
}

func TestGenerateProgramSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","days":[{"day":1,"focus":"Push","intensity":"medium","duration_minutes":45,"exercises":[{"name":"Bench Press","sets":3,"reps":"8-10","rest_seconds":90}],"estimated_calories":300}]}`))
	}))

	resp, err := client.GenerateProgram(context.Background(), models.GenerateRequest{Text: "three day push pull legs split for a beginner"})
	if err != nil {
		t.Fatalf("GenerateProgram failed: %v", err)
	}
	if !resp.IsOK() {
		t.Fatal("expected the ok variant")
	}
	if len(resp.OK.Days) != 1 || resp.OK.Days[0].Focus != "Push" {
		t.Errorf("unexpected program: %+v", resp.OK)
	}
}

func TestGenerateProgramValidationErrorIsNotFolded(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"text must be at least 12 characters"}`))
	}))

	_, err := client.GenerateProgram(context.Background(), models.GenerateRequest{Text: "short"})
	if err == nil {
		t.Fatal("expected an error for a plain validation failure")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.IsRejection() {
		t.Errorf("expected a non-rejection API error, got %v", err)
	}
}

func TestDeleteWorkoutEscapesID(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.DeleteWorkout(context.Background(), "a/b c"); err != nil {
		t.Fatalf("DeleteWorkout failed: %v", err)
	}
	if gotPath != "/api/workouts/a%2Fb%20c" {
		t.Errorf("expected the id path-escaped, got %q", gotPath)
	}
}
