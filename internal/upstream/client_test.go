package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mtareb/medichat/internal/models"
)

func newTestClient(serverURL string) *Client {
	return New(serverURL, 5*time.Second)
}

func TestSignInReturnsUserID(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/signin" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"user_id": "abc123", "message": "Signin successful"})
	}))
	defer server.Close()

	userID, err := newTestClient(server.URL).SignIn(context.Background(), "user@example.com", "secret")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if userID != "abc123" {
		t.Fatalf("expected user id abc123, got %q", userID)
	}
	if received["email"] != "user@example.com" || received["password"] != "secret" {
		t.Fatalf("credentials not forwarded: %v", received)
	}
}

func TestSignUpRejectionCarriesServiceDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SignUp(context.Background(), "dup@example.com", "secret")
	if err == nil {
		t.Fatal("expected an error")
	}

	rejection, ok := Rejection(err)
	if !ok {
		t.Fatalf("expected a rejected response, got %v", err)
	}
	if rejection.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rejection.StatusCode)
	}
	if rejection.Detail != "Email already registered" {
		t.Fatalf("expected the service detail verbatim, got %q", rejection.Detail)
	}
}

func TestTransportFailureIsNotARejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestClient(server.URL).SignIn(context.Background(), "user@example.com", "secret")
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := Rejection(err); ok {
		t.Fatalf("a connection failure must not look like a rejected response: %v", err)
	}
}

func TestMissingUserIDInSuccessResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).SignIn(context.Background(), "user@example.com", "secret"); err == nil {
		t.Fatal("expected an error when user_id is absent")
	}
}

func TestFetchProfileSendsIdentifierHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/personal-info" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("X-User-ID"); got != "abc123" {
			t.Errorf("expected X-User-ID abc123, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"email":      "user@example.com",
			"first_name": "Dana",
			"age":        34,
			"allergies":  []string{"latex"},
		})
	}))
	defer server.Close()

	profile, err := newTestClient(server.URL).FetchProfile(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("fetch profile: %v", err)
	}
	if profile.Email != "user@example.com" || profile.FirstName != "Dana" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.Age == nil || *profile.Age != 34 {
		t.Fatalf("expected age 34, got %v", profile.Age)
	}
	if len(profile.Allergies) != 1 || profile.Allergies[0] != "latex" {
		t.Fatalf("unexpected allergies: %v", profile.Allergies)
	}
}

func TestSaveProfilePostsPayload(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/personal-info" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("X-User-ID"); got != "abc123" {
			t.Errorf("expected X-User-ID abc123, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "updated"})
	}))
	defer server.Close()

	payload := models.ProfilePayload{
		FirstName: "Dana",
		Allergies: []string{"latex"},
	}
	if err := newTestClient(server.URL).SaveProfile(context.Background(), "abc123", payload); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if received["first_name"] != "Dana" {
		t.Fatalf("payload not forwarded: %v", received)
	}
}

func TestAskEscapesQuestionAndParsesReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("question"); got != "aspirin & ibuprofen?" {
			t.Errorf("question not escaped correctly, got %q", got)
		}
		if got := r.Header.Get("X-User-ID"); got != "abc123" {
			t.Errorf("expected X-User-ID abc123, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"reply": "Do not combine them."})
	}))
	defer server.Close()

	reply, err := newTestClient(server.URL).Ask(context.Background(), "abc123", "aspirin & ibuprofen?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if reply != "Do not combine them." {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestAskEmptyIdentifierStillSendsHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["X-User-Id"]; !ok {
			t.Error("expected the identifier header to be present even when empty")
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"reply": "hello"})
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).Ask(context.Background(), "", "hi"); err != nil {
		t.Fatalf("ask: %v", err)
	}
}
