package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func apiServer(t *testing.T, body string, status int, capture *url.Values) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			*capture = r.URL.Query()
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSubmitStatDelta(t *testing.T) {
	var got url.Values
	srv := apiServer(t, `{"success":true}`, http.StatusOK, &got)
	c := New(srv.URL, "")

	if err := c.SubmitStatDelta(context.Background(), "dd-0412", 10, 7); err != nil {
		t.Fatalf("SubmitStatDelta: %v", err)
	}

	if got.Get("action") != "addStats" {
		t.Errorf("action = %q, want addStats", got.Get("action"))
	}
	if got.Get("user") != "dd-0412" || got.Get("attempted") != "10" || got.Get("correct") != "7" {
		t.Errorf("params = %v", got)
	}
}

func TestSubmitTokenDebit_ReturnsServerBalance(t *testing.T) {
	var got url.Values
	srv := apiServer(t, `{"success":true,"tokens":42}`, http.StatusOK, &got)
	c := New(srv.URL, "")

	balance, err := c.SubmitTokenDebit(context.Background(), "dd-0412", 5)
	if err != nil {
		t.Fatalf("SubmitTokenDebit: %v", err)
	}
	if balance != 42 {
		t.Errorf("balance = %d, want 42", balance)
	}
	if got.Get("action") != "spendTokens" || got.Get("amount") != "5" {
		t.Errorf("params = %v", got)
	}
}

func TestCall_RejectionIsErrRejected(t *testing.T) {
	srv := apiServer(t, `{"success":false,"error":"unknown user"}`, http.StatusOK, nil)
	c := New(srv.URL, "")

	err := c.SubmitStatDelta(context.Background(), "ghost", 1, 1)
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("err = %v, want ErrRejected", err)
	}
}

func TestCall_HTTPErrorIsNotRejection(t *testing.T) {
	srv := apiServer(t, "internal error", http.StatusInternalServerError, nil)
	c := New(srv.URL, "")

	err := c.SubmitStatDelta(context.Background(), "dd-0412", 1, 1)
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if errors.Is(err, ErrRejected) {
		t.Error("a transport-level failure must not read as a rejection")
	}
}

func TestPoolURL(t *testing.T) {
	c := New("", "https://docs.example.com/pub")

	got := c.PoolURL("anatomy")
	want := "https://docs.example.com/pub?category=anatomy"
	if got != want {
		t.Errorf("PoolURL = %q, want %q", got, want)
	}

	if got := c.PoolURL("drug interactions"); got != "https://docs.example.com/pub?category=drug+interactions" {
		t.Errorf("PoolURL with space = %q", got)
	}
}
