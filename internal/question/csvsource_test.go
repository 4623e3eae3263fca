package question

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const feedHeader = "id,kind,prompt,image_ref,image_w,image_h,target_x,target_y,radius,option_a,option_b,option_c,option_d,correct_key,explanation\n"

func feedServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func sourceFor(srv *httptest.Server) *CSVSource {
	return NewCSVSource(func(category string) string {
		return srv.URL + "?tab=" + category
	})
}

func TestCSVSource_ParsesBothKinds(t *testing.T) {
	body := feedHeader +
		"anat-1,coordinate,Locate the spleen,torso-anterior,800,600,530,310,45,,,,,,\n" +
		"med-1,choice,Beta blocker of choice post-MI?,,,,,,,Bisoprolol,Amlodipine,Furosemide,Digoxin,A,Cardioselective beta blockade improves survival.\n"
	srv := feedServer(t, body, http.StatusOK)

	pool, err := sourceFor(srv).FetchPool(context.Background(), "anatomy")
	if err != nil {
		t.Fatalf("FetchPool: %v", err)
	}
	if pool.Len() != 2 {
		t.Fatalf("pool len = %d, want 2", pool.Len())
	}

	coord := pool[0]
	if coord.Kind != KindCoordinate || coord.ImageW != 800 || coord.Target.Radius != 45 {
		t.Errorf("coordinate row parsed as %+v", coord)
	}
	if coord.Category != "anatomy" {
		t.Errorf("Category = %q, want %q", coord.Category, "anatomy")
	}

	choice := pool[1]
	if choice.Kind != KindChoice || choice.CorrectKey != "A" {
		t.Errorf("choice row parsed as %+v", choice)
	}
	if choice.Options[3] != "Digoxin" {
		t.Errorf("Options[3] = %q, want %q", choice.Options[3], "Digoxin")
	}
	if choice.Explanation == "" {
		t.Error("explanation should survive the round trip")
	}
}

func TestCSVSource_SkipsInvalidRows(t *testing.T) {
	body := feedHeader +
		"anat-1,coordinate,Locate the liver,torso-anterior,800,600,370,330,50,,,,,,\n" +
		"anat-2,coordinate,Zero radius,torso-anterior,800,600,100,100,0,,,,,,\n" +
		"short,row\n" +
		"anat-3,coordinate,Bad width,torso-anterior,wide,600,100,100,30,,,,,,\n" +
		"med-1,choice,Missing key,,,,,,,One,Two,Three,Four,,\n"
	srv := feedServer(t, body, http.StatusOK)

	pool, err := sourceFor(srv).FetchPool(context.Background(), "anatomy")
	if err != nil {
		t.Fatalf("FetchPool: %v", err)
	}
	if pool.Len() != 1 {
		t.Fatalf("pool len = %d, want 1 (bad rows skipped, not fatal)", pool.Len())
	}
	if pool[0].ID != "anat-1" {
		t.Errorf("surviving row = %q, want anat-1", pool[0].ID)
	}
}

func TestCSVSource_EmptyFeed(t *testing.T) {
	srv := feedServer(t, feedHeader, http.StatusOK)

	pool, err := sourceFor(srv).FetchPool(context.Background(), "pharmacy")
	if err != nil {
		t.Fatalf("FetchPool: %v", err)
	}
	if pool.Len() != 0 {
		t.Errorf("pool len = %d, want 0", pool.Len())
	}
}

func TestCSVSource_HTTPErrorWrapsFetchFailed(t *testing.T) {
	srv := feedServer(t, "tab not found", http.StatusNotFound)

	_, err := sourceFor(srv).FetchPool(context.Background(), "anatomy")
	if !errors.Is(err, ErrFetchFailed) {
		t.Errorf("err = %v, want ErrFetchFailed", err)
	}
}

func TestCSVSource_TransportErrorWrapsFetchFailed(t *testing.T) {
	srv := feedServer(t, "", http.StatusOK)
	srv.Close()

	_, err := sourceFor(srv).FetchPool(context.Background(), "anatomy")
	if !errors.Is(err, ErrFetchFailed) {
		t.Errorf("err = %v, want ErrFetchFailed", err)
	}
}

func TestCSVSource_CategoryReachesURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RawQuery
		_, _ = w.Write([]byte(feedHeader))
	}))
	t.Cleanup(srv.Close)

	if _, err := sourceFor(srv).FetchPool(context.Background(), "medicine"); err != nil {
		t.Fatalf("FetchPool: %v", err)
	}
	if !strings.Contains(gotPath, "tab=medicine") {
		t.Errorf("feed query = %q, want the category in it", gotPath)
	}
}
