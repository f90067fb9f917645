package router

import (
	"fmt"
	"testing"

	"github.com/junction-ui/junction/pkg/urlparse"
)

func TestPushInvokesHandlerWithParams(t *testing.T) {
	var gotID string
	r := New([]*Route{
		{Pattern: "/users/:id", Handler: func(ctx *Context) {
			gotID, _ = ctx.Param("id")
		}},
	})

	if err := r.Push("/users/123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "123" {
		t.Errorf("id param = %q, want %q", gotID, "123")
	}
	if r.CurrentPath() != "/users/123" {
		t.Errorf("CurrentPath() = %q, want %q", r.CurrentPath(), "/users/123")
	}
}

func TestPushRouteNotFound(t *testing.T) {
	var notFoundPath string
	r := New([]*Route{{Pattern: "/"}})
	r.SetNotFoundHandler(func(url *urlparse.ParsedURL) {
		notFoundPath = url.Path
	})

	err := r.Push("/missing")
	if KindOf(err) != KindRouteNotFound {
		t.Fatalf("KindOf(err) = %v, want KindRouteNotFound", KindOf(err))
	}
	if notFoundPath != "/missing" {
		t.Errorf("not-found handler saw %q, want %q", notFoundPath, "/missing")
	}

	// A failed transaction leaves the router untouched.
	if r.CurrentPath() != "" {
		t.Errorf("CurrentPath() = %q, want empty", r.CurrentPath())
	}
	entries, _ := r.HistorySnapshot()
	if len(entries) != 0 {
		t.Errorf("history length = %d, want 0", len(entries))
	}
}

func TestBackForwardSequence(t *testing.T) {
	r := New([]*Route{
		{Pattern: "/"},
		{Pattern: "/users"},
		{Pattern: "/users/:id"},
	})

	for _, p := range []string{"/", "/users", "/users/123"} {
		if err := r.Push(p); err != nil {
			t.Fatalf("Push(%q): %v", p, err)
		}
	}

	if err := r.Back(); err != nil {
		t.Fatalf("Back(): %v", err)
	}
	if r.CurrentPath() != "/users" {
		t.Errorf("after Back: CurrentPath() = %q, want %q", r.CurrentPath(), "/users")
	}

	if err := r.Forward(); err != nil {
		t.Fatalf("Forward(): %v", err)
	}
	if r.CurrentPath() != "/users/123" {
		t.Errorf("after Forward: CurrentPath() = %q, want %q", r.CurrentPath(), "/users/123")
	}
}

func TestBackForwardAreNoOpAtEnds(t *testing.T) {
	r := New([]*Route{{Pattern: "/"}})
	if err := r.Push("/"); err != nil {
		t.Fatal(err)
	}

	if err := r.Back(); err != nil {
		t.Errorf("Back() past the first entry should be a no-op success, got %v", err)
	}
	if err := r.Forward(); err != nil {
		t.Errorf("Forward() at the tip should be a no-op success, got %v", err)
	}
	if r.CurrentPath() != "/" {
		t.Errorf("CurrentPath() = %q, want %q", r.CurrentPath(), "/")
	}
}

func TestBranchTruncationThroughRouter(t *testing.T) {
	r := New([]*Route{
		{Pattern: "/a"}, {Pattern: "/b"}, {Pattern: "/c"}, {Pattern: "/d"},
	})

	for _, p := range []string{"/a", "/b", "/c"} {
		if err := r.Push(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.Back(); err != nil {
		t.Fatal(err)
	}
	if !r.CanGoForward() {
		t.Fatal("CanGoForward() should be true after Back from the tip")
	}

	if err := r.Push("/d"); err != nil {
		t.Fatal(err)
	}
	if r.CanGoForward() {
		t.Error("CanGoForward() should be false after pushing mid-stack")
	}
}

func TestHistoryEvictionThroughRouter(t *testing.T) {
	const limit = 3
	r := New([]*Route{{Pattern: "/page/:n"}}, WithHistoryLimit(limit))

	for i := 0; i <= limit; i++ {
		if err := r.Push(fmt.Sprintf("/page/%d", i)); err != nil {
			t.Fatal(err)
		}
	}

	entries, index := r.HistorySnapshot()
	if len(entries) != limit {
		t.Errorf("history length = %d, want %d", len(entries), limit)
	}
	if index != limit-1 {
		t.Errorf("history index = %d, want %d", index, limit-1)
	}
	if entries[0].Path != "/page/1" {
		t.Errorf("oldest entry = %q, want %q", entries[0].Path, "/page/1")
	}
}

func TestReplaceDoesNotTouchHistory(t *testing.T) {
	r := New([]*Route{{Pattern: "/a"}, {Pattern: "/b"}})

	if err := r.Push("/a"); err != nil {
		t.Fatal(err)
	}
	if err := r.Replace("/b"); err != nil {
		t.Fatal(err)
	}

	if r.CurrentPath() != "/b" {
		t.Errorf("CurrentPath() = %q, want %q", r.CurrentPath(), "/b")
	}
	entries, _ := r.HistorySnapshot()
	if len(entries) != 1 || entries[0].Path != "/a" {
		t.Errorf("history = %+v, want single /a entry", entries)
	}
}

func TestDeepLinkRecordsHistory(t *testing.T) {
	var gotEvent Event
	r := New([]*Route{{Pattern: "/share/:token"}})
	r.OnNavigate(func(event Event, path string, ctx *Context) {
		gotEvent = event
	})

	if err := r.HandleDeepLink("/share/abc?src=mail"); err != nil {
		t.Fatal(err)
	}

	if gotEvent != EventDeepLink {
		t.Errorf("event = %v, want EventDeepLink", gotEvent)
	}
	entries, _ := r.HistorySnapshot()
	if len(entries) != 1 {
		t.Errorf("history length = %d, want 1", len(entries))
	}

	src, _ := r.Context().QueryValue("src")
	if src != "mail" {
		t.Errorf("query src = %q, want %q", src, "mail")
	}
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	var order []string
	r := New([]*Route{
		{Pattern: "/x", Handler: func(ctx *Context) {
			order = append(order, "handler")
		}},
	})
	r.OnNavigate(func(Event, string, *Context) { order = append(order, "first") })
	r.OnNavigate(func(Event, string, *Context) { order = append(order, "second") })

	if err := r.Push("/x"); err != nil {
		t.Fatal(err)
	}

	want := []string{"first", "second", "handler"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestHistoryPushedBeforeListeners(t *testing.T) {
	r := New([]*Route{{Pattern: "/x"}})

	var seenLen int
	r.OnNavigate(func(Event, string, *Context) {
		entries, _ := r.HistorySnapshot()
		seenLen = len(entries)
	})

	if err := r.Push("/x"); err != nil {
		t.Fatal(err)
	}
	if seenLen != 1 {
		t.Errorf("history length inside listener = %d, want 1", seenLen)
	}
}

func TestBasePathPrefixing(t *testing.T) {
	r := New([]*Route{{Pattern: "/app/users/:id"}})
	r.SetBasePath("/app")

	if err := r.Push("/users/7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// History and current path keep the caller's path, not the prefixed one.
	if r.CurrentPath() != "/users/7" {
		t.Errorf("CurrentPath() = %q, want %q", r.CurrentPath(), "/users/7")
	}
	id, _ := r.Context().Param("id")
	if id != "7" {
		t.Errorf("id param = %q, want %q", id, "7")
	}
}

func TestBackSkipsGuards(t *testing.T) {
	guard := &countingGuard{response: Allow()}
	r := New([]*Route{
		{Pattern: "/guarded", Guards: []Guard{guard}},
		{Pattern: "/other"},
	})

	if err := r.Push("/guarded"); err != nil {
		t.Fatal(err)
	}
	if err := r.Push("/other"); err != nil {
		t.Fatal(err)
	}
	if guard.calls != 1 {
		t.Fatalf("guard calls = %d, want 1", guard.calls)
	}

	if err := r.Back(); err != nil {
		t.Fatal(err)
	}
	if r.CurrentPath() != "/guarded" {
		t.Errorf("CurrentPath() = %q, want %q", r.CurrentPath(), "/guarded")
	}
	if guard.calls != 1 {
		t.Errorf("guard calls after Back = %d, want 1 (guards skipped)", guard.calls)
	}
}

func TestPushStateCarriesPayload(t *testing.T) {
	type scroll struct{ y int }

	r := New([]*Route{{Pattern: "/feed"}})
	st := &scroll{y: 42}
	if err := r.PushState("/feed", st); err != nil {
		t.Fatal(err)
	}

	entries, _ := r.HistorySnapshot()
	if entries[0].State != any(st) {
		t.Error("history entry state should be the pushed pointer")
	}
}

func TestContextPayloadPassThrough(t *testing.T) {
	r := New([]*Route{{Pattern: "/x"}})
	payload := map[string]string{"k": "v"}
	r.SetPayload(payload)

	if err := r.Push("/x"); err != nil {
		t.Fatal(err)
	}
	got, ok := r.Context().Payload.(map[string]string)
	if !ok || got["k"] != "v" {
		t.Errorf("context payload = %v, want the value set on the router", r.Context().Payload)
	}
}

func TestRouterReusableAfterFailure(t *testing.T) {
	r := New([]*Route{{Pattern: "/ok"}})

	if err := r.Push("/missing"); KindOf(err) != KindRouteNotFound {
		t.Fatalf("expected RouteNotFound, got %v", err)
	}
	if err := r.Push("/ok"); err != nil {
		t.Errorf("router should be reusable after a failed transaction: %v", err)
	}
}
