package urlparse

import "testing"

func TestParseFullURL(t *testing.T) {
	u := Parse("/users/123?page=1&sort=name#section")

	if u.Path != "/users/123" {
		t.Errorf("Path = %q, want %q", u.Path, "/users/123")
	}
	if u.Fragment != "section" {
		t.Errorf("Fragment = %q, want %q", u.Fragment, "section")
	}
	if len(u.Query) != 2 {
		t.Fatalf("len(Query) = %d, want 2", len(u.Query))
	}
	if u.Query[0].Key != "page" || u.Query[0].Value != "1" {
		t.Errorf("Query[0] = %+v, want page=1", u.Query[0])
	}
	if u.Query[1].Key != "sort" || u.Query[1].Value != "name" {
		t.Errorf("Query[1] = %+v, want sort=name", u.Query[1])
	}
}

func TestParsePathOnly(t *testing.T) {
	u := Parse("/dashboard")

	if u.Path != "/dashboard" {
		t.Errorf("Path = %q, want %q", u.Path, "/dashboard")
	}
	if len(u.Query) != 0 {
		t.Errorf("len(Query) = %d, want 0", len(u.Query))
	}
	if u.Fragment != "" {
		t.Errorf("Fragment = %q, want empty", u.Fragment)
	}
}

func TestParseQueryOrder(t *testing.T) {
	u := Parse("/search?b=2&a=1&b=3")

	want := []QueryParam{{"b", "2"}, {"a", "1"}, {"b", "3"}}
	if len(u.Query) != len(want) {
		t.Fatalf("len(Query) = %d, want %d", len(u.Query), len(want))
	}
	for i, q := range u.Query {
		if q != want[i] {
			t.Errorf("Query[%d] = %+v, want %+v", i, q, want[i])
		}
	}
}

func TestParseDropsPiecesWithoutEquals(t *testing.T) {
	u := Parse("/search?flag&key=value&&other")

	if len(u.Query) != 1 {
		t.Fatalf("len(Query) = %d, want 1", len(u.Query))
	}
	if u.Query[0].Key != "key" || u.Query[0].Value != "value" {
		t.Errorf("Query[0] = %+v, want key=value", u.Query[0])
	}
}

func TestParseEmptyValue(t *testing.T) {
	u := Parse("/search?q=")

	if len(u.Query) != 1 {
		t.Fatalf("len(Query) = %d, want 1", len(u.Query))
	}
	if u.Query[0].Key != "q" || u.Query[0].Value != "" {
		t.Errorf("Query[0] = %+v, want q=<empty>", u.Query[0])
	}
}

func TestParseFragmentBeforeQuery(t *testing.T) {
	// The fragment is located first, so a '?' after '#' belongs to the
	// fragment, not the query string.
	u := Parse("/page#frag?notquery=1")

	if u.Path != "/page" {
		t.Errorf("Path = %q, want %q", u.Path, "/page")
	}
	if u.Fragment != "frag?notquery=1" {
		t.Errorf("Fragment = %q, want %q", u.Fragment, "frag?notquery=1")
	}
	if len(u.Query) != 0 {
		t.Errorf("len(Query) = %d, want 0", len(u.Query))
	}
}

func TestQueryValue(t *testing.T) {
	u := Parse("/search?a=1&a=2")

	v, ok := u.QueryValue("a")
	if !ok || v != "1" {
		t.Errorf("QueryValue(a) = %q, %v, want %q, true", v, ok, "1")
	}
	if _, ok := u.QueryValue("missing"); ok {
		t.Error("QueryValue(missing) should not be found")
	}
}

func TestParamLookup(t *testing.T) {
	u := Parse("/users/42")
	u.Params = []Param{{Name: "id", Value: "42"}}

	v, ok := u.Param("id")
	if !ok || v != "42" {
		t.Errorf("Param(id) = %q, %v, want %q, true", v, ok, "42")
	}
	if _, ok := u.Param("other"); ok {
		t.Error("Param(other) should not be found")
	}
}
