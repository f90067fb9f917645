package router

import "testing"

func TestMatchLiteral(t *testing.T) {
	params, ok := Match("/users/list", "/users/list")
	if !ok {
		t.Fatal("expected match")
	}
	if len(params) != 0 {
		t.Errorf("len(params) = %d, want 0", len(params))
	}
}

func TestMatchLiteralMismatch(t *testing.T) {
	if _, ok := Match("/users/:id", "/posts/123"); ok {
		t.Error("should not match /posts/123 against /users/:id")
	}
	if _, ok := Match("/users", "/user"); ok {
		t.Error("should not match /user against /users")
	}
}

func TestMatchParam(t *testing.T) {
	params, ok := Match("/users/:id", "/users/123")
	if !ok {
		t.Fatal("expected match")
	}
	if len(params) != 1 {
		t.Fatalf("len(params) = %d, want 1", len(params))
	}
	if params[0].Name != "id" || params[0].Value != "123" {
		t.Errorf("params[0] = %+v, want id=123", params[0])
	}
}

func TestMatchMultipleParamsInPatternOrder(t *testing.T) {
	params, ok := Match("/users/:userId/posts/:postId", "/users/42/posts/100")
	if !ok {
		t.Fatal("expected match")
	}
	if len(params) != 2 {
		t.Fatalf("len(params) = %d, want 2", len(params))
	}
	if params[0].Name != "userId" || params[0].Value != "42" {
		t.Errorf("params[0] = %+v, want userId=42", params[0])
	}
	if params[1].Name != "postId" || params[1].Value != "100" {
		t.Errorf("params[1] = %+v, want postId=100", params[1])
	}
}

func TestMatchSegmentCountMismatch(t *testing.T) {
	if _, ok := Match("/a/b", "/a"); ok {
		t.Error("should not match /a against /a/b")
	}
	if _, ok := Match("/a", "/a/b"); ok {
		t.Error("should not match /a/b against /a")
	}
}

func TestMatchWildcardBindsOneSegment(t *testing.T) {
	params, ok := Match("/files/*name", "/files/report.pdf")
	if !ok {
		t.Fatal("expected match")
	}
	if params[0].Name != "name" || params[0].Value != "report.pdf" {
		t.Errorf("params[0] = %+v, want name=report.pdf", params[0])
	}

	// A wildcard consumes exactly one segment, never a suffix.
	if _, ok := Match("/files/*name", "/files/a/b"); ok {
		t.Error("wildcard should not match more than one segment")
	}
}

func TestMatchBareWildcardName(t *testing.T) {
	params, ok := Match("/files/*", "/files/x")
	if !ok {
		t.Fatal("expected match")
	}
	if params[0].Name != "wildcard" || params[0].Value != "x" {
		t.Errorf("params[0] = %+v, want wildcard=x", params[0])
	}
}

func TestMatchRoot(t *testing.T) {
	params, ok := Match("/", "/")
	if !ok {
		t.Fatal("expected match for root")
	}
	if len(params) != 0 {
		t.Errorf("len(params) = %d, want 0", len(params))
	}
}

func TestMatchTrailingSlashInsensitive(t *testing.T) {
	if _, ok := Match("/users", "/users/"); !ok {
		t.Error("trailing slash should not prevent a match")
	}
}
