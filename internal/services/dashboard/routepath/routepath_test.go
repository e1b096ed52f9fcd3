package routepath

import "testing"

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Users != "/users" {
		t.Fatalf("Users = %q", Users)
	}
	if UsersTable != "/users/table" {
		t.Fatalf("UsersTable = %q", UsersTable)
	}
	if UsersPrefix != "/users/" {
		t.Fatalf("UsersPrefix = %q", UsersPrefix)
	}
}

func TestUserBuilders(t *testing.T) {
	t.Parallel()

	if got := UserDetail("12"); got != "/users/12" {
		t.Fatalf("UserDetail = %q", got)
	}
	if got := UserStatus(" 12 "); got != "/users/12/status" {
		t.Fatalf("UserStatus = %q", got)
	}
	if got := UserStatus("a/b"); got != "/users/a%2Fb/status" {
		t.Fatalf("UserStatus escaped = %q", got)
	}
}

func TestWithQuery(t *testing.T) {
	t.Parallel()

	if got := WithQuery(Users, ""); got != "/users" {
		t.Fatalf("WithQuery(empty) = %q", got)
	}
	if got := WithQuery(Users, "?page=2"); got != "/users?page=2" {
		t.Fatalf("WithQuery(?page=2) = %q", got)
	}
	if got := WithQuery(UsersTable, "q=ann&status=ACTIVE"); got != "/users/table?q=ann&status=ACTIVE" {
		t.Fatalf("WithQuery = %q", got)
	}
}
