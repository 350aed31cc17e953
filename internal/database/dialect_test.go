package database

import "testing"

func TestNumberPlaceholders(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "no placeholders",
			query: "SELECT id FROM families",
			want:  "SELECT id FROM families",
		},
		{
			name:  "single placeholder",
			query: "SELECT id FROM families WHERE id = ?",
			want:  "SELECT id FROM families WHERE id = $1",
		},
		{
			name:  "multiple placeholders",
			query: "INSERT INTO chores (title, due_date, is_completed) VALUES (?, ?, ?)",
			want:  "INSERT INTO chores (title, due_date, is_completed) VALUES ($1, $2, $3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := numberPlaceholders(tt.query); got != tt.want {
				t.Errorf("numberPlaceholders(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestDialectProperties(t *testing.T) {
	tests := []struct {
		name              string
		dialect           Dialect
		driver            string
		lastInsertID      bool
		migrationsSubdir  string
		rewritesToNumbers bool
	}{
		{"sqlite", NewSQLiteDialect(), "sqlite3", true, "sqlite", false},
		{"postgres", NewPostgresDialect(), "postgres", false, "postgres", true},
		{"mysql", NewMySQLDialect(), "mysql", true, "mysql", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.driver {
				t.Errorf("DriverName = %q, want %q", got, tt.driver)
			}
			if got := tt.dialect.SupportsLastInsertID(); got != tt.lastInsertID {
				t.Errorf("SupportsLastInsertID = %v, want %v", got, tt.lastInsertID)
			}
			if got := tt.dialect.MigrationsSubdir(); got != tt.migrationsSubdir {
				t.Errorf("MigrationsSubdir = %q, want %q", got, tt.migrationsSubdir)
			}

			query := "SELECT name FROM members WHERE family_id = ?"
			rewritten := tt.dialect.RewriteQuery(query)
			if tt.rewritesToNumbers && rewritten == query {
				t.Error("expected placeholder rewrite")
			}
			if !tt.rewritesToNumbers && rewritten != query {
				t.Errorf("unexpected rewrite: %q", rewritten)
			}
		})
	}
}
