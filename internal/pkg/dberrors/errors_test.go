package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !IsUniqueViolation(uniqueErr) {
		t.Fatal("23505 must be detected")
	}
	if !IsUniqueViolation(fmt.Errorf("error creating user: %w", uniqueErr)) {
		t.Fatal("wrapped 23505 must be detected")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("foreign key violation is not a unique violation")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Fatal("non-pg error must not match")
	}
	if IsUniqueViolation(nil) {
		t.Fatal("nil must not match")
	}
}

func TestIsUniqueConstraintError(t *testing.T) {
	emailErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !IsUniqueConstraintError(emailErr, "users_email_key") {
		t.Fatal("matching constraint must be detected")
	}
	if !IsUniqueConstraintError(fmt.Errorf("wrap: %w", emailErr), "users_email_key") {
		t.Fatal("wrapped matching constraint must be detected")
	}
	if IsUniqueConstraintError(emailErr, "users_google_id_key") {
		t.Fatal("different constraint must not match")
	}
	if IsUniqueConstraintError(&pgconn.PgError{Code: "23503", ConstraintName: "users_email_key"}, "users_email_key") {
		t.Fatal("non-unique code must not match even with the right constraint")
	}
}
