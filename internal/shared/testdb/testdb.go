// Package testdb opens migrated SQLite databases and loads the shared fixture used by
// repository and service tests.
package testdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/config"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/migrations"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/connection"

	"gorm.io/gorm"
)

// Fixture identities.
const (
	AdminUserID      int64 = 1 // Admin role, employee 1
	OwnerUserID      int64 = 2 // employee 2, owns leave requests 1 and 2
	SupervisorUserID int64 = 3 // employee 3, supervises employee 2
	OutsiderUserID   int64 = 4 // employee 4, no relation to employee 2
	SystemUserID     int64 = 5 // Admin role, no employee

	AdminEmpNumber      int64 = 1
	OwnerEmpNumber      int64 = 2
	SupervisorEmpNumber int64 = 3
	OutsiderEmpNumber   int64 = 4

	// Leave request 5 belongs to employee 1 and has no comments.
	EmptyLeaveRequestID int64 = 5
	// Leave request 6 does not exist.
	MissingLeaveRequestID int64 = 6
)

// Open returns a migrated database stored under t.TempDir.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "orangehrm_test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := migrations.Up(context.Background(), db, config.DriverSQLite); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// OpenSeeded returns a migrated database with the fixture loaded.
func OpenSeeded(t testing.TB) *gorm.DB {
	t.Helper()
	db := Open(t)
	Seed(t, db)
	return db
}

func ts(v string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", v)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// Seed loads five employees, five users, five leave requests and seven comments.
// Comments 1-4 belong to leave request 1; 2 and 4 share a timestamp.
func Seed(t testing.TB, db *gorm.DB) {
	t.Helper()

	stmts := []struct {
		sql  string
		args []any
	}{
		{`INSERT INTO employees (emp_number, employee_id, first_name, middle_name, last_name, work_email) VALUES
			(1, '0001', 'Kayla', '', 'Abbey', 'kayla@example.com'),
			(2, '0002', 'Ashley', 'J', 'Abel', 'ashley@example.com'),
			(3, '0003', 'Renukshan', '', 'Saputhanthri', NULL),
			(4, '0004', 'Linda', '', 'Anderson', 'linda@example.com'),
			(5, '0005', 'Odis', '', 'Alwin', NULL)`, nil},
		{`INSERT INTO users (id, user_name, emp_number) VALUES
			(1, 'admin', 1), (2, 'ashley', 2), (3, 'renukshan', 3), (4, 'linda', 4), (5, 'system', NULL)`, nil},
		{`INSERT INTO report_to (sup_emp_number, sub_emp_number) VALUES (3, 2)`, nil},
		{`INSERT INTO user_roles (user_id, role_id)
			SELECT u.id, r.id FROM users u, roles r
			WHERE (u.id IN (1, 5) AND r.name = 'Admin') OR (u.id IN (2, 3, 4) AND r.name = 'ESS')`, nil},
		{`INSERT INTO leave_requests (id, emp_number, date_applied, status) VALUES (?, ?, ?, ?), (?, ?, ?, ?), (?, ?, ?, ?), (?, ?, ?, ?), (?, ?, ?, ?)`, []any{
			1, 2, ts("2010-08-30 00:00:00"), "PENDING",
			2, 2, ts("2010-09-01 00:00:00"), "APPROVED",
			3, 4, ts("2010-09-02 00:00:00"), "PENDING",
			4, 5, ts("2010-09-03 00:00:00"), "REJECTED",
			5, 1, ts("2010-09-04 00:00:00"), "PENDING",
		}},
		{`INSERT INTO leave_request_comments (id, leave_request_id, comment, created_at, created_by_user_id, created_by_emp_number) VALUES
			(?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?)`, []any{
			1, 1, "Please review before Friday", ts("2020-12-25 09:00:00"), 1, 1,
			2, 1, "Applied for the family trip", ts("2020-12-24 08:00:00"), 2, 2,
			3, 1, "Approved by supervisor", ts("2020-12-26 10:00:00"), 3, 3,
			4, 1, "Attached the booking", ts("2020-12-24 08:00:00"), 2, 2,
			5, 2, "Enjoy", ts("2020-12-27 10:00:00"), 1, 1,
			6, 3, "Sick note pending", ts("2020-12-28 10:00:00"), 4, 4,
			7, 4, "System generated", ts("2020-12-29 10:00:00"), 5, nil,
		}},
	}

	for _, s := range stmts {
		if err := db.Exec(s.sql, s.args...).Error; err != nil {
			t.Fatalf("seed fixture: %v", err)
		}
	}
}
