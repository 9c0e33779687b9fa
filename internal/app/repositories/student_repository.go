package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanmay/coachdesk/internal/app/models"
	"github.com/tanmay/coachdesk/internal/db"
	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
	"github.com/tanmay/coachdesk/internal/pkg/dberrors"
	"github.com/tanmay/coachdesk/internal/pkg/logger"
)

// StudentRepository handles student record database operations. The
// attendance ledger is append-only: this repository only ever inserts
// attendance rows, never updates or deletes them.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudentRow(row pgx.Row, rec *models.StudentRecord) error {
	return row.Scan(
		&rec.ID, &rec.Name, &rec.Email, &rec.Class, &rec.CreatedAt,
		&rec.Fees.Amount, &rec.Fees.Paid, &rec.Fees.PaymentID, &rec.Fees.OrderID, &rec.Fees.PaymentDate,
	)
}

const studentColumns = "id, name, email, class, created_at, fee_amount, fee_paid, payment_id, order_id, payment_date"

// GetByID retrieves a student record together with its attendance ledger.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.StudentRecord, error) {
	var rec models.StudentRecord
	err := scanStudentRow(r.db.QueryRow(ctx,
		"SELECT "+studentColumns+" FROM students WHERE id = $1", id), &rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	rec.Attendance = []models.AttendanceEntry{}
	rows, err := r.db.Query(ctx,
		"SELECT marked_at, teacher_name FROM attendance_entries WHERE student_id = $1 ORDER BY id", id)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error querying attendance entries")
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.AttendanceEntry
		if err := rows.Scan(&entry.Date, &entry.TeacherName); err != nil {
			return nil, fmt.Errorf("error scanning attendance entry: %w", err)
		}
		rec.Attendance = append(rec.Attendance, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance entries: %w", err)
	}

	return &rec, nil
}

// Exists reports whether a student record exists.
func (r *StudentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM students WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// List retrieves all student records ordered by name, each with its
// attendance ledger.
func (r *StudentRepository) List(ctx context.Context) ([]models.StudentRecord, error) {
	rows, err := r.db.Query(ctx, "SELECT "+studentColumns+" FROM students ORDER BY name")
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var records []models.StudentRecord
	index := make(map[string]int)
	for rows.Next() {
		var rec models.StudentRecord
		if err := scanStudentRow(rows, &rec); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		rec.Attendance = []models.AttendanceEntry{}
		index[rec.ID] = len(records)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	entryRows, err := r.db.Query(ctx,
		"SELECT student_id, marked_at, teacher_name FROM attendance_entries ORDER BY id")
	if err != nil {
		logger.Error().Err(err).Msg("Error querying attendance entries")
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var studentID string
		var entry models.AttendanceEntry
		if err := entryRows.Scan(&studentID, &entry.Date, &entry.TeacherName); err != nil {
			return nil, fmt.Errorf("error scanning attendance entry: %w", err)
		}
		if i, ok := index[studentID]; ok {
			records[i].Attendance = append(records[i].Attendance, entry)
		}
	}
	if err := entryRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance entries: %w", err)
	}

	return records, nil
}

// CreateOrMerge creates the student record if absent, otherwise merges
// the profile fields. Fee state and attendance are never touched here.
func (r *StudentRepository) CreateOrMerge(ctx context.Context, rec *models.StudentRecord) error {
	sql, args, err := r.sb.Insert("students").
		Columns("id", "name", "email", "class", "fee_amount").
		Values(rec.ID, rec.Name, rec.Email, rec.Class, rec.Fees.Amount).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, class = EXCLUDED.class").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("studentID", rec.ID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// AppendAttendanceBatch appends one attendance entry per resolvable
// student in a single transaction. Ids without a student record are
// skipped; if the store rejects the transaction nothing is applied.
// Returns the number of entries appended.
func (r *StudentRepository) AppendAttendanceBatch(ctx context.Context, studentIDs []string, teacherName string, at time.Time) (int, error) {
	applied := 0
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, id := range studentIDs {
			tag, err := tx.Exec(ctx,
				`INSERT INTO attendance_entries (student_id, marked_at, teacher_name)
				 SELECT id, $2, $3 FROM students WHERE id = $1`,
				id, at, teacherName)
			if err != nil {
				return fmt.Errorf("appending attendance for %s: %w", id, err)
			}
			applied += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		// A student removed between the existence probe and the insert
		// trips the foreign key; the whole batch still rolls back.
		if dberrors.IsForeignKeyViolation(err) {
			logger.Warn().Err(err).Int("batchSize", len(studentIDs)).Msg("Attendance batch hit a removed student")
		} else {
			logger.Error().Err(err).Int("batchSize", len(studentIDs)).Msg("Attendance batch rejected")
		}
		return 0, apperrors.NewCustomError(apperrors.ErrBatchRejected, err.Error())
	}

	return applied, nil
}

// SettleFees transitions the fee ledger to paid. The update is
// conditional on the current unpaid state so that concurrent settles
// and racing attendance writes cannot double-apply or overwrite each
// other. Returns false with no error when the ledger was already paid.
func (r *StudentRepository) SettleFees(ctx context.Context, studentID, paymentID, orderID string, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE students
		 SET fee_paid = true, payment_id = $2, order_id = $3, payment_date = $4
		 WHERE id = $1 AND fee_paid = false`,
		studentID, paymentID, orderID, at)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing settle fees update")
		return false, fmt.Errorf("error settling fees: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// No row changed: either the student does not exist or fees were
	// already settled.
	if _, err := r.FeesState(ctx, studentID); err != nil {
		return false, err
	}

	return false, nil
}

// FeesState reports whether the student's fees are settled.
func (r *StudentRepository) FeesState(ctx context.Context, studentID string) (bool, error) {
	var paid bool
	err := r.db.QueryRow(ctx, "SELECT fee_paid FROM students WHERE id = $1", studentID).Scan(&paid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error checking fee state")
		return false, fmt.Errorf("error checking fee state: %w", err)
	}
	return paid, nil
}
