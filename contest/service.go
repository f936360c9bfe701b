// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contest

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/danielhkuo/titan-sentara/auth"
	"github.com/danielhkuo/titan-sentara/models"
)

// Policy holds the configurable voting rules that the observed ledger
// behavior leaves open. The defaults match that behavior exactly.
type Policy struct {
	// SingleCastPerPosition rejects a second cast by the same voter for
	// the same position. Off by default: the ledger interface permits
	// repeat casts, including for different candidates.
	SingleCastPerPosition bool
}

// Service is the contest state aggregate: registry, voting window, and
// ballot ledger behind one mutation boundary. All mutating operations
// serialize on the mutex and run inside a single database transaction,
// so a reader never observes a ballot without its vote count update or
// vice versa.
type Service struct {
	mu     sync.Mutex
	db     *sql.DB
	admin  string
	policy Policy
	now    func() time.Time
}

// NewService wires the aggregate to its storage and fixes the contest
// admin. The admin address is persisted on first start; a later restart
// with a different address is refused rather than silently transferring
// the contest.
func NewService(db *sql.DB, adminAddress string, policy Policy) (*Service, error) {
	admin, err := auth.NormalizeAddress(adminAddress)
	if err != nil {
		return nil, fmt.Errorf("admin address: %w", err)
	}

	s := &Service{
		db:     db,
		admin:  admin,
		policy: policy,
		now:    time.Now,
	}

	if err := s.ensureAdmin(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) ensureAdmin() error {
	var stored string
	err := s.db.QueryRow(`SELECT address FROM contest_admin WHERE id = 1`).Scan(&stored)
	if err == sql.ErrNoRows {
		_, err = s.db.Exec(`
			INSERT INTO contest_admin (id, address)
			VALUES (1, $1)
		`, s.admin)
		if err != nil {
			return fmt.Errorf("failed to store contest admin: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load contest admin: %w", err)
	}

	if !auth.SameAddress(stored, s.admin) {
		return fmt.Errorf("contest admin is already set to %s; the admin identity is immutable", stored)
	}
	return nil
}

// Admin returns the contest admin's normalized address.
func (s *Service) Admin() string {
	return s.admin
}

// IsAdmin reports whether the caller is the contest admin. Malformed
// addresses are simply not the admin.
func (s *Service) IsAdmin(caller string) bool {
	addr, err := auth.NormalizeAddress(caller)
	if err != nil {
		return false
	}
	return auth.SameAddress(addr, s.admin)
}

func (s *Service) requireAdmin(caller string) error {
	if !s.IsAdmin(caller) {
		return ErrUnauthorized
	}
	return nil
}

// AddPosition registers a new contested position and returns its ID.
// IDs are sequential starting at 1 and never reused. Duplicate names are
// permitted; the ledger interface never checked for them.
func (s *Service) AddPosition(caller, name string) (int64, error) {
	if err := s.requireAdmin(caller); err != nil {
		return 0, err
	}
	if name == "" {
		return 0, fmt.Errorf("%w: position name is required", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	if err := tx.QueryRow(`SELECT COALESCE(MAX(id), 0) + 1 FROM position`).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to assign position id: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO position (id, name)
		VALUES ($1, $2)
	`, id, name); err != nil {
		return 0, fmt.Errorf("failed to insert position: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit position: %w", err)
	}

	return id, nil
}

// AddCandidate registers a candidate for an existing position and
// returns the candidate ID.
func (s *Service) AddCandidate(caller, name string, positionID int64) (int64, error) {
	if err := s.requireAdmin(caller); err != nil {
		return 0, err
	}
	if name == "" {
		return 0, fmt.Errorf("%w: candidate name is required", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM position WHERE id = $1)`, positionID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check position: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: position %d", ErrNotFound, positionID)
	}

	var id int64
	if err := tx.QueryRow(`SELECT COALESCE(MAX(id), 0) + 1 FROM candidate`).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to assign candidate id: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO candidate (id, name, position_id, vote_count)
		VALUES ($1, $2, $3, 0)
	`, id, name, positionID); err != nil {
		return 0, fmt.Errorf("failed to insert candidate: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit candidate: %w", err)
	}

	return id, nil
}

// SetVotingParameters replaces the parameter set wholesale. Calling it
// again at any time re-arms the window; already-recorded ballots are
// never affected. Returns the resulting window state.
func (s *Service) SetVotingParameters(caller string, unitCost, startTime, endTime int64) (string, error) {
	if err := s.requireAdmin(caller); err != nil {
		return "", err
	}
	if unitCost < 0 {
		return "", fmt.Errorf("%w: unit cost must be >= 0", ErrInvalidArgument)
	}
	if startTime >= endTime {
		return "", fmt.Errorf("%w: start time must be before end time", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO voting_params (id, unit_cost, start_time, end_time, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET unit_cost = EXCLUDED.unit_cost,
		    start_time = EXCLUDED.start_time,
		    end_time = EXCLUDED.end_time,
		    updated_at = NOW()
	`, unitCost, startTime, endTime)
	if err != nil {
		return "", fmt.Errorf("failed to store voting parameters: %w", err)
	}

	p := models.VotingParameters{UnitCost: unitCost, StartTime: startTime, EndTime: endTime}
	return windowState(p, true, s.now()), nil
}

// CastVotes validates and records one paid vote transaction: it appends
// a ledger entry and increments the candidate's vote count in the same
// transaction. Preconditions are checked in order, first failure wins:
// window open, position/candidate exist and match, quantity >= 1,
// exact payment. Returns the assigned ballot sequence number.
func (s *Service) CastVotes(caller string, positionID, candidateID, quantity, amountPaid int64) (int64, error) {
	voter, err := auth.NormalizeAddress(caller)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	params, configured, err := loadParams(tx)
	if err != nil {
		return 0, err
	}
	if !isOpen(params, configured, s.now()) {
		return 0, ErrVotingClosed
	}

	var posExists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM position WHERE id = $1)`, positionID).Scan(&posExists)
	if err != nil {
		return 0, fmt.Errorf("failed to check position: %w", err)
	}
	if !posExists {
		return 0, fmt.Errorf("%w: position %d", ErrNotFound, positionID)
	}

	var candPosition int64
	err = tx.QueryRow(`SELECT position_id FROM candidate WHERE id = $1`, candidateID).Scan(&candPosition)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: candidate %d", ErrNotFound, candidateID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to check candidate: %w", err)
	}
	if candPosition != positionID {
		return 0, fmt.Errorf("%w: candidate %d is not running for position %d", ErrNotFound, candidateID, positionID)
	}

	if quantity < 1 {
		return 0, fmt.Errorf("%w: quantity must be >= 1", ErrInvalidArgument)
	}

	cost, ok := totalCost(params.UnitCost, quantity)
	if !ok {
		return 0, fmt.Errorf("%w: quantity too large", ErrInvalidArgument)
	}
	if amountPaid != cost {
		return 0, fmt.Errorf("%w: required %d, paid %d", ErrInsufficientPayment, cost, amountPaid)
	}

	if s.policy.SingleCastPerPosition {
		var cast bool
		err = tx.QueryRow(`
			SELECT EXISTS(SELECT 1 FROM ballot WHERE voter = $1 AND position_id = $2)
		`, voter, positionID).Scan(&cast)
		if err != nil {
			return 0, fmt.Errorf("failed to check prior casts: %w", err)
		}
		if cast {
			return 0, ErrDuplicateCast
		}
	}

	var seq int64
	if err := tx.QueryRow(`SELECT COALESCE(MAX(seq), 0) + 1 FROM ballot`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to assign ballot seq: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO ballot (seq, voter, position_id, candidate_id, quantity, amount_paid, cast_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, seq, voter, positionID, candidateID, quantity, amountPaid, s.now().Unix()); err != nil {
		return 0, fmt.Errorf("failed to append ballot: %w", err)
	}

	if _, err := tx.Exec(`
		UPDATE candidate SET vote_count = vote_count + $1 WHERE id = $2
	`, quantity, candidateID); err != nil {
		return 0, fmt.Errorf("failed to update vote count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit ballot: %w", err)
	}

	return seq, nil
}

// totalCost multiplies without silently overflowing int64.
func totalCost(unitCost, quantity int64) (int64, bool) {
	if unitCost == 0 || quantity == 0 {
		return 0, true
	}
	if quantity > math.MaxInt64/unitCost {
		return 0, false
	}
	return unitCost * quantity, true
}

// Positions returns all positions in insertion order.
func (s *Service) Positions() ([]models.Position, error) {
	rows, err := s.db.Query(`SELECT id, name FROM position ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	return scanPositions(rows)
}

// Candidates returns all candidates in insertion order, or only those
// running for positionID when it is non-zero.
func (s *Service) Candidates(positionID int64) ([]models.Candidate, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if positionID != 0 {
		rows, err = s.db.Query(`
			SELECT id, name, position_id, vote_count FROM candidate
			WHERE position_id = $1 ORDER BY id
		`, positionID)
	} else {
		rows, err = s.db.Query(`
			SELECT id, name, position_id, vote_count FROM candidate ORDER BY id
		`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	return scanCandidates(rows)
}

// Parameters returns the current voting parameters; configured is false
// before the first successful SetVotingParameters.
func (s *Service) Parameters() (models.VotingParameters, bool, error) {
	return loadParams(s.db)
}

// WindowState returns the current lifecycle state of the contest.
func (s *Service) WindowState() (string, error) {
	params, configured, err := loadParams(s.db)
	if err != nil {
		return "", err
	}
	return windowState(params, configured, s.now()), nil
}

// Ballots returns the full cast ledger in sequence order.
func (s *Service) Ballots() ([]models.BallotCast, error) {
	rows, err := s.db.Query(`
		SELECT seq, voter, position_id, candidate_id, quantity, amount_paid, cast_at
		FROM ballot ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ballots: %w", err)
	}
	defer rows.Close()

	ballots := []models.BallotCast{}
	for rows.Next() {
		var b models.BallotCast
		if err := rows.Scan(&b.Seq, &b.Voter, &b.PositionID, &b.CandidateID, &b.Quantity, &b.AmountPaid, &b.CastAt); err != nil {
			return nil, fmt.Errorf("failed to scan ballot: %w", err)
		}
		ballots = append(ballots, b)
	}
	return ballots, rows.Err()
}

// Summary assembles a point-in-time consistent snapshot of the contest.
// All reads run inside one repeatable-read transaction, so an in-flight
// cast is either fully visible or not at all.
func (s *Service) Summary() (models.ContestSummary, error) {
	var summary models.ContestSummary

	tx, err := s.db.BeginTx(context.Background(), &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return summary, fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT id, name FROM position ORDER BY id`)
	if err != nil {
		return summary, fmt.Errorf("failed to query positions: %w", err)
	}
	summary.Positions, err = scanPositions(rows)
	rows.Close()
	if err != nil {
		return summary, err
	}

	rows, err = tx.Query(`SELECT id, name, position_id, vote_count FROM candidate ORDER BY id`)
	if err != nil {
		return summary, fmt.Errorf("failed to query candidates: %w", err)
	}
	summary.Candidates, err = scanCandidates(rows)
	rows.Close()
	if err != nil {
		return summary, err
	}

	params, configured, err := loadParams(tx)
	if err != nil {
		return summary, err
	}
	if configured {
		p := params
		summary.Parameters = &p
	}
	summary.WindowState = windowState(params, configured, s.now())

	if err := tx.QueryRow(`SELECT COUNT(*) FROM ballot`).Scan(&summary.BallotCount); err != nil {
		return summary, fmt.Errorf("failed to count ballots: %w", err)
	}

	summary.Admin = s.admin
	return summary, nil
}

// rowQuerier is satisfied by both *sql.DB and *sql.Tx.
type rowQuerier interface {
	QueryRow(query string, args ...any) *sql.Row
}

func loadParams(q rowQuerier) (models.VotingParameters, bool, error) {
	var p models.VotingParameters
	err := q.QueryRow(`
		SELECT unit_cost, start_time, end_time FROM voting_params WHERE id = 1
	`).Scan(&p.UnitCost, &p.StartTime, &p.EndTime)
	if err == sql.ErrNoRows {
		return p, false, nil
	}
	if err != nil {
		return p, false, fmt.Errorf("failed to load voting parameters: %w", err)
	}
	return p, true, nil
}

func scanPositions(rows *sql.Rows) ([]models.Position, error) {
	positions := []models.Position{}
	for rows.Next() {
		var p models.Position
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func scanCandidates(rows *sql.Rows) ([]models.Candidate, error) {
	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.PositionID, &c.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
