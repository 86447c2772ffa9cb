package assistantinfra

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/orgstruct/bff/pkg/assistant"
	"github.com/orgstruct/bff/pkg/errx"
	"github.com/orgstruct/bff/pkg/kernel"
)

// ============================================================================
// Conversation Memory
// ============================================================================

// PostgresMemoryRepository persists conversation turns with a
// draft-and-publish step: a turn becomes visible to reads only once its
// published_at is set.
type PostgresMemoryRepository struct {
	db *sqlx.DB
}

func NewPostgresMemoryRepository(db *sqlx.DB) assistant.MemoryRepository {
	return &PostgresMemoryRepository{db: db}
}

func (r *PostgresMemoryRepository) Append(ctx context.Context, role assistant.Role, text string) error {
	id := kernel.NewDocumentID()
	now := time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assistant_memory (id, role, text, created_at) VALUES ($1, $2, $3, $4)`,
		id.String(), string(role), text, now,
	)
	if err != nil {
		return errx.Wrap(err, "failed to create memory turn", errx.TypeInternal).
			WithDetail("role", string(role))
	}

	// Publish: make the turn visible to subsequent reads
	_, err = r.db.ExecContext(ctx,
		`UPDATE assistant_memory SET published_at = $1 WHERE id = $2`,
		now, id.String(),
	)
	if err != nil {
		return errx.Wrap(err, "failed to publish memory turn", errx.TypeInternal).
			WithDetail("turn_id", id.String())
	}

	return nil
}

func (r *PostgresMemoryRepository) Recent(ctx context.Context, limit int) ([]assistant.Turn, error) {
	query := `
		SELECT id, role, text, created_at
		FROM assistant_memory
		WHERE published_at IS NOT NULL
		ORDER BY created_at DESC
		LIMIT $1`

	var turns []assistant.Turn
	if err := r.db.SelectContext(ctx, &turns, query, limit); err != nil {
		return nil, errx.Wrap(err, "failed to read recent memory", errx.TypeInternal)
	}

	// The store returns newest-first; downstream consumers need
	// chronological order.
	reverseTurns(turns)
	return turns, nil
}

func reverseTurns(turns []assistant.Turn) {
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
}

// ============================================================================
// Instructions
// ============================================================================

type PostgresInstructionRepository struct {
	db *sqlx.DB
}

func NewPostgresInstructionRepository(db *sqlx.DB) assistant.InstructionRepository {
	return &PostgresInstructionRepository{db: db}
}

func (r *PostgresInstructionRepository) FindAll(ctx context.Context, limit int) ([]assistant.Instruction, error) {
	query := `
		SELECT id, value
		FROM assistant_instructions
		WHERE published_at IS NOT NULL
		ORDER BY created_at ASC
		LIMIT $1`

	var instructions []assistant.Instruction
	if err := r.db.SelectContext(ctx, &instructions, query, limit); err != nil {
		return nil, errx.Wrap(err, "failed to read instructions", errx.TypeInternal)
	}
	return instructions, nil
}

// ============================================================================
// Rules
// ============================================================================

type PostgresRuleRepository struct {
	db *sqlx.DB
}

func NewPostgresRuleRepository(db *sqlx.DB) assistant.RuleRepository {
	return &PostgresRuleRepository{db: db}
}

func (r *PostgresRuleRepository) FindAll(ctx context.Context) ([]assistant.Rule, error) {
	query := `
		SELECT id, value
		FROM assistant_rules
		WHERE published_at IS NOT NULL
		ORDER BY created_at ASC`

	var rules []assistant.Rule
	if err := r.db.SelectContext(ctx, &rules, query); err != nil {
		return nil, errx.Wrap(err, "failed to read rules", errx.TypeInternal)
	}
	return rules, nil
}
