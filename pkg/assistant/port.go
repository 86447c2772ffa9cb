package assistant

import "context"

// MemoryRepository persists the append-only conversation log. Append is
// non-transactional; Recent returns the most recent turns restored to
// chronological order (oldest first) regardless of the store's natural
// newest-first ordering.
type MemoryRepository interface {
	Append(ctx context.Context, role Role, text string) error
	Recent(ctx context.Context, limit int) ([]Turn, error)
}

// InstructionRepository reads the static instruction set. Instructions
// are fetched fresh on every request.
type InstructionRepository interface {
	FindAll(ctx context.Context, limit int) ([]Instruction, error)
}

// RuleRepository reads the answer policy rules
type RuleRepository interface {
	FindAll(ctx context.Context) ([]Rule, error)
}

// Notifier dispatches an extracted command body as a side effect
// (e.g. sending the text to a Telegram chat).
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
