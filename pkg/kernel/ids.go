package kernel

import "github.com/google/uuid"

// DocumentID identifies a stored document (memory turn, instruction, config)
type DocumentID string

// NewDocumentID generates a fresh document identifier
func NewDocumentID() DocumentID {
	return DocumentID(uuid.NewString())
}

func (id DocumentID) String() string {
	return string(id)
}

func (id DocumentID) IsZero() bool {
	return id == ""
}

// ChatID identifies a Telegram chat
type ChatID string

func (id ChatID) String() string {
	return string(id)
}
