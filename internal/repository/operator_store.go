package repository

import (
	"fmt"
	"sync"

	"safe_dashboard/internal/models"
)

// OperatorMemory keeps dashboard operator accounts in memory; accounts are
// as volatile as the rest of the session state.
type OperatorMemory struct {
	mu     sync.Mutex
	byName map[string]models.Operator
	nextID int
}

var _ OperatorStore = (*OperatorMemory)(nil)

func NewOperatorMemory() *OperatorMemory {
	return &OperatorMemory{
		byName: make(map[string]models.Operator),
		nextID: 1,
	}
}

// Create registers a new operator and returns its ID.
func (r *OperatorMemory) Create(username, hash string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[username]; exists {
		return 0, fmt.Errorf("operator %q already exists", username)
	}
	op := models.Operator{ID: r.nextID, Username: username, PasswordHash: hash}
	r.byName[username] = op
	r.nextID++
	return op.ID, nil
}

// GetByUsername fetches an operator by username. Returns (nil, nil) when no
// such operator exists.
func (r *OperatorMemory) GetByUsername(username string) (*models.Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	op, ok := r.byName[username]
	if !ok {
		return nil, nil
	}
	return &op, nil
}
