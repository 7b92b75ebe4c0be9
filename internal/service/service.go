// Package service contains the business logic for the Travel Journal.
// Services validate inputs, enforce ownership rules, and orchestrate repo
// calls. Every operation runs inside exactly one store transaction, so a
// caller never sees a half-applied write or cascade.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/repo"
)

// Transactor runs fn with repositories bound to a single transaction,
// committing when fn returns nil. *repo.Store satisfies it; tests substitute
// a fake that hands out mock repos.
type Transactor interface {
	InTx(ctx context.Context, fn func(repo.Repos) error) error
}

// validateName rejects names that are empty or whitespace-only.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return nil
}
