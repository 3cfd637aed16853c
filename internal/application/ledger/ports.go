package ledger

import (
	"context"

	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

// TxRunner runs a callback inside one database transaction with repositories
// bound to that transaction. The callback returning an error rolls everything
// back; otherwise the transaction commits.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
