package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/modules/receipts/datagateway"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/samber/lo"
)

var _ datagateway.ReceiptsDataGateway = (*Repository)(nil)

var ErrTxAlreadyExists = errors.New("Transaction already exists. Call Commit() or Rollback() first.")

type store struct {
	mu       sync.RWMutex
	receipts map[string]entity.Receipt
	instance *entity.ContractInstance
}

// Repository keeps receipts in process memory. Transactions buffer their
// writes and apply them to the shared store on Commit.
type Repository struct {
	store   *store
	pending map[string]entity.Receipt // nil outside a transaction
}

func NewRepository() *Repository {
	return &Repository{
		store: &store{receipts: make(map[string]entity.Receipt)},
	}
}

func (r *Repository) BeginReceiptsTx(context.Context) (datagateway.ReceiptsDataGatewayWithTx, error) {
	if r.pending != nil {
		return nil, errors.WithStack(ErrTxAlreadyExists)
	}
	return &Repository{
		store:   r.store,
		pending: make(map[string]entity.Receipt),
	}, nil
}

func (r *Repository) Commit(context.Context) error {
	if r.pending == nil {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, receipt := range r.pending {
		r.store.receipts[id] = receipt
	}
	r.pending = nil
	return nil
}

func (r *Repository) Rollback(context.Context) error {
	r.pending = nil
	return nil
}

func (r *Repository) lookup(id string) (entity.Receipt, bool) {
	if receipt, ok := r.pending[id]; ok {
		return receipt, true
	}
	receipt, ok := r.store.receipts[id]
	return receipt, ok
}

func (r *Repository) GetReceipt(_ context.Context, id string) (*entity.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	receipt, ok := r.lookup(id)
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "receipt %q", id)
	}
	return &receipt, nil
}

func (r *Repository) GetReceiptsByIDs(_ context.Context, ids []string) (map[string]*entity.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	result := make(map[string]*entity.Receipt, len(ids))
	for _, id := range ids {
		if receipt, ok := r.lookup(id); ok {
			result[id] = &receipt
		}
	}
	return result, nil
}

func (r *Repository) ListReceipts(_ context.Context, afterID string, limit int32) ([]*entity.Receipt, error) {
	if limit <= 0 {
		return nil, errors.Wrap(errs.InvalidArgument, "limit must be positive")
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := lo.Uniq(append(lo.Keys(r.store.receipts), lo.Keys(r.pending)...))
	ids = lo.Filter(ids, func(id string, _ int) bool { return id > afterID })
	slices.Sort(ids)
	if len(ids) > int(limit) {
		ids = ids[:limit]
	}
	return lo.Map(ids, func(id string, _ int) *entity.Receipt {
		receipt, _ := r.lookup(id)
		return &receipt
	}), nil
}

func (r *Repository) CountReceipts(context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	count := len(r.store.receipts)
	for id := range r.pending {
		if _, ok := r.store.receipts[id]; !ok {
			count++
		}
	}
	return int64(count), nil
}

func (r *Repository) UpsertReceipt(_ context.Context, receipt entity.Receipt) error {
	if r.pending != nil {
		r.pending[receipt.ReceiptID] = receipt
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.receipts[receipt.ReceiptID] = receipt
	return nil
}

func (r *Repository) GetContractInstance(context.Context) (*entity.ContractInstance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.instance == nil {
		return nil, errors.Wrap(errs.NotFound, "contract instance")
	}
	instance := *r.store.instance
	return &instance, nil
}

func (r *Repository) CreateContractInstance(_ context.Context, instance entity.ContractInstance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.instance != nil {
		return errors.Wrap(errs.ConflictSetting, "contract instance already exists")
	}
	r.store.instance = &instance
	return nil
}
