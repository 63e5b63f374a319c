package contract

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/core/host"
	"github.com/gaze-network/realpay-receipts/modules/receipts/datagateway"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
)

var _ host.StateStore[datagateway.ReceiptsDataGateway] = (*StateStore)(nil)

// StateStore keeps the registry state in a receipts data gateway.
type StateStore struct {
	dg        datagateway.ReceiptsDataGateway
	dbVersion int32
}

// NewStateStore returns a StateStore on dg. Attaching to an instance created with
// another dbVersion is errs.ConflictSetting.
func NewStateStore(dg datagateway.ReceiptsDataGateway, dbVersion int32) *StateStore {
	return &StateStore{
		dg:        dg,
		dbVersion: dbVersion,
	}
}

func (s *StateStore) State() datagateway.ReceiptsDataGateway {
	return s.dg
}

func (s *StateStore) BeginTx(ctx context.Context) (datagateway.ReceiptsDataGateway, host.StateTx, error) {
	tx, err := s.dg.BeginReceiptsTx(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to begin receipts transaction")
	}
	return tx, tx, nil
}

func (s *StateStore) Instance(ctx context.Context) (host.Instance, error) {
	instance, err := s.dg.GetContractInstance(ctx)
	if err != nil {
		return host.Instance{}, errors.WithStack(err)
	}
	if instance.DBVersion != s.dbVersion {
		return host.Instance{}, errors.Wrapf(errs.ConflictSetting, "db version mismatch: current version is %d. Please upgrade to version %d", instance.DBVersion, s.dbVersion)
	}
	return host.Instance{
		Contract:  instance.Contract,
		Version:   instance.Version,
		CreatedAt: instance.CreatedAt,
	}, nil
}

func (s *StateStore) CreateInstance(ctx context.Context, instance host.Instance) error {
	if err := s.dg.CreateContractInstance(ctx, entity.ContractInstance{
		Contract:  instance.Contract,
		Version:   instance.Version,
		DBVersion: s.dbVersion,
		CreatedAt: instance.CreatedAt,
	}); err != nil {
		return errors.Wrap(err, "failed to create contract instance")
	}
	return nil
}
