package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/internal/config"
	"github.com/gaze-network/realpay-receipts/modules/receipts"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/realpay-receipts/pkg/decimals"
	"github.com/gaze-network/realpay-receipts/pkg/reportingclient"
	"github.com/gaze-network/uint128"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func NewReceiptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Mint and look up receipts",
	}
	cmd.AddCommand(
		newReceiptInitCommand(),
		newReceiptMintCommand(),
		newReceiptGetCommand(),
	)
	return cmd
}

// openReceipts opens the receipts module outside of the run command.
func openReceipts(cmd *cobra.Command) (*receipts.Module, config.Config, error) {
	conf := config.Load()

	var reportingClient *reportingclient.ReportingClient
	if !conf.Reporting.Disabled {
		client, err := reportingclient.New(conf.Reporting)
		if err != nil {
			return nil, conf, errors.Wrap(err, "invalid reporting configuration")
		}
		reportingClient = client
	}

	module, err := receipts.Open(cmd.Context(), conf.Modules.Receipts, reportingClient)
	if err != nil {
		return nil, conf, errors.WithStack(err)
	}
	return module, conf, nil
}

type receiptOutput struct {
	ReceiptID string `json:"receiptId"`
	TxHash    string `json:"txHash"`
	AmountPlt string `json:"amountPlt"`
	Amount    string `json:"amount"`
	TsUnix    uint64 `json:"tsUnix"`
}

func printReceipt(cmd *cobra.Command, r *entity.Receipt, tokenDecimals uint8) error {
	out, err := json.MarshalIndent(receiptOutput{
		ReceiptID: r.ReceiptID,
		TxHash:    r.TxHash,
		AmountPlt: r.AmountPLT.String(),
		Amount:    decimals.FormatAmount(r.AmountPLT, tokenDecimals),
		TsUnix:    r.TsUnix,
	}, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func newReceiptInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the receipt registry instance if it doesn't exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, _, err := openReceipts(cmd)
			if err != nil {
				return errors.WithStack(err)
			}
			defer module.Shutdown()

			instance, _ := module.Host.Instance()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s created at %s\n", instance.Contract, instance.Version, instance.CreatedAt.Format(time.RFC3339))
			return nil
		},
	}
}

type receiptMintCmdOptions struct {
	ID     string
	TxHash string
	Amount string
	TsUnix uint64
}

func (o receiptMintCmdOptions) Validate() (uint128.Uint128, error) {
	var errList []error
	amount, err := uint128.FromString(o.Amount)
	if err != nil {
		errList = append(errList, errors.Errorf("--amount %q is not a valid u128", o.Amount))
	}
	return amount, errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

func newReceiptMintCommand() *cobra.Command {
	opts := &receiptMintCmdOptions{}

	cmd := &cobra.Command{
		Use:     "mint",
		Short:   "Mint a receipt",
		Example: `realpay receipt mint --id r1 --tx-hash 0xabc --amount 1000 --ts 1700000000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := opts.Validate()
			if err != nil {
				return errors.WithStack(err)
			}
			module, conf, err := openReceipts(cmd)
			if err != nil {
				return errors.WithStack(err)
			}
			defer module.Shutdown()

			r := entity.Receipt{
				ReceiptID: opts.ID,
				TxHash:    opts.TxHash,
				AmountPLT: amount,
				TsUnix:    opts.TsUnix,
			}
			if r.ReceiptID == "" {
				r.ReceiptID = uuid.NewString()
			}
			if r.TxHash == "" {
				r.TxHash = "tx_" + uuid.NewString()
			}
			if r.TsUnix == 0 {
				r.TsUnix = uint64(time.Now().Unix())
			}

			inv, err := module.Usecase.MintReceipt(cmd.Context(), r, "cli")
			if err != nil {
				return errors.WithStack(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "minted in invocation %s (sequence %d)\n", inv.Hash, inv.Sequence)
			return printReceipt(cmd, &r, conf.Modules.Receipts.TokenDecimals)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ID, "id", "", "Receipt id. Defaults to a random UUID")
	flags.StringVar(&opts.TxHash, "tx-hash", "", "Payment transaction hash. Defaults to `tx_<uuid>`")
	flags.StringVar(&opts.Amount, "amount", "0", "Amount in PLT base units")
	flags.Uint64Var(&opts.TsUnix, "ts", 0, "Unix timestamp of the payment. Defaults to now")

	return cmd
}

func newReceiptGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <receipt-id>",
		Short: "Look up a receipt by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, conf, err := openReceipts(cmd)
			if err != nil {
				return errors.WithStack(err)
			}
			defer module.Shutdown()

			r, err := module.Usecase.GetReceipt(cmd.Context(), args[0])
			if err != nil {
				return errors.WithStack(err)
			}
			if r == nil {
				return errors.Wrapf(errs.NotFound, "receipt %q", args[0])
			}
			return printReceipt(cmd, r, conf.Modules.Receipts.TokenDecimals)
		},
	}
}
