package entity

import (
	"time"

	"github.com/gaze-network/realpay-receipts/pkg/serial"
	"github.com/gaze-network/uint128"
)

// Receipt is the record stored under ReceiptID. A later mint with the same id replaces it.
type Receipt struct {
	ReceiptID string
	TxHash    string
	AmountPLT uint128.Uint128
	TsUnix    uint64
}

func (r Receipt) Serial(w *serial.Writer) {
	w.String(r.ReceiptID)
	w.String(r.TxHash)
	w.U128(r.AmountPLT)
	w.U64(r.TsUnix)
}

func (r *Receipt) Deserial(c *serial.Cursor) (err error) {
	var out Receipt
	if out.ReceiptID, err = c.String("receipt_id"); err != nil {
		return err
	}
	if out.TxHash, err = c.String("tx_hash"); err != nil {
		return err
	}
	if out.AmountPLT, err = c.U128("amount_plt"); err != nil {
		return err
	}
	if out.TsUnix, err = c.U64("ts_unix"); err != nil {
		return err
	}
	*r = out
	return nil
}

// ReceiptEmitted is the event published once per successful mint.
type ReceiptEmitted struct {
	ReceiptID string `json:"receiptId"`
	TxHash    string `json:"txHash"`
	TsUnix    uint64 `json:"tsUnix"`
}

func (e ReceiptEmitted) Serial(w *serial.Writer) {
	w.String(e.ReceiptID)
	w.String(e.TxHash)
	w.U64(e.TsUnix)
}

func (e *ReceiptEmitted) Deserial(c *serial.Cursor) (err error) {
	var out ReceiptEmitted
	if out.ReceiptID, err = c.String("receipt_id"); err != nil {
		return err
	}
	if out.TxHash, err = c.String("tx_hash"); err != nil {
		return err
	}
	if out.TsUnix, err = c.U64("ts_unix"); err != nil {
		return err
	}
	*e = out
	return nil
}

type ContractInstance struct {
	Contract  string
	Version   string
	DBVersion int32
	CreatedAt time.Time
}
