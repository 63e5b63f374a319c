package common

type Module string

const (
	ModuleReceipts Module = "receipts"
)

func (m Module) String() string {
	return string(m)
}
