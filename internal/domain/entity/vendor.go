package entity

import "time"

// Vendor representa un proveedor de la tienda, con sus datos bancarios.
type Vendor struct {
	ID         string
	Name       string
	Mobile     string
	GST        string
	Address    string
	BankName   string
	BankAcNo   string
	BankIFSC   string
	BankBranch string
	CreatedAt  time.Time
}
