package entity

import "time"

// Roles válidos para User. Replican la navegación de la caja:
// cashier solo factura y consulta; manager además gestiona catálogo y reportes;
// admin además gestiona usuarios.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
)

// User representa un operador del punto de venta.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, manager, cashier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
