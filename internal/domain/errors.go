package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrItemNotFound       = errors.New("artículo no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrInsufficientTender = errors.New("el monto entregado es menor que el total")
	ErrRenderFailed       = errors.New("no se pudo generar el documento de la factura")
)
