package entity

import "time"

// Store representa una tienda/tenant del sistema (multi-tenant).
// Todo User y Product pertenece exactamente a una Store; el nombre es único global.
// Inmutable después del registro inicial.
type Store struct {
	ID        string
	Name      string // único global
	CreatedAt time.Time
}
