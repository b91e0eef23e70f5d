package entity

// Principal es la identidad autenticada del caller: quién es, qué rol tiene
// y a qué tienda pertenece. Se construye desde los claims del JWT después
// del middleware de auth y se pasa explícitamente a los casos de uso.
type Principal struct {
	UserID  string
	StoreID string
	Role    string
}

// HasRole verifica si el rol del principal está dentro de los permitidos.
func (p Principal) HasRole(roles ...string) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
