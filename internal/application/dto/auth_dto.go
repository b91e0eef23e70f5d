package dto

// RegisterStoreRequest entrada para registrar una tienda con su admin inicial.
type RegisterStoreRequest struct {
	StoreName string `json:"store_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"required,min=1"`
}

// RegisterStoreResponse salida del registro: tienda creada + admin creado.
type RegisterStoreResponse struct {
	Store StoreResponse `json:"store"`
	Admin UserResponse  `json:"admin"`
}

// LoginRequest entrada para login (admin y employee, ambos por email).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
