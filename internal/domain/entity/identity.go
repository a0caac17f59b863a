package entity

// Identity perfil devuelto por el proveedor OAuth tras el login.
type Identity struct {
	ID      string
	Name    string
	Email   string
	Picture string
}
