package auth

import "github.com/estudiolens/fotoestudio-api/internal/domain/entity"

// ResolveRole es la política de rol derivado, aislada en una sola función para
// poder probarla y reemplazarla (p. ej. por claims reales) sin tocar call sites:
//
//   - el email administrativo fijo siempre resuelve a admin, sin importar lo
//     que diga el documento persistido;
//   - cualquier otro email usa el rol persistido;
//   - sin rol persistido, el default es user.
func ResolveRole(adminEmail, email, storedRole string) string {
	if adminEmail != "" && email == adminEmail {
		return entity.RoleAdmin
	}
	if storedRole == "" {
		return entity.RoleUser
	}
	return storedRole
}
