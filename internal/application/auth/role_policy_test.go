package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estudiolens/fotoestudio-api/internal/application/auth"
	"github.com/estudiolens/fotoestudio-api/internal/domain/entity"
)

const adminEmail = "admin@gmail.com"

// El email administrativo fijo siempre resuelve a admin, sin importar lo que
// diga el rol persistido.
func TestResolveRole_EmailAdminSiempreEsAdmin(t *testing.T) {
	assert.Equal(t, entity.RoleAdmin, auth.ResolveRole(adminEmail, adminEmail, ""))
	assert.Equal(t, entity.RoleAdmin, auth.ResolveRole(adminEmail, adminEmail, entity.RoleUser))
	assert.Equal(t, entity.RoleAdmin, auth.ResolveRole(adminEmail, adminEmail, "otro-rol"))
}

// Cualquier otro email usa el rol persistido.
func TestResolveRole_OtroEmailUsaRolPersistido(t *testing.T) {
	assert.Equal(t, entity.RoleUser, auth.ResolveRole(adminEmail, "alice@example.com", entity.RoleUser))
	assert.Equal(t, entity.RoleAdmin, auth.ResolveRole(adminEmail, "otra-admin@example.com", entity.RoleAdmin))
}

// Sin rol persistido, el default es user.
func TestResolveRole_SinRolPersistidoDefaultUser(t *testing.T) {
	assert.Equal(t, entity.RoleUser, auth.ResolveRole(adminEmail, "alice@example.com", ""))
}

// Con email administrativo vacío no hay cuenta privilegiada implícita.
func TestResolveRole_AdminEmailVacioNoPrivilegia(t *testing.T) {
	assert.Equal(t, entity.RoleUser, auth.ResolveRole("", "", ""))
	assert.Equal(t, entity.RoleUser, auth.ResolveRole("", "alice@example.com", ""))
}
