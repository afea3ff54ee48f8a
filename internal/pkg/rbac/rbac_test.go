package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tpdc055/connectpng/internal/modules/model"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       model.Role
		permission string
		want       bool
	}{
		{name: "admin can delete quality reports", role: model.RoleAdmin, permission: PermissionQualityDelete, want: true},
		{name: "qa officer can delete quality reports", role: model.RoleQaQcOfficer, permission: PermissionQualityDelete, want: true},
		{name: "site engineer cannot delete quality reports", role: model.RoleSiteEngineer, permission: PermissionQualityDelete, want: false},
		{name: "program manager can create quality reports", role: model.RoleProgramManager, permission: PermissionQualityCreate, want: true},
		{name: "site engineer can create quality reports", role: model.RoleSiteEngineer, permission: PermissionQualityCreate, want: true},
		{name: "manager cannot create quality reports", role: model.RoleManager, permission: PermissionQualityCreate, want: false},
		{name: "engineer can log gps points", role: model.RoleEngineer, permission: PermissionGpsCreate, want: true},
		{name: "only admin manages users", role: model.RoleProgramManager, permission: PermissionUserManage, want: false},
		{name: "unknown role has nothing", role: model.Role("INTERN"), permission: PermissionGpsCreate, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestCheckPermission(t *testing.T) {
	assert.NoError(t, CheckPermission(model.RoleAdmin, PermissionProjectManage))

	err := CheckPermission(model.RoleSupervisor, PermissionQualityDelete)
	assert.Error(t, err)

	var denied *PermissionDeniedError
	assert.ErrorAs(t, err, &denied)
	assert.Equal(t, model.RoleSupervisor, denied.Role)
	assert.Equal(t, PermissionQualityDelete, denied.Permission)
}
