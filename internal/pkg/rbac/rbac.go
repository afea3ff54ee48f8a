// Package rbac maps user roles to the permissions checked by the HTTP layer.
package rbac

import "github.com/tpdc055/connectpng/internal/modules/model"

const (
	PermissionProjectManage    = "project:manage"
	PermissionContractorManage = "contractor:manage"

	PermissionGpsCreate = "gps:create"

	PermissionQualityCreate = "quality:create"
	PermissionQualityUpdate = "quality:update"
	PermissionQualityDelete = "quality:delete"

	PermissionProgressCreate  = "progress:create"
	PermissionMilestoneManage = "milestone:manage"
	PermissionFinanceManage   = "finance:manage"

	PermissionUserManage    = "user:manage"
	PermissionLookupRefresh = "lookup:refresh"
)

var rolePermissions = map[model.Role][]string{
	model.RoleAdmin: {
		PermissionProjectManage,
		PermissionContractorManage,
		PermissionGpsCreate,
		PermissionQualityCreate,
		PermissionQualityUpdate,
		PermissionQualityDelete,
		PermissionProgressCreate,
		PermissionMilestoneManage,
		PermissionFinanceManage,
		PermissionUserManage,
		PermissionLookupRefresh,
	},
	model.RoleProgramManager: {
		PermissionProjectManage,
		PermissionContractorManage,
		PermissionQualityCreate,
		PermissionQualityUpdate,
		PermissionProgressCreate,
		PermissionMilestoneManage,
		PermissionFinanceManage,
	},
	model.RoleManager: {
		PermissionProjectManage,
		PermissionContractorManage,
		PermissionMilestoneManage,
		PermissionFinanceManage,
	},
	model.RoleQaQcOfficer: {
		PermissionQualityCreate,
		PermissionQualityUpdate,
		PermissionQualityDelete,
	},
	model.RoleSiteEngineer: {
		PermissionGpsCreate,
		PermissionQualityCreate,
		PermissionQualityUpdate,
		PermissionProgressCreate,
	},
	model.RoleSupervisor: {
		PermissionGpsCreate,
		PermissionProgressCreate,
	},
	model.RoleEngineer: {
		PermissionGpsCreate,
		PermissionProgressCreate,
		PermissionMilestoneManage,
	},
}

// HasPermission reports whether the role grants the permission.
func HasPermission(role model.Role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// CheckPermission returns a PermissionDeniedError when the role lacks the
// permission, nil otherwise.
func CheckPermission(role model.Role, permission string) error {
	if !HasPermission(role, permission) {
		return &PermissionDeniedError{Role: role, Permission: permission}
	}
	return nil
}

type PermissionDeniedError struct {
	Role       model.Role
	Permission string
}

func (e *PermissionDeniedError) Error() string {
	return "insufficient permissions"
}
