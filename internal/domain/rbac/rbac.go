package rbac

import "gestorpro/internal/domain/entities"

type Action string

const (
	ActionRead     Action = "read"
	ActionWrite    Action = "write"
	ActionVerify   Action = "verify"
	ActionReports  Action = "reports"
	ActionAI       Action = "ai"
	ActionSettings Action = "settings"
	ActionTeam     Action = "team"
	ActionAudit    Action = "audit"
	ActionPortal   Action = "portal"
)

func Can(role entities.Role, action Action) bool {
	switch role {
	case entities.RoleAdmin:
		return action != ActionPortal
	case entities.RoleGestor:
		return action == ActionRead || action == ActionWrite || action == ActionReports || action == ActionAI || action == ActionSettings
	case entities.RoleVerificador:
		return action == ActionRead || action == ActionVerify || action == ActionReports || action == ActionSettings
	case entities.RoleContador:
		return action == ActionRead || action == ActionReports || action == ActionSettings
	case entities.RoleTenant:
		return action == ActionPortal
	default:
		return false
	}
}

// Normalize maps unknown roles to the least privileged staff role.
func Normalize(role string) entities.Role {
	r := entities.Role(role)
	if r.Valid() {
		return r
	}
	return entities.RoleContador
}
