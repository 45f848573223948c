package security

import "journal-scribe/editorial-portal/editorial-portal-backend/pkg/roles"

// Features and actions guarded by permission rules
const (
	FeatureText = "text"

	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// permissionRules maps feature and action to the roles allowed to do it.
// Anything not listed is denied.
var permissionRules = map[string]map[string][]string{
	FeatureText: {
		ActionCreate: {roles.CodeConsultingEditor, roles.CodeEditor, roles.CodeManagingEditor},
		ActionUpdate: {roles.CodeConsultingEditor, roles.CodeEditor, roles.CodeManagingEditor},
		ActionDelete: {roles.CodeManagingEditor},
	},
}

// IsPermitted reports whether any of the user's roles allows the action
// on the feature. Unlisted feature/action pairs deny by default.
func IsPermitted(feature, action string, userRoles []string) bool {
	actions, ok := permissionRules[feature]
	if !ok {
		return false
	}
	required, ok := actions[action]
	if !ok {
		return false
	}
	for _, role := range userRoles {
		for _, req := range required {
			if role == req {
				return true
			}
		}
	}
	return false
}
