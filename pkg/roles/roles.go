package roles

// Role codes used throughout the journal
const (
	CodeAuthor           = "AU"
	CodeConsultingEditor = "CE"
	CodeEditor           = "ED"
	CodeManagingEditor   = "ME"
	CodeReferee          = "RE"
)

var roleNames = map[string]string{
	CodeAuthor:           "Author",
	CodeConsultingEditor: "Consulting Editor",
	CodeEditor:           "Editor",
	CodeManagingEditor:   "Managing Editor",
	CodeReferee:          "Referee",
}

// Masthead roles carry cross-manuscript editorial authority.
var mastheadCodes = []string{CodeConsultingEditor, CodeEditor, CodeManagingEditor}

// GetRoles returns a copy of all role definitions keyed by code.
func GetRoles() map[string]string {
	out := make(map[string]string, len(roleNames))
	for code, name := range roleNames {
		out[code] = name
	}
	return out
}

// GetRoleCodes returns every registered role code.
func GetRoleCodes() []string {
	codes := make([]string, 0, len(roleNames))
	for code := range roleNames {
		codes = append(codes, code)
	}
	return codes
}

// IsValid checks if the code is a registered role.
func IsValid(code string) bool {
	_, ok := roleNames[code]
	return ok
}

// IsMasthead checks if the code belongs to the masthead subset.
func IsMasthead(code string) bool {
	for _, mh := range mastheadCodes {
		if mh == code {
			return true
		}
	}
	return false
}

// GetMastheadRoles returns only the masthead roles, keyed by code.
func GetMastheadRoles() map[string]string {
	out := make(map[string]string, len(mastheadCodes))
	for _, code := range mastheadCodes {
		out[code] = roleNames[code]
	}
	return out
}

// DisplayName returns the display name for a code, or the code itself
// if it is not registered.
func DisplayName(code string) string {
	if name, ok := roleNames[code]; ok {
		return name
	}
	return code
}
