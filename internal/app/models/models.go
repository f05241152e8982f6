package models

// Role is the dashboard role stored in admin_users
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// TeamCategory groups team members on the about page
type TeamCategory string

const (
	TeamCategoryTeam       TeamCategory = "team"
	TeamCategoryLeadership TeamCategory = "leadership"
)

// Valid reports whether c is a known category
func (c TeamCategory) Valid() bool {
	return c == TeamCategoryTeam || c == TeamCategoryLeadership
}

// Defaults applied to new rows
const (
	DefaultCourseDuration = "3 months"
	DefaultAssetType      = "image"
	DefaultMediaSection   = "general"
)

// EntityCount is a total/active pair used by the dashboard
type EntityCount struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}
