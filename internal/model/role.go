package model

// RoleID is the coarse-grained authorization tier assigned to a user.
// The source data mixed numeric ids and string names per route; here the role
// is resolved once at login and carried in the token claims as a RoleID.
type RoleID uint

const (
	// RoleAdmin may manage users, trainers and memberships.
	RoleAdmin RoleID = iota + 1
	// RoleTrainer may manage their own classes and view members.
	RoleTrainer
	// RoleMember is the default tier for registered users.
	RoleMember
)

var roleNames = map[RoleID]string{
	RoleAdmin:   "administrator",
	RoleTrainer: "trainer",
	RoleMember:  "member",
}

// Name returns the canonical role name, or "unknown" for an unmapped id.
func (r RoleID) Name() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether the id maps to a known tier.
func (r RoleID) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// Role is the persisted role reference row. Rows are seeded once and never
// mutated at runtime.
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`
}
