package models

// TeamMemberType classifies team members by the role they hold in the union.
type TeamMemberType int

const (
	// TypeAparat is the central office staff category.
	TypeAparat TeamMemberType = 0
	// TypeProfburoHead heads one faculty union (profburo).
	TypeProfburoHead TeamMemberType = 1
	// TypeViddilHead heads one organizational unit (viddil).
	TypeViddilHead TeamMemberType = 2
)

// Positions derived from the member type. Only Aparat members carry a
// free-text position.
const (
	PositionProfburoHead = "Profburo Head"
	PositionViddilHead   = "Department Head"
)

// IsValid reports whether the type is one of the known categories.
func (t TeamMemberType) IsValid() bool {
	return t == TypeAparat || t == TypeProfburoHead || t == TypeViddilHead
}

// DerivedPosition returns the constant position for head types and the
// empty string for Aparat, whose position is free text.
func (t TeamMemberType) DerivedPosition() string {
	switch t {
	case TypeProfburoHead:
		return PositionProfburoHead
	case TypeViddilHead:
		return PositionViddilHead
	default:
		return ""
	}
}

// AdminRole is the role stored for dashboard users.
type AdminRole string

const (
	RoleAdmin AdminRole = "ADMIN"
)
