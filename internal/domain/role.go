package domain

type Role string

const (
	RoleCoordinator Role = "COORDINATOR"
	RoleHOD         Role = "HOD"
	RoleDean        Role = "DEAN"
	RoleHead        Role = "HEAD"
	RoleAdmin       Role = "ADMIN"
)

var Roles = []Role{RoleCoordinator, RoleHOD, RoleDean, RoleHead, RoleAdmin}

func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

type Capability string

const (
	CapCreateEvent     Capability = "event:create"
	CapManageOwnEvent  Capability = "event:manage-own"
	CapHODReview       Capability = "approval:hod"
	CapDeanReview      Capability = "approval:dean"
	CapHeadReview      Capability = "approval:head"
	CapManageInventory Capability = "inventory:manage"
)

var roleCapabilities = map[Role][]Capability{
	RoleCoordinator: {CapCreateEvent, CapManageOwnEvent},
	RoleHOD:         {CapHODReview},
	RoleDean:        {CapDeanReview},
	RoleHead:        {CapHeadReview},
	RoleAdmin:       {CapManageInventory},
}

func (r Role) Can(c Capability) bool {
	for _, have := range roleCapabilities[r] {
		if have == c {
			return true
		}
	}
	return false
}
