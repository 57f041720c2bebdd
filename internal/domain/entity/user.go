package entity

import (
	"time"
)

// Professional role names. Clinical roles cover everyone who reads patient
// data; the social assistant additionally manages records and catalogues.
const (
	RoleDentist         = "ROLE_DENTIST"
	RolePsychiatrist    = "ROLE_PSYCHIATRIST"
	RolePsychologist    = "ROLE_PSYCHOLOGIST"
	RoleSocialAssistant = "ROLE_SOCIAL_ASSISTANT"
	RoleAdmin           = "ROLE_ADMIN"
)

// ClinicalRoles lists the roles allowed to read clinical data.
var ClinicalRoles = []string{RoleDentist, RolePsychiatrist, RolePsychologist, RoleSocialAssistant}

// User is a clinic professional; reports reference their author here.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Login        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"login"`
	PasswordHash string    `gorm:"type:varchar(60);not null;column:password_hash" json:"-"`
	Name         string    `gorm:"type:varchar(100)" json:"name"`
	Activated    bool      `gorm:"not null;default:true" json:"activated"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Authorities []Authority `gorm:"many2many:user_authority;joinForeignKey:UserID;joinReferences:AuthorityName" json:"authorities,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Authority is a named role a user may carry.
type Authority struct {
	Name string `gorm:"primaryKey;type:varchar(50)" json:"name"`
}

func (Authority) TableName() string {
	return "authority"
}

// Principal is the authenticated caller, carried explicitly through the
// service layer rather than via ambient context.
type Principal struct {
	Login string
	Roles []string
}

func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (p *Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}
