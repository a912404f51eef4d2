package model

import (
	"gorm.io/gorm"
)

// UserInfo is an account in the marketplace.
// Password holds a bcrypt hash, never plaintext.
type UserInfo struct {
	gorm.Model
	Uuid     string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:user id"`
	Name     string `gorm:"column:name;type:varchar(50);not null;comment:display name"`
	Email    string `gorm:"column:email;uniqueIndex;type:varchar(100);not null;comment:login email"`
	Password string `gorm:"column:password;type:varchar(100);not null;comment:bcrypt hash"`
	IsAdmin  int8   `gorm:"column:is_admin;not null;default:0;comment:1 when administrator"`
}

func (UserInfo) TableName() string {
	return "user_info"
}
