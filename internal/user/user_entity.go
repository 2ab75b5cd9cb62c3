package user

import "time"

type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserName  string `gorm:"type:varchar(40);not null;uniqueIndex:uq_users_user_name"`
	EmpNumber *int64
	Deleted   bool `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (User) TableName() string { return "users" }
