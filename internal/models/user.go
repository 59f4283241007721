// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Username     string   `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Email        string   `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string   `json:"-" gorm:"size:255;not null"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);default:'customer'"`

	// Profile fields
	Bio      string `json:"bio" gorm:"type:text"`
	Phone    string `json:"phone" gorm:"size:20"`
	Location string `json:"location" gorm:"size:100"`
	Avatar   string `json:"avatar" gorm:"size:300"`

	LastLoginAt *time.Time `json:"last_login_at"`

	// Relationships
	Artworks  []Artwork   `json:"artworks,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders    []Order     `json:"orders,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CartItems []CartItem  `json:"cart_items,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Likes     []Like      `json:"likes,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RSVPs     []EventRSVP `json:"rsvps,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

func (u *User) IsSeller() bool {
	return u.Role == UserRoleSeller
}
