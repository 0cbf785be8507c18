package model

import "time"

type User struct {
	UserID           string    `bson:"user_id" json:"user_id"`                                    // Unique ID number
	Username         string    `bson:"username" json:"username" validate:"required,min=4,max=20"` // Username field
	Email            string    `bson:"email" json:"email" validate:"required,email"`              // Email field
	Password         string    `bson:"password" json:"password" validate:"required,min=6"`        // Hashed password field
	Avatar           string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Theme            string    `bson:"theme,omitempty" json:"theme,omitempty"` // light or dark
	IsAdmin          bool      `bson:"is_admin" json:"is_admin"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"` // Time created for account life
	TwoFactorEnabled bool      `bson:"two_factor_enabled" json:"two_factor_enabled"`
	TwoFactorSecret  string    `bson:"two_factor_secret,omitempty" json:"-"`
}

type LoginRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	TwoFactorCode string `json:"two_factor_code,omitempty"`
}
