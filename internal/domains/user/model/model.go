package model

import (
	"time"

	"conectapro/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID               = "id"
	FieldFullName         = "full_name"
	FieldEmail            = "email"
	FieldPhoneNumber      = "phone_number"
	FieldPassword         = "password"
	FieldAccountType      = "account_type"
	FieldStatus           = "status"
	FieldGender           = "gender"
	FieldBirthDate        = "birth_date"
	FieldPhoneVerified    = "phone_verified"
	FieldProfileCompleted = "profile_completed"
	FieldRating           = "rating"
	FieldReviewsCount     = "reviews_count"
	FieldLastLogin        = "last_login"
)

const (
	StatusUnverified = "unverified"
	StatusActive     = "active"
	StatusSuspended  = "suspended"
)

type User struct {
	ID               string     `db:"id"`
	FullName         string     `db:"full_name"`
	Email            *string    `db:"email"`
	PhoneNumber      string     `db:"phone_number"`
	Password         string     `db:"password"`
	AccountType      string     `db:"account_type"`
	Status           string     `db:"status"`
	Gender           *string    `db:"gender"`
	BirthDate        *time.Time `db:"birth_date"`
	PhoneVerified    bool       `db:"phone_verified"`
	ProfileCompleted bool       `db:"profile_completed"`
	Rating           float64    `db:"rating"`
	ReviewsCount     int        `db:"reviews_count"`
	LastLogin        *time.Time `db:"last_login"`
	model.Metadata
}

func (u User) IsSuspended() bool {
	return u.Status == StatusSuspended
}
