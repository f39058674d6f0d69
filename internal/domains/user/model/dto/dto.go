package dto

import (
	"time"

	"conectapro/internal/domains/user/model"
	"conectapro/shared/constant"
	"conectapro/shared/timezone"
)

type Status struct {
	PhoneVerified    bool `json:"phone_verified"`
	IdentityVerified bool `json:"identity_verified"`
	ProfileCompleted bool `json:"profile_completed"`
}

type UserResponse struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	Email       *string `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	AccountType string  `json:"account_type"`
	Status      Status  `json:"status"`
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.FullName = user.FullName
	r.Email = user.Email
	r.PhoneNumber = user.PhoneNumber
	r.AccountType = user.AccountType
	r.Status = Status{
		PhoneVerified:    user.PhoneVerified,
		ProfileCompleted: user.ProfileCompleted,
	}
}

// Summary is the short form embedded in other views.
type Summary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

func (s *Summary) FromModel(user model.User) {
	s.ID = user.ID
	s.FullName = user.FullName
}

// Worker is a provider highlighted on the client home.
type Worker struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviews_count"`
}

func WorkersFromModels(users []model.User) []Worker {
	res := make([]Worker, len(users))
	for i, user := range users {
		res[i] = Worker{ID: user.ID, Name: user.FullName, Rating: user.Rating, ReviewsCount: user.ReviewsCount}
	}

	return res
}

type UpdatePersonalInfoRequest struct {
	FullName  string `json:"full_name"  validate:"required,min=2,max=100"`
	Gender    string `json:"gender"     validate:"omitempty,oneof=MALE FEMALE OTHER"`
	BirthDate string `json:"birth_date" validate:"omitempty,date"`
}

// ToFields returns the columns to update. Completing the personal info also completes the profile.
func (r *UpdatePersonalInfoRequest) ToFields(actor string) (map[string]any, error) {
	fields := map[string]any{
		model.FieldFullName:         r.FullName,
		model.FieldProfileCompleted: true,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    actor,
	}

	if r.Gender != "" {
		fields[model.FieldGender] = r.Gender
	}

	if r.BirthDate != "" {
		birthDate, err := time.ParseInLocation(constant.DateOnlyFormat, r.BirthDate, timezone.GetLocation())
		if err != nil {
			return nil, err
		}

		fields[model.FieldBirthDate] = birthDate
	}

	return fields, nil
}

type PersonalInfoResponse struct {
	UserID           string  `json:"user_id"`
	FullName         string  `json:"full_name"`
	Gender           *string `json:"gender"`
	BirthDate        *string `json:"birth_date"`
	ProfileCompleted bool    `json:"profile_completed"`
}

func (r *PersonalInfoResponse) FromModel(user model.User) {
	r.UserID = user.ID
	r.FullName = user.FullName
	r.Gender = user.Gender
	r.ProfileCompleted = user.ProfileCompleted

	if user.BirthDate != nil {
		birthDate := user.BirthDate.Format(constant.DateOnlyFormat)
		r.BirthDate = &birthDate
	}
}
