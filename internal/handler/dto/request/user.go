package request

import (
	"surplusfood-api/internal/usecase/commands"
)

type RegisterUserRequest struct {
	MemberNumber string `json:"member_number" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	Role         string `json:"role" binding:"required,oneof=member staff"`
	BirthDate    string `json:"birth_date" binding:"required"`
	Phone        string `json:"phone"`
	StudyCity    string `json:"study_city" binding:"required"`
}

func (r RegisterUserRequest) ToInput() commands.RegisterUserInput {
	return commands.RegisterUserInput{
		MemberNumber: r.MemberNumber,
		Name:         r.Name,
		Email:        r.Email,
		Password:     r.Password,
		Role:         r.Role,
		BirthDate:    r.BirthDate,
		Phone:        r.Phone,
		StudyCity:    r.StudyCity,
	}
}
