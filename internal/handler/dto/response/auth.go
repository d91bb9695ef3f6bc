package response

import (
	"surplusfood-api/internal/usecase/commands"
	"surplusfood-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	AccessToken string    `json:"access_token"`
}

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	MemberNumber string    `json:"member_number"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	StudyCity    string    `json:"study_city"`
	NoShowCount  int32     `json:"no_show_count"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		UserID:      result.UserID,
		AccessToken: result.AccessToken,
	}
}

func FromUserView(view *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:           view.ID,
		MemberNumber: view.MemberNumber,
		Name:         view.Name,
		Email:        view.Email,
		Role:         view.Role,
		StudyCity:    view.StudyCity,
		NoShowCount:  view.NoShowCount,
	}
}
