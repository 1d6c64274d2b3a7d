package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

// convertUserModelToDTO 將 UserModel 轉換為 UserDTO
func convertUserModelToDTO(model model.UserModel) dto.UserDTO {
	return dto.UserDTO{
		ID:       model.ID.String(),
		Username: model.Username,
		Email:    model.Email,
		IsActive: model.IsActive,
		IsAdmin:  model.IsAdmin,
	}
}

func convertLoginResponseToDTO(loginRes *model.LoginResponseModel) dto.LoginResponse {
	return dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     loginRes.AccessToken,
			ExpiresIn: int(constants.AccessTokenDuration) * 3600,
		},
		User: convertUserModelToDTO(loginRes.User),
	}
}

// Signup 註冊新用戶
func (a *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var signupDTO dto.SignupDTO
	if err := json.NewDecoder(r.Body).Decode(&signupDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), nil, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	ctx := r.Context()

	loginRes, err := a.authService.Signup(ctx, &model.CreateUserModel{
		Username: signupDTO.Username,
		Email:    signupDTO.Email,
		Password: signupDTO.Password,
	})
	if err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	api.SuccessJSON(w, convertLoginResponseToDTO(loginRes), nil)
}

// Login 帳號密碼登入
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), nil, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	ctx := r.Context()

	loginRes, err := a.authService.Login(ctx, loginDTO.Email, loginDTO.Password)
	if err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	api.SuccessJSON(w, convertLoginResponseToDTO(loginRes), nil)
}

// Me 取得當前登入用戶資訊
func (a *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userModel, err := a.authService.Me(ctx)
	if err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	api.SuccessJSON(w, convertUserModelToDTO(*userModel), nil)
}
