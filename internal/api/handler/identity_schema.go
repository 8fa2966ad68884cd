package handler

import "github.com/minimart/commerce-system/internal/core/domain"

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email_address"`
	Employee  bool   `json:"employee"`
	Password  string `json:"password"`
	Salt      string `json:"salt"`
}

type registerResponse struct {
	Status   domain.Status `json:"status"`
	PassHash string        `json:"pass_hash,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Status domain.Status `json:"status"`
	Token  string        `json:"jwt,omitempty"`
	Error  string        `json:"error,omitempty"`
}

type verifyResponse struct {
	Status   domain.Status `json:"status"`
	Username string        `json:"user,omitempty"`
	Employee *bool         `json:"employee,omitempty"`
}

type usersResponse struct {
	Status domain.Status `json:"status"`
	Users  []domain.User `json:"users"`
}
