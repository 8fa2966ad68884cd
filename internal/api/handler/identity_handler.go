package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/ports"
)

// IdentityHandler exposes registration, login, and token verification.
type IdentityHandler struct {
	service ports.IdentityService
}

func NewIdentityHandler(service ports.IdentityService) *IdentityHandler {
	return &IdentityHandler{service: service}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  registerResponse
// @Failure      409   {object}  registerResponse
// @Failure      422   {object}  registerResponse
// @Router       /users [post]
func (h *IdentityHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, registerResponse{Status: domain.StatusRejected, Error: "invalid payload"})
	}

	// Missing username and missing email keep their historically distinct
	// statuses, so they are checked individually rather than via c.Validate.
	if req.Username == "" {
		return c.JSON(http.StatusBadRequest, registerResponse{Status: domain.StatusAuthFailed, Error: "username is required"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, registerResponse{Status: domain.StatusRejected, Error: "email_address is required"})
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Employee:  req.Employee,
		Password:  req.Password,
		Salt:      req.Salt,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWeakPassword):
			return c.JSON(http.StatusUnprocessableEntity, registerResponse{Status: domain.StatusPasswordPolicy, Error: err.Error()})
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, registerResponse{Status: domain.StatusAuthFailed, Error: err.Error()})
		case errors.Is(err, domain.ErrEmailExists):
			return c.JSON(http.StatusConflict, registerResponse{Status: domain.StatusRejected, Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{Status: domain.StatusOK, PassHash: user.PasswordHash})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  loginResponse
// @Failure      422   {object}  loginResponse
// @Router       /login [post]
func (h *IdentityHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, loginResponse{Status: domain.StatusRejected, Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, loginResponse{Status: domain.StatusRejected, Error: err.Error()})
	}

	tok, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, loginResponse{Status: domain.StatusAuthFailed, Error: "invalid credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Status: domain.StatusOK, Token: tok})
}

// Verify answers whether a token is valid and whether its subject is an
// employee. Invalid tokens are an expected outcome, not an error.
//
// @Summary      Verify a bearer token
// @Tags         identity
// @Produce      json
// @Param        jwt  query     string  true  "Token to verify"
// @Success      200  {object}  verifyResponse
// @Failure      401  {object}  verifyResponse
// @Router       /verify [get]
func (h *IdentityHandler) Verify(c echo.Context) error {
	tok := c.QueryParam("jwt")
	if tok == "" {
		return c.JSON(http.StatusUnauthorized, verifyResponse{Status: domain.StatusAuthFailed})
	}

	decision := h.service.Verify(c.Request().Context(), tok)
	if !decision.Valid {
		return c.JSON(http.StatusUnauthorized, verifyResponse{Status: domain.StatusAuthFailed})
	}

	return c.JSON(http.StatusOK, verifyResponse{
		Status:   domain.StatusOK,
		Username: decision.Username,
		Employee: &decision.Employee,
	})
}

// List returns every registered user.
//
// @Summary      List users
// @Tags         identity
// @Produce      json
// @Success      200  {object}  usersResponse
// @Router       /users [get]
func (h *IdentityHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Status: domain.StatusOK, Users: users})
}
