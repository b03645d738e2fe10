// Package handler provides HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/transport/http/dto"
	"user_service/internal/feature/users/usecase"
)

const (
	msgUserNotFound   = "User not found"
	msgEmailExists    = "Email already exists"
	msgInternal       = "internal server error"
	msgCreateBadJSON  = "Invalid or missing JSON in request body"
	msgCreateMissing  = "Missing required fields"
	msgInvalidEmail   = "Email domain not allowed or invalid email format"
	msgUpdateBadJSON  = "Invalid or missing JSON"
	msgUpdateMissing  = "Missing name or email"
	msgSearchMissing  = "Please provide a name to search"
	msgUserCreated    = "User created successfully"
	msgUserUpdated    = "User updated"
	msgUserDeletedFmt = "User %d deleted"
)

// UserUsecase defines the user management operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	CreateUser(ctx context.Context, name, email, password string) (*entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	SearchUsers(ctx context.Context, name string) ([]entity.User, error)
	UpdateUser(ctx context.Context, id uint, name, email string) error
	DeleteUser(ctx context.Context, id uint) error
}

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		internalError(c, "list users failed", err)
		return
	}
	c.JSON(http.StatusOK, toUserRes(users))
}

// Get handles GET /user/:id.
// A non-numeric id is answered the same way as an unknown one.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.uc.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: msgUserNotFound})
			return
		}
		internalError(c, "get user failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.UserRes{ID: u.ID, Name: u.Name, Email: u.Email})
}

// Create handles POST /users.
// - invalid JSON or missing/blank fields → 400
// - email format or domain rejected → 400
// - duplicate email → 409
// - other store failures → 500 with a generic message
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: bindErrorMessage(err, msgCreateBadJSON, msgCreateMissing)})
		return
	}

	u, err := h.uc.CreateUser(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: msgCreateMissing})
		case errors.Is(err, usecase.ErrInvalidEmail):
			slog.Warn("create user rejected email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: msgInvalidEmail})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("create user conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorRes{Error: msgEmailExists})
		default:
			internalError(c, "create user failed", err)
		}
		return
	}

	slog.Info("user created", "user_id", u.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.CreatedRes{Message: msgUserCreated, ID: u.ID})
}

// Update handles PUT /user/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: bindErrorMessage(err, msgUpdateBadJSON, msgUpdateMissing)})
		return
	}

	if err := h.uc.UpdateUser(c.Request.Context(), id, req.Name, req.Email); err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: msgUpdateMissing})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: msgUserNotFound})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("update user conflict", "user_id", id, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorRes{Error: msgEmailExists})
		default:
			internalError(c, "update user failed", err)
		}
		return
	}

	slog.Info("user updated", "user_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageRes{Message: msgUserUpdated})
}

// Delete handles DELETE /user/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: msgUserNotFound})
			return
		}
		internalError(c, "delete user failed", err)
		return
	}

	slog.Info("user deleted", "user_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageRes{Message: fmt.Sprintf(msgUserDeletedFmt, id)})
}

// Search handles GET /search?name=.
// No match is an empty array, not an error.
func (h *UserHandler) Search(c *gin.Context) {
	name := c.Query("name")
	users, err := h.uc.SearchUsers(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: msgSearchMissing})
			return
		}
		internalError(c, "search users failed", err)
		return
	}
	c.JSON(http.StatusOK, toUserRes(users))
}

// internalError logs the underlying error and answers with a generic body.
func internalError(c *gin.Context, msg string, err error) {
	slog.Error(msg, "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: msgInternal})
}

// parseID reads the :id path parameter. On failure it writes a 404 and returns false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: msgUserNotFound})
		return 0, false
	}
	return uint(id), true
}

// bindErrorMessage distinguishes a missing field from a body that is not JSON at all.
func bindErrorMessage(err error, badJSON, missing string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return missing
	}
	return badJSON
}

func toUserRes(users []entity.User) []dto.UserRes {
	out := make([]dto.UserRes, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserRes{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out
}
