// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// CreateUserReq represents the request body for POST /users.
// Blank values after trimming are rejected by the usecase.
type CreateUserReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserReq represents the request body for PUT /user/:id.
// The password cannot be changed through this request.
type UpdateUserReq struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UserRes is the public view of a user. The password hash is never exposed.
type UserRes struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreatedRes is returned by a successful create.
type CreatedRes struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// MessageRes carries a confirmation message.
type MessageRes struct {
	Message string `json:"message"`
}

// ErrorRes carries an error message.
type ErrorRes struct {
	Error string `json:"error"`
}
