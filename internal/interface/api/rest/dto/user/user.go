package user

import "github.com/google/uuid"

type User struct {
	UUID     uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type Users []User

type ResponseData struct {
	Data Users `json:"data"`
}
