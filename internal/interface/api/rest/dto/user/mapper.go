package user

import (
	"file-share-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	return User{
		UUID:     uDomain.UUID,
		Username: uDomain.Username,
		Email:    uDomain.Email,
	}
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}
