package response

import "github.com/inkwell-blog/inkwell/domain"

type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

func NewUserFromDomain(u *domain.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:     u.ID,
		Name:   u.Name,
		Avatar: u.Avatar,
	}
}
