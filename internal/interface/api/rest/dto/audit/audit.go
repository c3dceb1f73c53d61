package audit

import (
	"time"
)

type Record struct {
	Action    string    `json:"action"`
	Role      string    `json:"role"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Records []Record

type ResponseData struct {
	Data Records `json:"data"`
}
