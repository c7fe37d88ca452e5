package auth

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	Wallet   string `json:"wallet"`
	Balance  int64  `json:"balance"`
}

// LoginResponse - the client stores `token` and shows `message`.
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
