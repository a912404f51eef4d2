package respond

// UserSummary is the public projection of an account. Used both in
// auth responses and for applicant-identity enrichment on admin views.
type UserSummary struct {
	UserId  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// LoginRespond is returned by both register and login.
type LoginRespond struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         UserSummary `json:"user"`
}
