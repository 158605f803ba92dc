package models

// Profile is the locally persisted identity of a logged-in user.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// SignupForm carries registration input. Password confirmation is
// validated client-side before the request is sent.
type SignupForm struct {
	Username        string
	Email           string
	Location        string
	Password        []byte
	ConfirmPassword []byte
}
