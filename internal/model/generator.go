package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length         int   `json:"length"`
	Count          int   `json:"count"`
	Uppercase      *bool `json:"uppercase"`
	Digits         *bool `json:"digits"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar bool  `json:"exclude_similar"`
	Hash           bool  `json:"hash"`
}

// GeneratedPassword is one generated password, with its Argon2id digest when requested.
type GeneratedPassword struct {
	Password string `json:"password"`
	Hash     string `json:"hash,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []GeneratedPassword `json:"passwords"`
	Length    int                 `json:"length"`
}
