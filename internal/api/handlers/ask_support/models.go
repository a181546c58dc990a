package ask_support

// AskRequest HTTP request model
type AskRequest struct {
	Question string `json:"question" validate:"required,notblank,max=2000"`
}

// AskResponse HTTP response model
type AskResponse struct {
	Answer string `json:"answer"`
}
