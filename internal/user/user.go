package user

// User is an account record, keyed by email. Password holds the bcrypt hash
// and is stripped before a user is returned over the API.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
	// Gender is the shopping preference driving the default catalog
	// segment ("women" or "men").
	Gender string `json:"gender,omitempty"`
	// ViewHistory holds the category tags of recently viewed products,
	// oldest first, capped by the repository.
	ViewHistory []string `json:"viewHistory,omitempty"`
	// MustChangePassword is set when the account runs on a temporary
	// password issued by the reset flow.
	MustChangePassword bool   `json:"mustChangePassword,omitempty"`
	CreatedAt          string `json:"createdAt,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}
