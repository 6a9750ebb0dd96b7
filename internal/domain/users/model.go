package users

// Details mirrors the auth provider's profile. The provider owns identity;
// this is copied into session state on sign-in and cleared on sign-out,
// never persisted here.
type Details struct {
	UID        string `json:"uid"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic"`
}
