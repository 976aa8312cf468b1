package domain

// Theme is the UI colour scheme preference
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// SignupInput represents user registration data
type SignupInput struct {
	Email    string  `json:"email" validate:"email"`
	Password string  `json:"password" validate:"min=8"`
	Name     *string `json:"name,omitempty" validate:"omitnil,min=2"`
}

// SigninInput represents login credentials
type SigninInput struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"min=1"`
}

// SettingsInput represents user preferences
type SettingsInput struct {
	EmailNotifications bool  `json:"emailNotifications"`
	Theme              Theme `json:"theme" validate:"oneof=light dark system"`
}
