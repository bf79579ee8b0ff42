package models

type UserRole string

const (
	RoleAdmin   UserRole = "Admin"
	RoleManager UserRole = "Manager"
	RoleViewer  UserRole = "Viewer"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

// AppUser is a console operator account.
type AppUser struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	LastLogin string     `json:"lastLogin,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
}

type AppUserPatch struct {
	FirstName *string     `json:"firstName,omitempty"`
	LastName  *string     `json:"lastName,omitempty"`
	Email     *string     `json:"email,omitempty"`
	Role      *UserRole   `json:"role,omitempty"`
	Status    *UserStatus `json:"status,omitempty"`
	Avatar    *string     `json:"avatar,omitempty"`
}

func (p *AppUserPatch) Validate() error {
	if p.Role != nil {
		switch *p.Role {
		case RoleAdmin, RoleManager, RoleViewer:
		default:
			return &ValidationError{Field: "role", Reason: "unknown role"}
		}
	}
	if p.Status != nil {
		switch *p.Status {
		case UserStatusActive, UserStatusInactive:
		default:
			return &ValidationError{Field: "status", Reason: "unknown user status"}
		}
	}
	return nil
}

func DefaultAppUser() AppUser {
	return AppUser{
		ID:        "1",
		FirstName: "Jordan",
		LastName:  "Mills",
		Email:     "jordan.m@example.com",
		Role:      RoleManager,
		Status:    UserStatusActive,
		LastLogin: "2 hours ago",
	}
}
