package models

const (
	RoleLandlord = "landlord"
	RoleTenant   = "tenant"
)

type User struct {
	ID          string `json:"-"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}
