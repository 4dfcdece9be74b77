package dto

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Estado   *string `json:"estado,omitempty"`
	Location *string `json:"location,omitempty"`
}

type UserListResponse struct {
	Users []UserDTO `json:"users"`
	Total int       `json:"total"`
}
