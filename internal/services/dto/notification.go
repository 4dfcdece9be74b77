package dto

// SweepResult reports one batch pass over all users, in user-processing order.
type SweepResult struct {
	Notifications []string `json:"notifications"`
	Count         int      `json:"count"`
	UsersChecked  int      `json:"usersChecked"`
}

type NotificationLogResponse struct {
	Notifications []string `json:"notifications"`
	Total         int      `json:"total"`
}
