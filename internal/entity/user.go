package entity

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type PlayerStats struct {
	UserID string `json:"user_id"`
	Wins   int64  `json:"wins"`
	Losses int64  `json:"losses"`
	Total  int64  `json:"total"`
}
