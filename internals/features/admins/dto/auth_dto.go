package dto

type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

type DashboardDTO struct {
	VideoCount          int64 `json:"video_count"`
	CommentCount        int64 `json:"comment_count"`
	PendingCommentCount int64 `json:"pending_comment_count"`
}
