package request

type CreatePostRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}
