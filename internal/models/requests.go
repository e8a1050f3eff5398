package models

type LoginRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SendMessageRequestBody struct {
	ReceiverID uint   `json:"receiver_id"`
	Content    string `json:"content"`
}
