package item

type NewItemReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type NewCommentReq struct {
	Text string `json:"text" validate:"required,max=255"`
}
