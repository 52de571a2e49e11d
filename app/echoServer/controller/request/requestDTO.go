package request

type NewRequestReq struct {
	Description string `json:"description" validate:"required,max=255"`
}
