package request

type MenuItemRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Category string `json:"category" validate:"required,min=1,max=50"`
}
