package request

// SubmitOrderRequest carries one submission batch. The guest form posts
// every menu item; unordered items arrive with zero quantity and are
// skipped by the service.
type SubmitOrderRequest struct {
	Items map[string]int `json:"items" validate:"required"`
}
