package request

type OpenTableRequest struct {
	TableID  string `json:"table_id" validate:"required"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}
