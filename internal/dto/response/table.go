package response

import (
	"time"

	"github.com/nopasawa/Suki/internal/data/entity"
)

type TableResponse struct {
	TableID    string             `json:"table_id"`
	Adults     int                `json:"adults"`
	Children   int                `json:"children"`
	StartTime  time.Time          `json:"start_time"`
	EndTime    time.Time          `json:"end_time"`
	TotalPrice float64            `json:"total_price"`
	Status     entity.TableStatus `json:"status"`
	QRCodePath string             `json:"qr_code_path"`
}

type AvailableTablesResponse struct {
	Available []string `json:"available"`
}

func TableToResponse(table *entity.Table) *TableResponse {
	return &TableResponse{
		TableID:    table.TableID,
		Adults:     table.Adults,
		Children:   table.Children,
		StartTime:  table.StartTime,
		EndTime:    table.EndTime,
		TotalPrice: table.TotalPrice,
		Status:     table.Status,
		QRCodePath: table.QRCodePath,
	}
}
