package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/nopasawa/Suki/internal/dto/request"
)

func TestDashboardAggregatesCurrentTables(t *testing.T) {
	repo := newTestRepository()
	clock, _ := fixedClock(time.Now())
	tables := NewTableService(repo, testConfig(), &fakeQRGenerator{}, clock, testLogger())
	orders := NewOrderService(repo, clock, testLogger())
	dash := NewDashboardService(repo, testLogger())

	if _, err := tables.Open(context.Background(), &request.OpenTableRequest{
		TableID: "T01", Adults: 2, Children: 1,
	}); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if _, err := tables.Open(context.Background(), &request.OpenTableRequest{
		TableID: "T02", Adults: 4, Children: 0,
	}); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if _, err := orders.SubmitItems(context.Background(), "T01", map[string]int{
		"Pad Thai": 2,
		"Tom Yum":  1,
	}); err != nil {
		t.Fatalf("SubmitItems returned error: %v", err)
	}

	metrics, err := dash.GetMetrics(context.Background())
	if err != nil {
		t.Fatalf("GetMetrics returned error: %v", err)
	}

	if want := (2*260.0 + 1*199.0) + 4*260.0; metrics.Revenue != want {
		t.Errorf("revenue = %v, want %v", metrics.Revenue, want)
	}
	if metrics.Customers != 7 {
		t.Errorf("customers = %d, want 7", metrics.Customers)
	}
	if metrics.OrderCount != 2 {
		t.Errorf("order count = %d, want 2", metrics.OrderCount)
	}
	if metrics.ActiveTableCount != 2 {
		t.Errorf("active table count = %d, want 2", metrics.ActiveTableCount)
	}
}

func TestDashboardDropsCheckedOutTables(t *testing.T) {
	repo := newTestRepository()
	clock, _ := fixedClock(time.Now())
	tables := NewTableService(repo, testConfig(), &fakeQRGenerator{}, clock, testLogger())
	orders := NewOrderService(repo, clock, testLogger())
	dash := NewDashboardService(repo, testLogger())

	if _, err := tables.Open(context.Background(), &request.OpenTableRequest{
		TableID: "T01", Adults: 2, Children: 0,
	}); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if _, err := orders.SubmitItems(context.Background(), "T01", map[string]int{
		"Pad Thai": 1,
	}); err != nil {
		t.Fatalf("SubmitItems returned error: %v", err)
	}
	if err := tables.Checkout(context.Background(), "T01"); err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}

	metrics, err := dash.GetMetrics(context.Background())
	if err != nil {
		t.Fatalf("GetMetrics returned error: %v", err)
	}

	// Checkout discards the table's revenue and customer contribution
	// but leaves its order lines counted.
	if metrics.Revenue != 0 {
		t.Errorf("revenue after checkout = %v, want 0", metrics.Revenue)
	}
	if metrics.Customers != 0 {
		t.Errorf("customers after checkout = %d, want 0", metrics.Customers)
	}
	if metrics.OrderCount != 1 {
		t.Errorf("order count after checkout = %d, want 1", metrics.OrderCount)
	}
	if metrics.ActiveTableCount != 0 {
		t.Errorf("active table count after checkout = %d, want 0", metrics.ActiveTableCount)
	}
}
