package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/internal/dto/request"
)

func openTestTable(t *testing.T, tables TableService, tableID string) {
	t.Helper()
	if _, err := tables.Open(context.Background(), &request.OpenTableRequest{
		TableID: tableID, Adults: 2, Children: 0,
	}); err != nil {
		t.Fatalf("Open(%s) returned error: %v", tableID, err)
	}
}

func TestSubmitItemsSkipsZeroQuantities(t *testing.T) {
	repo := newTestRepository()
	clock, _ := fixedClock(time.Now())
	tables := NewTableService(repo, testConfig(), &fakeQRGenerator{}, clock, testLogger())
	orders := NewOrderService(repo, clock, testLogger())
	openTestTable(t, tables, "T01")

	batch, err := orders.SubmitItems(context.Background(), "T01", map[string]int{
		"Pad Thai":    2,
		"Spring Roll": 0,
	})
	if err != nil {
		t.Fatalf("SubmitItems returned error: %v", err)
	}

	if len(batch.Orders) != 1 {
		t.Fatalf("line count = %d, want 1", len(batch.Orders))
	}
	line := batch.Orders[0]
	if line.ItemName != "Pad Thai" || line.Quantity != 2 {
		t.Errorf("line = %s x%d, want Pad Thai x2", line.ItemName, line.Quantity)
	}
	if line.Status != "pending" {
		t.Errorf("line status = %q, want pending", line.Status)
	}
	if line.BatchID != batch.BatchID {
		t.Errorf("line batch id %q does not match batch %q", line.BatchID, batch.BatchID)
	}
}

func TestSubmitItemsSharesBatchID(t *testing.T) {
	repo := newTestRepository()
	clock, _ := fixedClock(time.Now())
	tables := NewTableService(repo, testConfig(), &fakeQRGenerator{}, clock, testLogger())
	orders := NewOrderService(repo, clock, testLogger())
	openTestTable(t, tables, "T01")

	batch, err := orders.SubmitItems(context.Background(), "T01", map[string]int{
		"Pad Thai":  1,
		"Green Tea": 2,
		"Tom Yum":   3,
	})
	if err != nil {
		t.Fatalf("SubmitItems returned error: %v", err)
	}

	if len(batch.Orders) != 3 {
		t.Fatalf("line count = %d, want 3", len(batch.Orders))
	}
	seen := make(map[string]bool)
	for _, line := range batch.Orders {
		if line.BatchID != batch.BatchID {
			t.Errorf("line %s batch id %q, want %q", line.OrderID, line.BatchID, batch.BatchID)
		}
		if seen[line.OrderID] {
			t.Errorf("duplicate order id %q within batch", line.OrderID)
		}
		seen[line.OrderID] = true
	}
}

func TestSubmitItemsRejectsMissingAndExpiredTables(t *testing.T) {
	repo := newTestRepository()
	start := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	clock, current := fixedClock(start)
	tables := NewTableService(repo, testConfig(), &fakeQRGenerator{}, clock, testLogger())
	orders := NewOrderService(repo, clock, testLogger())

	_, err := orders.SubmitItems(context.Background(), "T01", map[string]int{"Pad Thai": 1})
	if !errors.Is(err, repository.ErrTableNotActive) {
		t.Errorf("submit without occupancy: error = %v, want ErrTableNotActive", err)
	}

	openTestTable(t, tables, "T01")
	*current = start.Add(2 * time.Hour)
	if _, err := tables.ListTables(context.Background()); err != nil {
		t.Fatalf("ListTables returned error: %v", err)
	}

	_, err = orders.SubmitItems(context.Background(), "T01", map[string]int{"Pad Thai": 1})
	if !errors.Is(err, repository.ErrTableNotActive) {
		t.Errorf("submit against expired table: error = %v, want ErrTableNotActive", err)
	}
}

func TestServeIsIdempotent(t *testing.T) {
	repo := newTestRepository()
	clock, _ := fixedClock(time.Now())
	tables := NewTableService(repo, testConfig(), &fakeQRGenerator{}, clock, testLogger())
	orders := NewOrderService(repo, clock, testLogger())
	openTestTable(t, tables, "T02")

	batch, err := orders.SubmitItems(context.Background(), "T02", map[string]int{"Pad Thai": 1})
	if err != nil {
		t.Fatalf("SubmitItems returned error: %v", err)
	}
	orderID := batch.Orders[0].OrderID

	first, err := orders.Serve(context.Background(), orderID)
	if err != nil {
		t.Fatalf("first Serve returned error: %v", err)
	}
	if first.Status != "served" {
		t.Errorf("status after serve = %q, want served", first.Status)
	}

	second, err := orders.Serve(context.Background(), orderID)
	if err != nil {
		t.Fatalf("second Serve returned error: %v", err)
	}
	if second.Status != "served" {
		t.Errorf("status after repeated serve = %q, want served", second.Status)
	}
}

func TestServeUnknownOrder(t *testing.T) {
	repo := newTestRepository()
	clock, _ := fixedClock(time.Now())
	orders := NewOrderService(repo, clock, testLogger())

	_, err := orders.Serve(context.Background(), "T01-20250301180000-deadbeef")
	if !errors.Is(err, repository.ErrOrderNotFound) {
		t.Errorf("Serve error = %v, want ErrOrderNotFound", err)
	}
}

func TestListPendingByTableOmitsQuietTables(t *testing.T) {
	repo := newTestRepository()
	clock, _ := fixedClock(time.Now())
	tables := NewTableService(repo, testConfig(), &fakeQRGenerator{}, clock, testLogger())
	orders := NewOrderService(repo, clock, testLogger())
	openTestTable(t, tables, "T01")
	openTestTable(t, tables, "T02")

	batch, err := orders.SubmitItems(context.Background(), "T01", map[string]int{"Pad Thai": 1})
	if err != nil {
		t.Fatalf("SubmitItems returned error: %v", err)
	}

	grouped, err := orders.ListPendingByTable(context.Background())
	if err != nil {
		t.Fatalf("ListPendingByTable returned error: %v", err)
	}

	if _, ok := grouped["T02"]; ok {
		t.Errorf("table with no pending lines appears in the queue")
	}
	if len(grouped["T01"]) != 1 {
		t.Fatalf("pending lines for T01 = %d, want 1", len(grouped["T01"]))
	}

	// Served lines leave the queue; once the last one is gone the table
	// key disappears too.
	if _, err := orders.Serve(context.Background(), batch.Orders[0].OrderID); err != nil {
		t.Fatalf("Serve returned error: %v", err)
	}
	grouped, err = orders.ListPendingByTable(context.Background())
	if err != nil {
		t.Fatalf("ListPendingByTable returned error: %v", err)
	}
	if _, ok := grouped["T01"]; ok {
		t.Errorf("served-out table still appears in the queue")
	}
}

func TestOrderLinesSurviveCheckout(t *testing.T) {
	repo := newTestRepository()
	clock, _ := fixedClock(time.Now())
	tables := NewTableService(repo, testConfig(), &fakeQRGenerator{}, clock, testLogger())
	orders := NewOrderService(repo, clock, testLogger())
	openTestTable(t, tables, "T03")

	if _, err := orders.SubmitItems(context.Background(), "T03", map[string]int{
		"Pad Thai": 2,
		"Tom Yum":  1,
	}); err != nil {
		t.Fatalf("SubmitItems returned error: %v", err)
	}

	if err := tables.Checkout(context.Background(), "T03"); err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}

	lines, err := orders.ListByTable(context.Background(), "T03")
	if err != nil {
		t.Fatalf("ListByTable returned error: %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("line count after checkout = %d, want 2", len(lines))
	}
}
