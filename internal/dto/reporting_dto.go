package dto

import (
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
)

// SalesReportResponse is the aggregator output: six windowed groupings plus
// the display-ready sales log. The domain types are already display-shaped,
// so they are carried through unchanged.
type SalesReportResponse struct {
	SalesByEmployee domain.SalesByEmployee `json:"salesByEmployee"`
	SalesLogs       []domain.SaleLogEntry  `json:"salesLogs"`
}

// ToSalesReportResponse wraps a domain.SalesReport for the API.
func ToSalesReportResponse(report *domain.SalesReport) SalesReportResponse {
	return SalesReportResponse{
		SalesByEmployee: report.SalesByEmployee,
		SalesLogs:       report.SalesLogs,
	}
}

// NameCountResponse is one ranked leaderboard row.
type NameCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// LeaderboardResponse is the repair-count leaderboard for an optional
// inclusive date range. TopCustomers carries at most five rows.
type LeaderboardResponse struct {
	FromDate          string              `json:"fromDate,omitempty"`
	ToDate            string              `json:"toDate,omitempty"`
	TopCustomers      []NameCountResponse `json:"topCustomers"`
	Employees         []NameCountResponse `json:"employees"`
	QuotaCompleted    []NameCountResponse `json:"quotaCompleted"`
	QuotaNotCompleted []NameCountResponse `json:"quotaNotCompleted"`
}

const topCustomerRows = 5

func toNameCounts(rows []domain.NameCount) []NameCountResponse {
	out := make([]NameCountResponse, len(rows))
	for i, row := range rows {
		out[i] = NameCountResponse{Name: row.Name, Count: row.Count}
	}
	return out
}

// ToLeaderboardResponse converts a domain leaderboard, slicing the customer
// ranking to the top five rows.
func ToLeaderboardResponse(board *domain.RepairLeaderboard, from, to *time.Time) LeaderboardResponse {
	resp := LeaderboardResponse{
		TopCustomers:      toNameCounts(board.Customers),
		Employees:         toNameCounts(board.Employees),
		QuotaCompleted:    toNameCounts(board.QuotaCompleted),
		QuotaNotCompleted: toNameCounts(board.QuotaNotCompleted),
	}
	if len(resp.TopCustomers) > topCustomerRows {
		resp.TopCustomers = resp.TopCustomers[:topCustomerRows]
	}
	if from != nil {
		resp.FromDate = from.Format("2006-01-02")
	}
	if to != nil {
		resp.ToDate = to.Format("2006-01-02")
	}
	return resp
}

// ClockedTimeResponse is one duty-time row.
type ClockedTimeResponse struct {
	RecordID      string `json:"recordID"`
	UserID        string `json:"userID"`
	CharacterName string `json:"characterName"`
	TotalSeconds  int64  `json:"totalTime"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToClockedTimeResponses converts duty-time records for the API.
func ToClockedTimeResponses(records []domain.ClockedTime) []ClockedTimeResponse {
	out := make([]ClockedTimeResponse, len(records))
	for i, rec := range records {
		out[i] = ClockedTimeResponse{
			RecordID:      rec.RecordID,
			UserID:        rec.UserID,
			CharacterName: rec.CharacterName,
			TotalSeconds:  rec.TotalSeconds,
			UpdatedAt:     rec.UpdatedAt.UTC().Format(time.RFC3339),
		}
	}
	return out
}
