package domain

import (
	"github.com/shopspring/decimal"
)

// RepairQuotaThreshold is the repair count separating employees who have
// completed their quota from those who have not.
const RepairQuotaThreshold = 60

// UnknownEmployee is the grouping key for sales with no recorded seller.
const UnknownEmployee = "Unknown"

// EmployeePeriodTotal is one employee's sales and profit within a window.
type EmployeePeriodTotal struct {
	Employee    string          `json:"employee"`
	TotalSales  decimal.Decimal `json:"totalSales"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}

// SalesByEmployee groups per-employee totals into the six fixed calendar
// windows, all anchored to the reference instant (the latest sale timestamp,
// not wall clock). Ordering within a window is not significant.
type SalesByEmployee struct {
	AllTime   []EmployeePeriodTotal `json:"allTime"`
	Today     []EmployeePeriodTotal `json:"today"`
	ThisWeek  []EmployeePeriodTotal `json:"thisWeek"`
	ThisMonth []EmployeePeriodTotal `json:"thisMonth"`
	LastWeek  []EmployeePeriodTotal `json:"lastWeek"`
	LastMonth []EmployeePeriodTotal `json:"lastMonth"`
}

// SaleLogItem is the display shape of one line item in the sales log.
type SaleLogItem struct {
	Name        string          `json:"name"`
	Category    VehicleCategory `json:"category,omitempty"`
	DamageLevel DamageLevel     `json:"damageLevel,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"price"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// SaleLogEntry is a display-ready flattening of one sale. Date is formatted
// DD/MM/YYYY and Time HH:MM:SS, both UTC. The log is not sorted here; sort
// order is a presentation concern.
type SaleLogEntry struct {
	SaleID          string          `json:"saleID"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	CustomerName    string          `json:"customerName"`
	CustomerID      string          `json:"customerId"`
	VehicleName     string          `json:"vehicleName"`
	PlateNumber     string          `json:"plateNumber"`
	VehicleCategory VehicleCategory `json:"vehicleCategory"`
	SoldBy          string          `json:"soldBy"`
	SoldByDiscordID string          `json:"soldByDiscordId"`
	Items           []SaleLogItem   `json:"items"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	TotalProfit     decimal.Decimal `json:"totalProfit"`
	Discount        decimal.Decimal `json:"discount"`
}

// SalesReport is the aggregator's full output: the six windowed groupings
// plus the flattened log of every sale.
type SalesReport struct {
	SalesByEmployee SalesByEmployee `json:"salesByEmployee"`
	SalesLogs       []SaleLogEntry  `json:"salesLogs"`
}

// NameCount is one ranked row of the repair-count leaderboard.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RepairLeaderboard holds ranked repair counts per customer and per
// employee, plus the fixed-threshold quota partition of the employee list.
// Rows are ordered by descending count, ties ascending by name.
type RepairLeaderboard struct {
	Customers         []NameCount `json:"customers"`
	Employees         []NameCount `json:"employees"`
	QuotaCompleted    []NameCount `json:"quotaCompleted"`    // count >= RepairQuotaThreshold
	QuotaNotCompleted []NameCount `json:"quotaNotCompleted"` // count < RepairQuotaThreshold
}
