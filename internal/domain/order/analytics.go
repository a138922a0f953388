package order

import "github.com/adresur/adresur-go/internal/domain/money"

// FilterAll is the filter value that matches every status.
const FilterAll = "all"

// FilterByStatus returns the orders matching the given status filter, or all
// orders when the filter is FilterAll. The input slice is never mutated.
func FilterByStatus(orders []Order, filter string) []Order {
	if filter == FilterAll {
		out := make([]Order, len(orders))
		copy(out, orders)
		return out
	}
	var out []Order
	for _, o := range orders {
		if o.Status == Status(filter) {
			out = append(out, o)
		}
	}
	return out
}

// Summary holds the aggregate view of an order list. It is recomputed from
// scratch on every call; there is no incremental analytics state.
type Summary struct {
	TotalOrders   int
	CountByStatus map[Status]int
	// Revenue sums total_price over completed orders only.
	Revenue money.Amount
	// Active counts orders that still need attention: pending, preparing, ready.
	Active int
	// PopularItems tallies ordered quantity per menu item id.
	PopularItems map[int64]int
}

// Summarize reduces an order list to its aggregate Summary. Pure and
// side-effect free.
func Summarize(orders []Order) Summary {
	s := Summary{
		TotalOrders:   len(orders),
		CountByStatus: make(map[Status]int, len(Statuses)),
		PopularItems:  make(map[int64]int),
	}
	for _, st := range Statuses {
		s.CountByStatus[st] = 0
	}

	for _, o := range orders {
		s.CountByStatus[o.Status]++
		s.PopularItems[o.MenuItemID] += o.Quantity

		switch o.Status {
		case StatusCompleted:
			s.Revenue = s.Revenue.Add(o.TotalPrice)
		case StatusPending, StatusPreparing, StatusReady:
			s.Active++
		}
	}
	return s
}
