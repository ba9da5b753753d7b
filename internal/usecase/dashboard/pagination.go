package dashboard

import "github.com/avamus/visionboard/internal/domain/entities"

// DefaultRecordsPerPage is the fixed page size of the call record list.
const DefaultRecordsPerPage = 5

// TotalPages returns ceil(total / perPage).
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// ClampPage clamps a requested 1-based page into [1, totalPages].
// Navigating below page 1 or above the last page clamps, never errors.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}

// PageWindow returns the displayed window for a page: the full
// ascending-by-date list reversed (most recent first), then sliced
// [(page-1)*perPage, page*perPage). The input slice is not modified.
func PageWindow(logs []*entities.CallLog, page, perPage int) []*entities.CallLog {
	total := len(logs)
	page = ClampPage(page, TotalPages(total, perPage))

	start := (page - 1) * perPage
	if start >= total {
		return nil
	}
	end := start + perPage
	if end > total {
		end = total
	}

	window := make([]*entities.CallLog, 0, end-start)
	for i := start; i < end; i++ {
		window = append(window, logs[total-1-i])
	}
	return window
}

// CallLabel computes the displayed "Call #N" for the record at reversed
// position index within a page: labels count down from the total record
// count and are independent of the persisted call_number, which counts
// up from 1.
func CallLabel(total, page, perPage, index int) int {
	return total - ((page-1)*perPage + index)
}

// PageForCall returns the page containing the chart point for the given
// 1-based call ordinal, for deep-linking a chart click to its record
// card.
func PageForCall(callNumber, perPage int) int {
	if perPage <= 0 || callNumber < 1 {
		return 1
	}
	return (callNumber + perPage - 1) / perPage
}
