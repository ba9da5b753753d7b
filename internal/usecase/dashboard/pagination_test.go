package dashboard

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, perPage, want int
	}{
		{12, 5, 3},
		{10, 5, 2},
		{1, 5, 1},
		{0, 5, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, totalPages, want int
	}{
		{0, 3, 1},
		{-4, 3, 1},
		{1, 3, 1},
		{3, 3, 3},
		{4, 3, 3},
		{2, 0, 2},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.totalPages); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.totalPages, got, tt.want)
		}
	}
}

func TestPageWindow_TwelveRecordsFivePerPage(t *testing.T) {
	logs := makeLogs(t, make([]float64, 12))
	for i := range logs {
		logs[i].CallNumber = i + 1
	}

	page1 := PageWindow(logs, 1, 5)
	if len(page1) != 5 {
		t.Fatalf("page 1: got %d records, want 5", len(page1))
	}
	wantNumbers := []int{12, 11, 10, 9, 8}
	for i, l := range page1 {
		if l.CallNumber != wantNumbers[i] {
			t.Errorf("page 1 position %d: call_number = %d, want %d", i, l.CallNumber, wantNumbers[i])
		}
	}

	page3 := PageWindow(logs, 3, 5)
	if len(page3) != 2 {
		t.Fatalf("page 3: got %d records, want 2", len(page3))
	}
	if page3[0].CallNumber != 2 || page3[1].CallNumber != 1 {
		t.Errorf("page 3 = [%d %d], want [2 1]", page3[0].CallNumber, page3[1].CallNumber)
	}
}

func TestPageWindow_ClampsOutOfRangePages(t *testing.T) {
	logs := makeLogs(t, make([]float64, 12))

	below := PageWindow(logs, 0, 5)
	if len(below) != 5 || below[0].CallNumber != 12 {
		t.Errorf("page below 1 must clamp to page 1")
	}

	above := PageWindow(logs, 99, 5)
	if len(above) != 2 || above[0].CallNumber != 2 {
		t.Errorf("page above total must clamp to last page")
	}
}

func TestCallLabel_CountsDownFromTotal(t *testing.T) {
	// 12 records, 5 per page: page 1 labels 12..8, page 3 labels 2, 1.
	tests := []struct {
		page, index, want int
	}{
		{1, 0, 12},
		{1, 4, 8},
		{2, 0, 7},
		{3, 0, 2},
		{3, 1, 1},
	}
	for _, tt := range tests {
		if got := CallLabel(12, tt.page, 5, tt.index); got != tt.want {
			t.Errorf("CallLabel(12, %d, 5, %d) = %d, want %d", tt.page, tt.index, got, tt.want)
		}
	}
}

func TestPageForCall(t *testing.T) {
	tests := []struct {
		callNumber, want int
	}{
		{1, 1},
		{5, 1},
		{6, 2},
		{10, 2},
		{11, 3},
	}
	for _, tt := range tests {
		if got := PageForCall(tt.callNumber, 5); got != tt.want {
			t.Errorf("PageForCall(%d, 5) = %d, want %d", tt.callNumber, got, tt.want)
		}
	}
}
