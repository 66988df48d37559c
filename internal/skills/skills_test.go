package skills

import "testing"

func TestRank_OrdersByScoreDescending(t *testing.T) {
	entries := Rank([]Standing{
		{StudentID: "s1", Name: "Alex", Score: 82},
		{StudentID: "s2", Name: "Jamie", Score: 88},
		{StudentID: "s3", Name: "Taylor", Score: 76},
	})

	want := []string{"s2", "s1", "s3"}
	for i, id := range want {
		if entries[i].StudentID != id {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].StudentID, id)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("entries[%d].Rank = %d, want %d", i, entries[i].Rank, i+1)
		}
	}
}

func TestRank_TiesShareRank(t *testing.T) {
	entries := Rank([]Standing{
		{StudentID: "s1", Name: "Alex", Score: 90},
		{StudentID: "s2", Name: "Jamie", Score: 90},
		{StudentID: "s3", Name: "Taylor", Score: 80},
	})

	if entries[0].Rank != 1 || entries[1].Rank != 1 {
		t.Errorf("tied scores should share rank 1, got %d and %d", entries[0].Rank, entries[1].Rank)
	}
	if entries[2].Rank != 3 {
		t.Errorf("entry after a tie should rank 3, got %d", entries[2].Rank)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	standings := []Standing{
		{StudentID: "s1", Name: "Alex", Score: 10},
		{StudentID: "s2", Name: "Jamie", Score: 99},
	}
	Rank(standings)
	if standings[0].StudentID != "s1" {
		t.Error("Rank reordered its input")
	}
}
