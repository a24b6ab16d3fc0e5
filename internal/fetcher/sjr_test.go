package fetcher

import (
	"fmt"
	"testing"
)

func TestExtractJournalIDs(t *testing.T) {
	html := `
<a href="journalsearch.php?q=24254&amp;tip=sid&amp;clean=0">IEEE Trans PAMI</a>
<a href="journalsearch.php?q=24254&amp;tip=sid">duplicate</a>
<a href="journalsearch.php?q=19434&amp;tip=sid">another</a>
<a href="journalsearch.php?q=foo&amp;tip=sid">not numeric</a>`

	ids := ExtractJournalIDs(html)
	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2: %v", len(ids), ids)
	}
	if ids[0] != "24254" || ids[1] != "19434" {
		t.Errorf("ids = %v, want [24254 19434]", ids)
	}
}

func TestExtractJournalIDsLimit(t *testing.T) {
	var html string
	for i := 10; i < 22; i++ {
		html += fmt.Sprintf(`<a href="journalsearch.php?q=100%d&amp;tip=sid">x</a>`, i)
	}

	ids := ExtractJournalIDs(html)
	if len(ids) != journalIDLimit {
		t.Errorf("got %d ids, want %d", len(ids), journalIDLimit)
	}
}

func TestParseJournalDetail(t *testing.T) {
	html := []byte(`<html><body>
<h1>IEEE Transactions on Pattern Analysis and Machine Intelligence</h1>
<div class="cellslide"><table><tbody>
<tr><td>Artificial Intelligence</td><td>2020</td><td>Q1</td></tr>
<tr><td>Software</td><td>2020</td><td>Q2</td></tr>
<tr><td>Artificial Intelligence</td><td>2019</td><td>Q1</td></tr>
<tr><td>Artificial Intelligence</td><td>2018</td><td>-</td></tr>
</tbody></table></div>
</body></html>`)

	detail, err := ParseJournalDetail(html)
	if err != nil {
		t.Fatalf("ParseJournalDetail failed: %v", err)
	}
	if detail.Title != "IEEE Transactions on Pattern Analysis and Machine Intelligence" {
		t.Errorf("title = %q", detail.Title)
	}
	// 同一年多类目保留数值更好的分位
	if detail.Quartiles[2020] != "Q1" {
		t.Errorf("2020 quartile = %q, want Q1", detail.Quartiles[2020])
	}
	if detail.Quartiles[2019] != "Q1" {
		t.Errorf("2019 quartile = %q, want Q1", detail.Quartiles[2019])
	}
	if _, ok := detail.Quartiles[2018]; ok {
		t.Error("non-quartile cell should be skipped")
	}
}

func TestParseJournalDetailEmpty(t *testing.T) {
	detail, err := ParseJournalDetail([]byte(`<html><body><p>nothing here</p></body></html>`))
	if err != nil {
		t.Fatalf("ParseJournalDetail failed: %v", err)
	}
	if detail != nil {
		t.Errorf("empty page should give nil detail, got %+v", detail)
	}
}
