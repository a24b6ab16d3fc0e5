package fetcher

import "testing"

const samplePersonXML = `<?xml version="1.0"?>
<dblpperson name="Jane Smith" pid="181/2689">
<r><inproceedings key="conf/icml/SmithD23" mdate="2023-07-01">
<author>Jane Smith</author>
<title>Learning to Rank Venues.</title>
<booktitle>ICML</booktitle>
<pages>100-112</pages>
<year>2023</year>
</inproceedings></r>
<r><article key="journals/pacmpl/SmithD22">
<author>Jane Smith</author>
<title>Typed Streams</title>
<journal>Proc. ACM Program. Lang.</journal>
<number>POPL</number>
<pages>12:3-12:9</pages>
<year>2022</year>
</article></r>
<r><article key="journals/tods/Smith21">
<author>Jane Smith</author>
<title>Relational Ranking.</title>
<journal>ACM Trans. Database Syst.</journal>
<pages>7</pages>
<year>2021</year>
</article></r>
<r><phdthesis key="phd/Smith20">
<title>On Ranking.</title>
<publisher>Some University</publisher>
<year>2020</year>
</phdthesis></r>
</dblpperson>`

func TestParsePersonXML(t *testing.T) {
	name, records, err := parsePersonXML([]byte(samplePersonXML), 0)
	if err != nil {
		t.Fatalf("parsePersonXML failed: %v", err)
	}
	if name != "Jane Smith" {
		t.Errorf("name = %q, want Jane Smith", name)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}

	first := records[0]
	if first.Title != "Learning to Rank Venues" {
		t.Errorf("trailing period not stripped: %q", first.Title)
	}
	if first.Venue != "ICML" {
		t.Errorf("venue = %q, want ICML", first.Venue)
	}
	if first.Year != 2023 {
		t.Errorf("year = %d, want 2023", first.Year)
	}
	if first.PageCount != 13 {
		t.Errorf("page count = %d, want 13", first.PageCount)
	}
	if got := first.StreamID(); got != "conf/icml" {
		t.Errorf("stream id = %q, want conf/icml", got)
	}

	// 期刊把缩写放在number字段的情况
	second := records[1]
	if second.Acronym != "POPL" {
		t.Errorf("acronym = %q, want POPL", second.Acronym)
	}
	if second.PageCount != 7 {
		t.Errorf("page count = %d, want 7", second.PageCount)
	}

	// 单页号推不出页数
	if records[2].PageCount != 0 {
		t.Errorf("bare page number should give unknown count, got %d", records[2].PageCount)
	}

	// 场所优先级落到publisher
	if records[3].Venue != "Some University" {
		t.Errorf("thesis venue = %q, want Some University", records[3].Venue)
	}
}

func TestParsePersonXMLLimit(t *testing.T) {
	_, records, err := parsePersonXML([]byte(samplePersonXML), 2)
	if err != nil {
		t.Fatalf("parsePersonXML failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestDerivePageCount(t *testing.T) {
	cases := []struct {
		pages string
		want  int
	}{
		{"100-105", 6},
		{"12:3-12:9", 7},
		{"1-1", 1},
		{"100", 0},
		{"105-100", 0},
		{"xii-xv", 0},
		{"e1003711", 0},
		{"", 0},
		{"23:1-23:35", 35},
	}
	for _, c := range cases {
		if got := DerivePageCount(c.pages); got != c.want {
			t.Errorf("DerivePageCount(%q) = %d, want %d", c.pages, got, c.want)
		}
	}
}

func TestParseStreamXML(t *testing.T) {
	data := `<?xml version="1.0"?>
<dblpstreams><conf key="conf/icml">
<title>International Conference on Machine Learning</title>
<acronym>ICML</acronym>
</conf></dblpstreams>`

	meta, err := parseStreamXML([]byte(data))
	if err != nil {
		t.Fatalf("parseStreamXML failed: %v", err)
	}
	if meta.Acronym != "ICML" {
		t.Errorf("acronym = %q, want ICML", meta.Acronym)
	}
	if meta.Title != "International Conference on Machine Learning" {
		t.Errorf("title = %q", meta.Title)
	}
}

func TestStreamIDShortKey(t *testing.T) {
	rec := BibRecord{Key: "phd/Smith20"}
	if got := rec.StreamID(); got != "" {
		t.Errorf("two-segment key should have no stream, got %q", got)
	}
}

func TestPidFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://dblp.org/pid/181/2689", "181/2689"},
		{"https://dblp.org/pid/l/MichaelLey", "l/MichaelLey"},
		{"https://dblp.org/pers/x", ""},
	}
	for _, c := range cases {
		if got := pidFromURL(c.url); got != c.want {
			t.Errorf("pidFromURL(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}
