package utils

import "testing"

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"NeurIPS", "neurips"},
		{"Int'l Conf. on Machine Learning", "international conference on machine learning"},
		{"IEEE Trans. Pattern Analysis & Machine Intelligence", "ieee transactions pattern analysis and machine intelligence"},
		{"Proc. of the ACM Symp. on Theory of Computing", "proceedings of the acm symposium on theory of computing"},
		{"J. Machine Learning Research", "journal machine learning research"},
		{"Computer   Vision --- ECCV", "computer vision eccv"},
	}
	for _, c := range cases {
		if got := NormalizeTitle(c.in); got != c.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeVenue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2023 IEEE Conference on Computer Vision and Pattern Recognition", "ieee conference on computer vision and pattern recognition"},
		{"38th AAAI Conference on Artificial Intelligence", "aaai conference on artificial intelligence"},
		{"International Conference on Machine Learning (2021)", "international conference on machine learning"},
		{"Conference on Empirical Methods in NLP, 2019", "conference on empirical methods in nlp"},
		{"SIGMOD", "sigmod"},
	}
	for _, c := range cases {
		if got := NormalizeVenue(c.in); got != c.want {
			t.Errorf("NormalizeVenue(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStripOrgPrefixes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ieee conference on computer vision", "conference on computer vision"},
		{"the ieee/acm international symposium on microarchitecture", "symposium on microarchitecture"},
		{"acm sigmod", "sigmod"},
		{"conference on machine learning", "conference on machine learning"},
		{"ieee", ""},
	}
	for _, c := range cases {
		if got := StripOrgPrefixes(c.in); got != c.want {
			t.Errorf("StripOrgPrefixes(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
