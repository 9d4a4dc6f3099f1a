package detector

import "testing"

func TestSamePath(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"/usr/bin/python3", "/usr/bin/python3", true},
		{"/usr/bin/Python3", "/usr/bin/python3", true},
		{"/usr/bin//python3", "/usr/bin/python3", true},
		{"/usr/bin/../bin/python3", "/usr/bin/python3", true},
		{"/usr/bin/python3", "/usr/local/bin/python3", false},
	}
	for _, tt := range tests {
		if got := samePath(tt.a, tt.b); got != tt.want {
			t.Errorf("samePath(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestForSpecChainShape(t *testing.T) {
	tests := []struct {
		name    string
		pidfile string
		match   string
		exe     string
		want    int
	}{
		{name: "all", pidfile: "a.pid", match: "svc", exe: "/bin/svc", want: 2},
		{name: "pidfile_only", pidfile: "a.pid", want: 1},
		{name: "match_only", match: "svc", want: 1},
		{name: "exe_only", exe: "/bin/svc", want: 1},
		{name: "none", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := specWith(tt.pidfile, tt.match, tt.exe)
			if got := len(ForSpec(spec)); got != tt.want {
				t.Fatalf("len(ForSpec) = %d, want %d", got, tt.want)
			}
		})
	}
}
