package process

import (
	"testing"
)

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{name: "valid", spec: Spec{Name: "web", Command: []string{"python", "app.py"}}},
		{name: "missing_name", spec: Spec{Command: []string{"true"}}, wantErr: true},
		{name: "missing_command", spec: Spec{Name: "web"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSpecDirDefaults(t *testing.T) {
	s := Spec{Name: "a", Command: []string{"true"}}
	if got := s.Dir(); got != "." {
		t.Fatalf("Dir() = %q, want %q", got, ".")
	}
	s.WorkDir = "/tmp"
	if got := s.Dir(); got != "/tmp" {
		t.Fatalf("Dir() = %q, want %q", got, "/tmp")
	}
}

func TestBuildCommandArgv(t *testing.T) {
	s := Spec{Name: "svc", Command: []string{"/bin/echo", "hello", "world"}, WorkDir: "/tmp"}
	cmd := s.BuildCommand()
	if cmd.Path != "/bin/echo" {
		t.Fatalf("Path = %q", cmd.Path)
	}
	if len(cmd.Args) != 3 || cmd.Args[1] != "hello" || cmd.Args[2] != "world" {
		t.Fatalf("Args = %v", cmd.Args)
	}
	if cmd.Dir != "/tmp" {
		t.Fatalf("Dir = %q", cmd.Dir)
	}
}
