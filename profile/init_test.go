package profile

import "testing"

func TestConfigOptions(t *testing.T) {
	var cfg Config = func() (string, string, bool) {
		return "", "", false
	}

	cfg = WithMode("cpu")(cfg)
	cfg = WithPath("/tmp/profiles")(cfg)
	cfg = WithQuiet(true)(cfg)

	mode, path, quiet := cfg()

	if mode != "cpu" || path != "/tmp/profiles" || !quiet {
		t.Errorf("config = (%q, %q, %v), want (cpu, /tmp/profiles, true)",
			mode, path, quiet)
	}
}

func TestStartUnsetModeIsNoop(t *testing.T) {
	var cfg Config = func() (string, string, bool) {
		return "", "", false
	}

	ctrl := cfg.Start()
	if ctrl == nil {
		t.Fatal("Start() returned nil")
	}

	// Stop must always be safely callable.
	ctrl.Stop()
}
