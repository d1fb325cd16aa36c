package git

import "testing"

func TestParseSubmoduleStatus(t *testing.T) {
	out := ` 2f4cbd0bb99b96203881a1fc661a7dcdcff9bc7e api (fix-auth)
-aa96e2944b0d0a0cfea123b441b46a59a4f39c9f web
+1e292fd54d0b19e330f9d85f9ea relay (heads/main)
`
	subs := ParseSubmoduleStatus(out)
	if len(subs) != 3 {
		t.Fatalf("got %d submodules, want 3", len(subs))
	}

	if subs[0].Path != "api" || subs[0].Ref != "fix-auth" {
		t.Errorf("first = %+v", subs[0])
	}
	if subs[0].SHA != "2f4cbd0bb99b96203881a1fc661a7dcdcff9bc7e" {
		t.Errorf("SHA = %q", subs[0].SHA)
	}

	// Uninitialized submodule: no ref.
	if subs[1].Path != "web" || subs[1].Ref != "" {
		t.Errorf("second = %+v", subs[1])
	}

	// Out-of-sync flag stripped.
	if subs[2].Path != "relay" || subs[2].Ref != "heads/main" {
		t.Errorf("third = %+v", subs[2])
	}
}

func TestParseSubmoduleStatusEmpty(t *testing.T) {
	if subs := ParseSubmoduleStatus(""); subs != nil {
		t.Errorf("empty input parsed to %v", subs)
	}
	if subs := ParseSubmoduleStatus("\n  \n"); subs != nil {
		t.Errorf("blank input parsed to %v", subs)
	}
}
