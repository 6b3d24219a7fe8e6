package minigame

import "testing"

func TestLifecycleTransitions(t *testing.T) {
	l := NewLifecycle()
	won, lost, started := 0, 0, 0
	l.OnWon(func() { won++ })
	l.OnLost(func() { lost++ })
	l.OnStart(func() { started++ })

	if l.Win() || l.Lose() || l.Retry() {
		t.Fatal("No transitions allowed before Start")
	}
	if !l.Start() || l.State() != Running {
		t.Fatal("Start should enter Running")
	}
	if l.Start() {
		t.Error("Start twice should fail")
	}
	if !l.Lose() || l.State() != Lost {
		t.Fatal("Lose should enter Lost")
	}
	if l.Win() {
		t.Error("Win from Lost should fail")
	}
	if !l.Retry() || l.State() != Running {
		t.Fatal("Retry should re-enter Running")
	}
	if !l.Win() || l.State() != Won {
		t.Fatal("Win should enter Won")
	}
	if l.Win() || l.Lose() || l.Retry() {
		t.Error("Won is terminal")
	}

	if won != 1 || lost != 1 || started != 2 {
		t.Errorf("won=%d lost=%d started=%d", won, lost, started)
	}
}

func TestLifecycleTeardown(t *testing.T) {
	l := NewLifecycle()
	fired := false
	l.OnWon(func() { fired = true })
	l.Start()
	l.Teardown()

	if l.Win() || l.Running() {
		t.Error("Torn down lifecycle must not transition")
	}
	if fired {
		t.Error("OnWon fired after teardown")
	}
	if !l.TornDown() {
		t.Error("TornDown() should be true")
	}
}

func TestStateString(t *testing.T) {
	if Lost.String() != "lost" || State(7).String() != "state(7)" {
		t.Error("unexpected State strings")
	}
}
