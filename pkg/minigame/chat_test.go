package minigame

import (
	"testing"

	"github.com/hbd-sarah/journey/pkg/sequence"
)

// playChat 按正确顺序完成全部对话
func playChat(t *testing.T, c *Chat) {
	t.Helper()
	for _, id := range []string{"opt_ceco", "opt_cowo", "opt_18", "opt_km"} {
		// 等待对方回复结束
		for i := 0; i < 60*10 && !c.AwaitingInput(); i++ {
			c.Update(frame)
		}
		if !c.Choose(id) {
			t.Fatalf("Choose(%s) rejected", id)
		}
	}
}

func TestChatStartShowsSystemMessage(t *testing.T) {
	c := NewChat(loadChatScript(t), newOpenedStore(t))
	c.Start()

	transcript := c.Transcript()
	if len(transcript) != 1 || transcript[0].Kind != sequence.System {
		t.Fatalf("Transcript = %+v", transcript)
	}
	if !c.AwaitingInput() {
		t.Error("Should wait for the first user turn")
	}
	if len(c.Options()) != 6 {
		t.Errorf("Options = %d, want 6", len(c.Options()))
	}
}

func TestChatWrongOptionIgnored(t *testing.T) {
	c := NewChat(loadChatScript(t), newOpenedStore(t))
	c.Start()

	for _, id := range []string{"opt_salken", "opt_cewe", "opt_cowo", "missing"} {
		if c.Choose(id) {
			t.Errorf("Choose(%s) should be rejected", id)
		}
	}
	if len(c.Transcript()) != 1 {
		t.Error("Transcript changed on wrong option")
	}
	if len(c.Options()) != 6 {
		t.Error("Wrong option must not be consumed")
	}
}

func TestChatCorrectOptionConsumed(t *testing.T) {
	c := NewChat(loadChatScript(t), newOpenedStore(t))
	c.Start()

	if !c.Choose("opt_ceco") {
		t.Fatal("Choose(opt_ceco) rejected")
	}
	for _, opt := range c.Options() {
		if opt.ID == "opt_ceco" {
			t.Error("Correct option should be removed from the pool")
		}
	}
	last := c.Transcript()[len(c.Transcript())-1]
	if last.Kind != sequence.UserChoice || last.Text != "ceco" {
		t.Errorf("Last entry = %+v", last)
	}
}

func TestChatCompleteAndExit(t *testing.T) {
	store := newOpenedStore(t)
	store.SelectLevel(ChatLevel)
	c := NewChat(loadChatScript(t), store)
	c.Start()
	playChat(t, c)

	// 最后四条回复 1.0+1.5+2.0+3.0 秒，再加 1.5 秒完成延迟
	run(c.Update, 7.4)
	if c.ShowComplete() {
		t.Fatal("Complete card shown too early")
	}
	run(c.Update, 2.0)
	if !c.ShowComplete() {
		t.Fatal("Complete card should be shown")
	}
	if got := c.Transcript()[len(c.Transcript())-1].Text; got != "17" {
		t.Errorf("Last message = %q, want 17", got)
	}

	c.Continue()
	if !c.Exiting() {
		t.Error("Continue should start the exit")
	}
	run(c.Update, 1.9)
	if store.Record().IsCompleted(ChatLevel) {
		t.Fatal("Level completed before the exit delay")
	}
	run(c.Update, 0.2)

	r := store.Record()
	if !r.IsCompleted(ChatLevel) || !r.IsUnlocked(2) || r.CurrentLevel != 0 {
		t.Errorf("After exit: unlocked=%v completed=%v level=%d", r.Unlocked(), r.Completed(), r.CurrentLevel)
	}
}

func TestChatTeardownMidSequence(t *testing.T) {
	store := newOpenedStore(t)
	store.SelectLevel(ChatLevel)
	c := NewChat(loadChatScript(t), store)
	c.Start()
	playChat(t, c)
	run(c.Update, 10)
	c.Continue()
	if !c.Exiting() {
		t.Fatal("Exit should be pending")
	}

	changes := countingObserver(store)
	before := store.Record()
	c.Teardown()
	run(c.Update, 10)

	if *changes != 0 {
		t.Errorf("Progress changed %d times after teardown", *changes)
	}
	if store.Record().IsCompleted(ChatLevel) != before.IsCompleted(ChatLevel) {
		t.Error("Teardown must stop the pending completion")
	}
	if c.Choose("opt_salken") {
		t.Error("Choose accepted after teardown")
	}
}
