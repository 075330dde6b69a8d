package chat

import "testing"

func TestNewThread_OpensWithGreeting(t *testing.T) {
	th := NewThread()
	if th.Len() != 1 {
		t.Fatalf("Len = %d, want 1", th.Len())
	}
	if th.Turns()[0].Speaker != SpeakerAssistant {
		t.Error("greeting should come from the assistant")
	}
	if th.Pending() {
		t.Error("new thread should not be pending")
	}
}

func TestBegin_AppendsUserTurnImmediately(t *testing.T) {
	th := NewThread()
	q := th.Begin("  define X  ")
	if q != "define X" {
		t.Fatalf("Begin returned %q, want trimmed question", q)
	}
	if !th.Pending() {
		t.Error("thread should be pending after Begin")
	}
	last := th.Turns()[th.Len()-1]
	if last.Speaker != SpeakerUser || last.Text != "define X" {
		t.Errorf("last turn = %+v, want user turn with question", last)
	}
}

func TestBegin_RejectsBlank(t *testing.T) {
	th := NewThread()
	if q := th.Begin("   "); q != "" {
		t.Errorf("Begin(blank) = %q, want rejection", q)
	}
	if th.Len() != 1 || th.Pending() {
		t.Error("blank question must leave the thread untouched")
	}
}

func TestBegin_RejectsWhilePending(t *testing.T) {
	th := NewThread()
	th.Begin("first question")
	lenBefore := th.Len()

	if q := th.Begin("define X"); q != "" {
		t.Errorf("Begin while pending = %q, want rejection", q)
	}
	if th.Len() != lenBefore {
		t.Errorf("Len = %d, want %d (no second user turn)", th.Len(), lenBefore)
	}
}

func TestResolve_AppendsAnswerAndClearsPending(t *testing.T) {
	th := NewThread()
	th.Begin("what is photosynthesis?")
	th.Resolve("A process converting light to energy.")

	if th.Pending() {
		t.Error("pending should clear after Resolve")
	}
	last := th.Turns()[th.Len()-1]
	if last.Speaker != SpeakerAssistant {
		t.Error("answer should come from the assistant")
	}

	// The next send is accepted.
	if q := th.Begin("follow-up"); q == "" {
		t.Error("thread should accept a new question after resolution")
	}
}

func TestResolve_EmptyAnswerUsesFallback(t *testing.T) {
	th := NewThread()
	th.Begin("q")
	th.Resolve("   ")
	last := th.Turns()[th.Len()-1]
	if last.Text != FallbackAnswer {
		t.Errorf("answer = %q, want fallback %q", last.Text, FallbackAnswer)
	}
}

func TestFail_AppendsNoticeAndClearsPending(t *testing.T) {
	th := NewThread()
	th.Begin("q")
	th.Fail()

	if th.Pending() {
		t.Error("pending should clear after Fail")
	}
	last := th.Turns()[th.Len()-1]
	if last.Text != FailureNotice {
		t.Errorf("turn = %q, want failure notice", last.Text)
	}
	if q := th.Begin("again"); q == "" {
		t.Error("thread should accept a new question after a failure")
	}
}

func TestResolveWithoutPending_NoOp(t *testing.T) {
	th := NewThread()
	th.Resolve("stray answer")
	th.Fail()
	if th.Len() != 1 {
		t.Errorf("Len = %d, want 1 (stray resolutions ignored)", th.Len())
	}
}
