package session

import (
	"testing"

	"quizcraft/internal/generation"
	"quizcraft/internal/quiz"
	"quizcraft/internal/studykit"
)

func testKit(n int) *studykit.StudyKit {
	qs := make([]studykit.Question, n)
	for i := range qs {
		qs[i] = studykit.Question{
			Prompt:  "question",
			Options: []string{"right", "wrong"},
			Answer:  "right",
		}
	}
	return &studykit.StudyKit{
		Summary:   "a summary",
		Questions: qs,
		Flashcards: []studykit.Flashcard{
			{Term: "term", Definition: "definition"},
			{Term: "other", Definition: "meaning"},
		},
		SourceText: "source material",
	}
}

func submitted(t *testing.T) (*State, generation.Request) {
	t.Helper()
	st := NewState()
	st.DocumentPath = "notes.txt"
	req, err := Submit(st)
	if err != nil {
		t.Fatal(err)
	}
	return st, req
}

func inStudySession(t *testing.T, n int) (*State, string) {
	t.Helper()
	st, req := submitted(t)
	if !HandleKit(st, req.ID, testKit(n)) {
		t.Fatal("kit not accepted")
	}
	return st, req.ID
}

func TestSubmit_RequiresDocument(t *testing.T) {
	st := NewState()
	if _, err := Submit(st); err == nil {
		t.Fatal("submit without a document should fail")
	}
	if st.Phase != PhaseLanding {
		t.Error("phase should stay at landing")
	}
}

func TestSubmit_EntersSubmitting(t *testing.T) {
	st, req := submitted(t)
	if st.Phase != PhaseSubmitting {
		t.Errorf("phase = %v, want Submitting", st.Phase)
	}
	if req.ID == "" || st.Request == nil || st.Request.ID != req.ID {
		t.Error("request ID should be recorded on the state")
	}
	if st.Loader == nil || st.Loader.Current().Percent != 10 {
		t.Error("loader should start at the first stage")
	}
}

func TestHandleKit_StartsStudySession(t *testing.T) {
	st, req := submitted(t)
	if !HandleKit(st, req.ID, testKit(8)) {
		t.Fatal("kit should be accepted")
	}
	if st.Phase != PhaseStudySession {
		t.Errorf("phase = %v, want StudySession", st.Phase)
	}
	if _, idx := st.Quiz.Current(); idx != 0 || st.Quiz.Score() != 0 {
		t.Error("quiz should start at question 0 with score 0")
	}
	if st.Quiz.Total() != 8 {
		t.Errorf("quiz total = %d, want 8", st.Quiz.Total())
	}
	if st.Deck == nil || st.Deck.Size() != 2 {
		t.Error("deck should cover the kit's flashcards")
	}
	if st.Chat == nil || st.Chat.Len() != 1 {
		t.Error("chat should open with the greeting")
	}
	if st.ActiveTab != TabQuiz || !st.ChatVisible {
		t.Error("study session should open on the quiz tab with chat visible")
	}
}

func TestHandleKit_StaleIDDiscarded(t *testing.T) {
	st, _ := submitted(t)
	if HandleKit(st, "someone-else", testKit(3)) {
		t.Fatal("kit with a stale ID should be discarded")
	}
	if st.Phase != PhaseSubmitting || st.Kit != nil {
		t.Error("stale kit must not mutate the session")
	}
}

func TestHandleKit_EmptyQuizIsFailure(t *testing.T) {
	st, req := submitted(t)
	kit := testKit(0)
	HandleKit(st, req.ID, kit)
	if st.Phase != PhaseSubmitting {
		t.Errorf("phase = %v, want Submitting (failure display)", st.Phase)
	}
	if st.FailureMessage != "Error: No questions generated." {
		t.Errorf("failure message = %q", st.FailureMessage)
	}
	DismissFailure(st)
	if st.Phase != PhaseLanding {
		t.Error("failure should return to landing after dismissal")
	}
	if st.DocumentPath != "notes.txt" {
		t.Error("document selection should survive a failure")
	}
}

func TestHandleFailure_ThenResubmit(t *testing.T) {
	st, req := submitted(t)
	if !HandleFailure(st, req.ID, "Server error") {
		t.Fatal("failure for the live request should be accepted")
	}
	DismissFailure(st)

	req2, err := Submit(st)
	if err != nil {
		t.Fatal(err)
	}
	if req2.ID == req.ID {
		t.Error("resubmission should carry a fresh request ID")
	}
	if st.FailureMessage != "" {
		t.Error("resubmitting should clear the failure message")
	}
}

func TestHandleFailure_StaleIDDiscarded(t *testing.T) {
	st, req := submitted(t)
	if HandleFailure(st, "old-request", "late error") {
		t.Fatal("stale failure should be discarded")
	}
	if !HandleKit(st, req.ID, testKit(3)) {
		t.Fatal("live request should still resolve normally")
	}
}

func TestFinishQuiz_FourQuestionRun(t *testing.T) {
	st, _ := inStudySession(t, 4)

	answers := []int{0, 1, 0, 0} // right, wrong, right, right
	for i, a := range answers {
		st.Quiz.Answer(a)
		if st.Quiz.Advance() {
			if i != len(answers)-1 {
				t.Fatalf("run completed early at question %d", i)
			}
		}
	}
	FinishQuiz(st)

	if st.Phase != PhaseResults {
		t.Fatalf("phase = %v, want Results", st.Phase)
	}
	out := st.Quiz.Outcome()
	if out.Score != 3 || out.Percentage != 75 {
		t.Errorf("outcome = %d/%d%%, want 3/75%%", out.Score, out.Percentage)
	}
	if out.Tier != quiz.TierGreat {
		t.Errorf("tier = %v, want TierGreat", out.Tier)
	}
}

func TestFinishQuiz_RequiresCompletion(t *testing.T) {
	st, _ := inStudySession(t, 2)
	st.Quiz.Answer(0)
	FinishQuiz(st)
	if st.Phase != PhaseStudySession {
		t.Error("session must not reach Results before the final advance")
	}
}

func TestRetake_SameQuestionsFreshRun(t *testing.T) {
	st, _ := inStudySession(t, 4)
	for i := 0; i < 4; i++ {
		st.Quiz.Answer(0)
		st.Quiz.Advance()
	}
	st.Deck.Toggle(0)
	st.Chat.Begin("what is this about?")
	SelectTab(st, TabNotes)
	FinishQuiz(st)

	kitBefore := st.Kit
	Retake(st)

	if st.Phase != PhaseStudySession {
		t.Fatalf("phase = %v, want StudySession", st.Phase)
	}
	if st.Kit != kitBefore {
		t.Error("retake must reuse the same kit, not re-fetch")
	}
	if _, idx := st.Quiz.Current(); idx != 0 || st.Quiz.Score() != 0 || st.Quiz.Answered() {
		t.Error("quiz state should reset to initial")
	}
	if st.Deck.RevealedCount() != 0 {
		t.Error("deck should reset")
	}
	if st.Chat.Len() != 1 || st.Chat.Pending() {
		t.Error("chat thread should reset to the greeting")
	}
	if st.ActiveTab != TabQuiz {
		t.Error("retake should return to the quiz tab")
	}
}

func TestStartOver_ClearsEverything(t *testing.T) {
	st, _ := inStudySession(t, 3)
	StartOver(st)

	if st.Phase != PhaseLanding {
		t.Fatalf("phase = %v, want Landing", st.Phase)
	}
	if st.DocumentPath != "" {
		t.Error("document selection should clear")
	}
	if st.Kit != nil || st.Quiz != nil || st.Deck != nil || st.Chat != nil {
		t.Error("kit and sub-engine state should clear")
	}
	if st.ChatID != "" {
		t.Error("chat thread ID should clear so stale responses are dropped")
	}
}

func TestTabAndChatToggle_IndependentAxes(t *testing.T) {
	st, _ := inStudySession(t, 2)
	st.Quiz.Answer(0)
	st.Deck.Toggle(1)

	SelectTab(st, TabFlashcards)
	ToggleChat(st)
	SelectTab(st, TabNotes)
	ToggleChat(st)

	if !st.Quiz.Answered() || st.Quiz.Score() != 1 {
		t.Error("switching views must not touch quiz state")
	}
	if !st.Deck.Revealed(1) {
		t.Error("switching views must not touch deck state")
	}
	if st.ActiveTab != TabNotes || !st.ChatVisible {
		t.Error("tab and chat visibility should track the toggles")
	}
}

func TestBeginChat_RejectedWhilePending(t *testing.T) {
	st, _ := inStudySession(t, 2)
	if _, _, ok := BeginChat(st, "first"); !ok {
		t.Fatal("first send should be accepted")
	}
	lenBefore := st.Chat.Len()

	if _, _, ok := BeginChat(st, "define X"); ok {
		t.Fatal("send while pending should be rejected")
	}
	if st.Chat.Len() != lenBefore {
		t.Error("rejected send must not append a user turn")
	}
}

func TestResolveChat_StaleAfterStartOver(t *testing.T) {
	st, _ := inStudySession(t, 2)
	_, threadID, ok := BeginChat(st, "question")
	if !ok {
		t.Fatal("send should be accepted")
	}
	StartOver(st)

	if ResolveChat(st, threadID, "late answer") {
		t.Error("answer for an abandoned thread should be discarded")
	}
	if FailChat(st, threadID) {
		t.Error("failure for an abandoned thread should be discarded")
	}
}

func TestResolveChat_StaleAfterRetake(t *testing.T) {
	st, _ := inStudySession(t, 2)
	_, oldID, ok := BeginChat(st, "old question")
	if !ok {
		t.Fatal("send should be accepted")
	}

	for range 2 {
		st.Quiz.Answer(0)
		st.Quiz.Advance()
	}
	FinishQuiz(st)
	Retake(st)

	_, newID, ok := BeginChat(st, "new question")
	if !ok {
		t.Fatal("post-retake send should be accepted")
	}
	if newID == oldID {
		t.Fatal("retake should stamp a fresh thread ID")
	}

	if ResolveChat(st, oldID, "answer to the old question") {
		t.Error("answer for the pre-retake thread should be discarded")
	}
	if !st.Chat.Pending() {
		t.Error("the new question must stay pending")
	}
	if last := st.Chat.Turns()[st.Chat.Len()-1]; last.Text != "new question" {
		t.Errorf("last turn = %q, want the new question", last.Text)
	}

	if !ResolveChat(st, newID, "answer to the new question") {
		t.Fatal("answer for the live thread should be accepted")
	}
}

func TestResolveChat_LiveThreadAccepted(t *testing.T) {
	st, _ := inStudySession(t, 2)
	q, threadID, ok := BeginChat(st, "  what is photosynthesis?  ")
	if !ok || q != "what is photosynthesis?" || threadID != st.ChatID {
		t.Fatalf("BeginChat = (%q, %q, %v)", q, threadID, ok)
	}
	if !ResolveChat(st, threadID, "A light-driven process.") {
		t.Fatal("answer for the live thread should be accepted")
	}
	if st.Chat.Pending() {
		t.Error("pending should clear on resolution")
	}
}

func TestAdjustCount_StepsWithinBounds(t *testing.T) {
	st := NewState()
	AdjustCount(st, -1)
	if st.Count != 5 {
		t.Errorf("count = %d, want 5", st.Count)
	}
	AdjustCount(st, -1)
	if st.Count != 5 {
		t.Error("count should not go below the minimum")
	}
	for i := 0; i < 10; i++ {
		AdjustCount(st, 1)
	}
	if st.Count != 30 {
		t.Errorf("count = %d, want 30", st.Count)
	}
}
