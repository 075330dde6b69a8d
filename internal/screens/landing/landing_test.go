package landing

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizcraft/internal/generation"
	"quizcraft/internal/router"
	"quizcraft/internal/screen"
	"quizcraft/internal/session"
	"quizcraft/internal/studykit"
)

// stubService implements generation.Service and chat.Service for testing.
type stubService struct {
	kit *studykit.StudyKit
	err error
}

func (s *stubService) Generate(_ context.Context, _ generation.Request) (*studykit.StudyKit, error) {
	return s.kit, s.err
}

func (s *stubService) Ask(_ context.Context, _, _ string) (string, error) {
	return "", nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testKit() *studykit.StudyKit {
	return &studykit.StudyKit{
		SourceText: "src",
		Questions: []studykit.Question{
			{Prompt: "Q?", Options: []string{"right", "wrong"}, Answer: "right"},
		},
	}
}

func testLandingScreen(svc *stubService) (*LandingScreen, *session.State) {
	state := session.NewState()
	s := New(state, svc, svc)
	return s, state
}

func TestLandingScreen_SubmitRequiresDocument(t *testing.T) {
	s, state := testLandingScreen(&stubService{kit: testKit()})

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	if state.Phase != session.PhaseLanding {
		t.Errorf("Phase = %v, want PhaseLanding", state.Phase)
	}
	if s.formErr == "" {
		t.Error("expected a form error for the missing document")
	}
	if cmd != nil {
		t.Error("expected no command for a rejected submit")
	}
}

func TestLandingScreen_SubmitEntersSubmitting(t *testing.T) {
	s, state := testLandingScreen(&stubService{kit: testKit()})
	s.input.SetValue("notes.txt")

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	if state.Phase != session.PhaseSubmitting {
		t.Fatalf("Phase = %v, want PhaseSubmitting", state.Phase)
	}
	if state.Loader == nil || state.Loader.Current().Percent != 10 {
		t.Error("expected the loader to start at its first stage")
	}
	if cmd == nil {
		t.Error("expected a generate command")
	}
}

func TestLandingScreen_KitReadyPushesStudy(t *testing.T) {
	s, state := testLandingScreen(&stubService{kit: testKit()})
	s.input.SetValue("notes.txt")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	_, cmd := scr.Update(kitReadyMsg{RequestID: state.Request.ID, Kit: testKit()})

	if state.Phase != session.PhaseStudySession {
		t.Fatalf("Phase = %v, want PhaseStudySession", state.Phase)
	}
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected a PushScreenMsg")
	}
}

func TestLandingScreen_StaleKitDiscarded(t *testing.T) {
	s, state := testLandingScreen(&stubService{kit: testKit()})
	s.input.SetValue("notes.txt")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	_, cmd := scr.Update(kitReadyMsg{RequestID: "stale", Kit: testKit()})

	if state.Phase != session.PhaseSubmitting {
		t.Errorf("Phase = %v, want PhaseSubmitting", state.Phase)
	}
	if cmd != nil {
		t.Error("expected no command for a stale result")
	}
}

func TestLandingScreen_FailureThenDismiss(t *testing.T) {
	s, state := testLandingScreen(&stubService{err: errors.New("server exploded")})
	s.input.SetValue("notes.txt")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	reqID := state.Request.ID

	scr, cmd := scr.Update(kitReadyMsg{RequestID: reqID, Err: errors.New("server exploded")})
	if state.FailureMessage != "Error: server exploded" {
		t.Errorf("FailureMessage = %q", state.FailureMessage)
	}
	if state.Phase != session.PhaseSubmitting {
		t.Errorf("Phase = %v, want PhaseSubmitting while the failure shows", state.Phase)
	}
	if cmd == nil {
		t.Fatal("expected a dismiss timer command")
	}

	scr.Update(failureShownMsg{RequestID: reqID})
	if state.Phase != session.PhaseLanding {
		t.Errorf("Phase = %v, want PhaseLanding after dismissal", state.Phase)
	}
	if state.DocumentPath != "notes.txt" {
		t.Error("expected the document selection to survive the failure")
	}
}

func TestLandingScreen_LoaderHoldsBeforeResolution(t *testing.T) {
	s, state := testLandingScreen(&stubService{kit: testKit()})
	s.input.SetValue("notes.txt")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	for i := 0; i < 10; i++ {
		scr, _ = scr.Update(loaderTickMsg(time.Now()))
	}
	if got := state.Loader.Current().Percent; got != 70 {
		t.Errorf("loader percent = %d, want it held at 70", got)
	}
}

func TestLandingScreen_View(t *testing.T) {
	s, state := testLandingScreen(&stubService{kit: testKit()})

	if s.View(100, 30) == "" {
		t.Error("expected non-empty form view")
	}

	s.input.SetValue("notes.txt")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	if state.Phase != session.PhaseSubmitting {
		t.Fatalf("Phase = %v, want PhaseSubmitting", state.Phase)
	}
	if scr.View(100, 30) == "" {
		t.Error("expected non-empty loader view")
	}
}
