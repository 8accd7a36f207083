package intake

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/oppd-health/whatsapp-intake/internal/directory"
	"github.com/oppd-health/whatsapp-intake/internal/i18n"
	"github.com/oppd-health/whatsapp-intake/internal/scheduling"
	"github.com/oppd-health/whatsapp-intake/internal/triage"
	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

type recordingSink struct {
	saved []scheduling.Record
	err   error
}

func (s *recordingSink) Save(_ context.Context, rec scheduling.Record) (scheduling.Result, error) {
	if s.err != nil {
		return scheduling.Result{}, s.err
	}
	s.saved = append(s.saved, rec)
	return scheduling.Result{ID: "rec-1"}, nil
}

type scriptedGenerator struct {
	calls int
	err   error
}

func (g *scriptedGenerator) GetQuestion(_ context.Context, _ triage.PatientContext, index int) (triage.Question, error) {
	g.calls++
	if g.err != nil {
		return triage.Question{}, g.err
	}
	return triage.Question{
		Text:    fmt.Sprintf("Question %d?", index+1),
		Options: []string{"Option A", "Option B", "Option C", "Option D"},
	}, nil
}

type failingDirectory struct{}

func (failingDirectory) LookupByCode(context.Context, string) (*directory.Doctor, error) {
	return nil, errors.New("directory unreachable")
}

func newTestEngine(sink scheduling.Sink, gen triage.Generator) *Engine {
	if sink == nil {
		sink = &recordingSink{}
	}
	if gen == nil {
		gen = &scriptedGenerator{}
	}
	return NewEngine(directory.NewStaticDirectory(), gen, sink, nil, logging.Default(), 3)
}

// drive runs a sequence of utterances against a fresh record and returns it
// with the final outbound.
func drive(t *testing.T, e *Engine, utterances ...string) (*Record, Outbound) {
	t.Helper()
	rec := NewRecord("15551234567")
	var out Outbound
	for _, u := range utterances {
		out = e.Advance(context.Background(), rec, u)
	}
	return rec, out
}

// toReason walks a record up to the REASON_FOR_VISIT prompt.
var toGenderDone = []string{"hi", "1", "DOC001", "yes", "Asha Rao", "34", "f"}

func TestHappyPathRoundTrip(t *testing.T) {
	sink := &recordingSink{}
	e := newTestEngine(sink, nil)

	steps := append(append([]string{}, toGenderDone...),
		"persistent headache", "1", "2", "3", "25/03", "confirm")
	rec, out := drive(t, e, steps...)

	if rec.State != StateCompleted {
		t.Fatalf("expected COMPLETED, got %s", rec.State)
	}
	if len(sink.saved) != 1 {
		t.Fatalf("expected one sink save, got %d", len(sink.saved))
	}
	saved := sink.saved[0]
	if saved.Name != "Asha Rao" || saved.Age != 34 || saved.Gender != "Female" ||
		saved.ReasonForVisit != "persistent headache" || saved.DoctorCode != "DOC001" {
		t.Fatalf("sink record missing core fields: %+v", saved)
	}
	if saved.ConsultationDate != "25/03" {
		t.Fatalf("expected consultation date, got %q", saved.ConsultationDate)
	}
	if len(saved.TriageResponses) != 3 {
		t.Fatalf("expected 3 triage answers, got %d", len(saved.TriageResponses))
	}
	if saved.TriageResponses[0].Answer != "Option A" ||
		saved.TriageResponses[1].Answer != "Option B" ||
		saved.TriageResponses[2].Answer != "Option C" {
		t.Fatalf("index answers not resolved against options: %+v", saved.TriageResponses)
	}
	if !strings.Contains(out.Message, "Smith") {
		t.Fatalf("completion message should name the doctor: %q", out.Message)
	}
}

func TestCompletedStateIsAbsorbing(t *testing.T) {
	e := newTestEngine(nil, nil)
	steps := append(append([]string{}, toGenderDone...),
		"fever", "1", "1", "1", "25/03", "yes")
	rec, _ := drive(t, e, steps...)
	if rec.State != StateCompleted {
		t.Fatalf("setup failed, state %s", rec.State)
	}

	before := len(rec.History)
	first := e.Advance(context.Background(), rec, "hello again")
	second := e.Advance(context.Background(), rec, "anything else")

	if first.Message != second.Message {
		t.Fatalf("completed replies differ: %q vs %q", first.Message, second.Message)
	}
	if rec.State != StateCompleted {
		t.Fatalf("state changed after completion: %s", rec.State)
	}
	if len(rec.History) != before {
		t.Fatalf("completed record must not grow history")
	}
}

func TestAgeValidationBounds(t *testing.T) {
	e := newTestEngine(nil, nil)

	for _, valid := range []string{"1", "120", "34"} {
		rec, out := drive(t, e, "hi", "1", "DOC001", "yes", "Asha", valid)
		if rec.State != StatePatientGender {
			t.Errorf("age %q: expected PATIENT_GENDER, got %s", valid, rec.State)
		}
		want, _ := strconv.Atoi(valid)
		if rec.Patient.Age != want {
			t.Errorf("age %q stored as %d", valid, rec.Patient.Age)
		}
		_ = out
	}

	for _, invalid := range []string{"0", "121", "abc", "", "-5", "12.5"} {
		rec, out := drive(t, e, "hi", "1", "DOC001", "yes", "Asha", invalid)
		if rec.State != StatePatientAge {
			t.Errorf("age %q: expected re-prompt in PATIENT_AGE, got %s", invalid, rec.State)
		}
		if out.Message != i18n.Resolve(i18n.PromptAgeInvalid, i18n.LocaleEnglish) {
			t.Errorf("age %q: unexpected message %q", invalid, out.Message)
		}
	}
}

func TestGenderNormalization(t *testing.T) {
	e := newTestEngine(nil, nil)

	cases := map[string]string{
		"m": "Male", "M": "Male", "male": "Male", "MALE": "Male",
		"f": "Female", "female": "Female",
		"o": "Other", "Other": "Other",
	}
	for input, want := range cases {
		rec, _ := drive(t, e, "hi", "1", "DOC001", "yes", "Asha", "34", input)
		if rec.Patient.Gender != want {
			t.Errorf("gender %q normalized to %q, want %q", input, rec.Patient.Gender, want)
		}
		if rec.State != StateReasonForVisit {
			t.Errorf("gender %q: expected REASON_FOR_VISIT, got %s", input, rec.State)
		}
	}

	rec, _ := drive(t, e, "hi", "1", "DOC001", "yes", "Asha", "34", "xyz")
	if rec.State != StatePatientGender {
		t.Errorf("invalid gender should re-prompt, got %s", rec.State)
	}
	if rec.Patient.Gender != "" {
		t.Errorf("invalid gender must not be stored, got %q", rec.Patient.Gender)
	}
}

func TestBackFromAnsweringQuestions(t *testing.T) {
	e := newTestEngine(nil, nil)

	// Zero responses: back routes to REASON_FOR_VISIT.
	rec, out := drive(t, e, append(append([]string{}, toGenderDone...), "fever", "back")...)
	if rec.State != StateReasonForVisit {
		t.Fatalf("back with zero responses: expected REASON_FOR_VISIT, got %s", rec.State)
	}
	if out.Message != i18n.Resolve(i18n.PromptRestateReason, i18n.LocaleEnglish) {
		t.Fatalf("unexpected restate prompt: %q", out.Message)
	}

	// One response: back pops it and re-asks the same-indexed question.
	rec, out = drive(t, e, append(append([]string{}, toGenderDone...), "fever", "1", "back")...)
	if rec.State != StateAnsweringQuestions {
		t.Fatalf("back with one response: expected ANSWERING_QUESTIONS, got %s", rec.State)
	}
	if len(rec.TriageResponses) != 0 {
		t.Fatalf("back should pop exactly one response, left %d", len(rec.TriageResponses))
	}
	if !strings.Contains(out.Message, "Question 2?") {
		t.Fatalf("expected question at index 1 re-asked, got %q", out.Message)
	}
	if rec.CurrentQuestion != "Question 2?" {
		t.Fatalf("current question not restored: %q", rec.CurrentQuestion)
	}
}

func TestBackNavigationReusesCachedQuestion(t *testing.T) {
	gen := &scriptedGenerator{}
	e := newTestEngine(nil, gen)

	drive(t, e, append(append([]string{}, toGenderDone...), "fever", "1", "back", "2")...)
	// Questions 1 and 2 generated once each; back served from the plan cache.
	if gen.calls != 2 {
		t.Fatalf("expected 2 generator calls, got %d", gen.calls)
	}
}

func TestTriageLoopCapsAtThree(t *testing.T) {
	e := newTestEngine(nil, nil)
	rec, out := drive(t, e, append(append([]string{}, toGenderDone...), "fever", "1", "1", "1")...)

	if len(rec.TriageResponses) != 3 {
		t.Fatalf("expected exactly 3 responses, got %d", len(rec.TriageResponses))
	}
	if rec.State != StateConsultationDate {
		t.Fatalf("expected CONSULTATION_DATE after cap, got %s", rec.State)
	}
	if rec.CurrentQuestion != "" || rec.CurrentOptions != nil {
		t.Fatalf("working question state must be cleared on loop exit")
	}
	if out.Message != i18n.Resolve(i18n.PromptConsultationDate, i18n.LocaleEnglish) {
		t.Fatalf("unexpected date prompt: %q", out.Message)
	}
}

func TestAnswerResolution(t *testing.T) {
	opts := []string{"Less than a week", "1-2 weeks"}
	if got := resolveAnswer("2", opts); got != "1-2 weeks" {
		t.Errorf("numeric index: got %q", got)
	}
	if got := resolveAnswer("less than a week", opts); got != "Less than a week" {
		t.Errorf("case-insensitive match: got %q", got)
	}
	if got := resolveAnswer("about ten days", opts); got != "about ten days" {
		t.Errorf("free text: got %q", got)
	}
	if got := resolveAnswer("3", opts); got != "3" {
		t.Errorf("out-of-range index is free text: got %q", got)
	}
}

func TestConsultationDateValidation(t *testing.T) {
	e := newTestEngine(nil, nil)
	base := append(append([]string{}, toGenderDone...), "fever", "1", "1", "1")

	// Calendrically invalid but within the documented day/month ranges.
	rec, _ := drive(t, e, append(append([]string{}, base...), "31/02")...)
	if rec.State != StateAppointmentConfirm {
		t.Fatalf("31/02 must pass the range check, got state %s", rec.State)
	}
	if rec.Patient.ConsultationDate != "31/02" {
		t.Fatalf("date stored as %q", rec.Patient.ConsultationDate)
	}

	rec, _ = drive(t, e, append(append([]string{}, base...), "5-12")...)
	if rec.State != StateAppointmentConfirm {
		t.Fatalf("dash separator must be accepted, got state %s", rec.State)
	}

	for _, bad := range []string{"25/3/2026", "March 25", "25", ""} {
		rec, out := drive(t, e, append(append([]string{}, base...), bad)...)
		if rec.State != StateConsultationDate {
			t.Errorf("date %q: expected re-prompt, got %s", bad, rec.State)
		}
		if out.Message != i18n.Resolve(i18n.PromptDateFormatInvalid, i18n.LocaleEnglish) {
			t.Errorf("date %q: expected format error, got %q", bad, out.Message)
		}
	}

	for _, bad := range []string{"32/01", "0/5", "15/13", "15/0"} {
		rec, out := drive(t, e, append(append([]string{}, base...), bad)...)
		if rec.State != StateConsultationDate {
			t.Errorf("date %q: expected re-prompt, got %s", bad, rec.State)
		}
		if out.Message != i18n.Resolve(i18n.PromptDateRangeInvalid, i18n.LocaleEnglish) {
			t.Errorf("date %q: expected range error, got %q", bad, out.Message)
		}
	}
}

func TestAppointmentSummaryEchoesAllFields(t *testing.T) {
	e := newTestEngine(nil, nil)
	steps := append(append([]string{}, toGenderDone...), "fever", "1", "1", "1", "25/03")
	_, out := drive(t, e, steps...)

	for _, want := range []string{"Asha Rao", "34", "Female", "Dr. Smith", "25/03"} {
		if !strings.Contains(out.Message, want) {
			t.Errorf("summary missing %q: %q", want, out.Message)
		}
	}
}

func TestBackFromConsultationDatePopsTriageAnswer(t *testing.T) {
	e := newTestEngine(nil, nil)
	steps := append(append([]string{}, toGenderDone...), "fever", "1", "1", "1", "back")
	rec, out := drive(t, e, steps...)

	if rec.State != StateAnsweringQuestions {
		t.Fatalf("expected ANSWERING_QUESTIONS, got %s", rec.State)
	}
	if len(rec.TriageResponses) != 2 {
		t.Fatalf("expected 2 responses after pop, got %d", len(rec.TriageResponses))
	}
	if !strings.Contains(out.Message, "Question 3?") {
		t.Fatalf("expected third question re-asked, got %q", out.Message)
	}
}

func TestBackFromAppointmentConfirmation(t *testing.T) {
	e := newTestEngine(nil, nil)
	steps := append(append([]string{}, toGenderDone...), "fever", "1", "1", "1", "25/03", "back")
	rec, out := drive(t, e, steps...)

	if rec.State != StateConsultationDate {
		t.Fatalf("expected CONSULTATION_DATE, got %s", rec.State)
	}
	if out.Message != i18n.Resolve(i18n.PromptConsultationDate, i18n.LocaleEnglish) {
		t.Fatalf("unexpected prompt: %q", out.Message)
	}
}

func TestConfirmationRetriesOnUnrecognizedInput(t *testing.T) {
	sink := &recordingSink{}
	e := newTestEngine(sink, nil)
	steps := append(append([]string{}, toGenderDone...), "fever", "1", "1", "1", "25/03", "maybe")
	rec, out := drive(t, e, steps...)

	if rec.State != StateAppointmentConfirm {
		t.Fatalf("expected re-prompt in APPOINTMENT_CONFIRMATION, got %s", rec.State)
	}
	if len(sink.saved) != 0 {
		t.Fatalf("sink must not be invoked before confirmation")
	}
	if out.Message != i18n.Resolve(i18n.PromptConfirmRetry, i18n.LocaleEnglish) {
		t.Fatalf("unexpected retry prompt: %q", out.Message)
	}
}

func TestGeneratorFailureDegradesToCompletion(t *testing.T) {
	sink := &recordingSink{}
	e := newTestEngine(sink, &scriptedGenerator{err: errors.New("provider down")})

	rec, out := drive(t, e, append(append([]string{}, toGenderDone...), "fever")...)

	if rec.State != StateCompleted {
		t.Fatalf("expected degraded COMPLETED, got %s", rec.State)
	}
	if len(sink.saved) != 1 {
		t.Fatalf("expected partial record saved, got %d saves", len(sink.saved))
	}
	saved := sink.saved[0]
	if saved.Name != "Asha Rao" || saved.ReasonForVisit != "fever" {
		t.Fatalf("partial record missing collected fields: %+v", saved)
	}
	if len(saved.TriageResponses) != 0 {
		t.Fatalf("expected no triage answers in degraded save")
	}
	if strings.Contains(strings.ToLower(out.Message), "error") {
		t.Fatalf("degradation must not surface an error to the user: %q", out.Message)
	}
}

func TestSinkFailureStillCompletes(t *testing.T) {
	e := newTestEngine(&recordingSink{err: errors.New("backend down")}, nil)
	steps := append(append([]string{}, toGenderDone...), "fever", "1", "1", "1", "25/03", "confirm")
	rec, out := drive(t, e, steps...)

	if rec.State != StateCompleted {
		t.Fatalf("sink failure must still complete, got %s", rec.State)
	}
	if strings.Contains(strings.ToLower(out.Message), "error") {
		t.Fatalf("sink failure must not surface an error: %q", out.Message)
	}
}

func TestDoctorLookupMissVersusTransportError(t *testing.T) {
	e := newTestEngine(nil, nil)
	rec, out := drive(t, e, "hi", "1", "DOC999")
	if rec.State != StateDoctorCode {
		t.Fatalf("miss should stay in DOCTOR_CODE, got %s", rec.State)
	}
	missMsg := out.Message

	broken := NewEngine(failingDirectory{}, &scriptedGenerator{}, &recordingSink{}, nil, logging.Default(), 3)
	rec, out = drive(t, broken, "hi", "1", "DOC001")
	if rec.State != StateDoctorCode {
		t.Fatalf("transport error should stay in DOCTOR_CODE, got %s", rec.State)
	}
	if out.Message == missMsg {
		t.Fatalf("miss and transport error must use distinct messages")
	}
}

func TestConfirmDoctorPaths(t *testing.T) {
	e := newTestEngine(nil, nil)

	rec, _ := drive(t, e, "hi", "1", "DOC001", "no")
	if rec.State != StateDoctorCode {
		t.Fatalf("negative should return to DOCTOR_CODE, got %s", rec.State)
	}
	if rec.Patient.DoctorCode != "" || rec.Patient.DoctorName != "" {
		t.Fatalf("negative must clear the pending doctor")
	}

	rec, out := drive(t, e, "hi", "1", "DOC001", "whatever")
	if rec.State != StateConfirmDoctor {
		t.Fatalf("unrecognized input should re-prompt, got %s", rec.State)
	}
	if !strings.Contains(out.Message, "Smith") {
		t.Fatalf("re-prompt must restate the doctor name: %q", out.Message)
	}

	rec, _ = drive(t, e, "hi", "1", "DOC001", "back")
	if rec.State != StateDoctorCode {
		t.Fatalf("back should return to DOCTOR_CODE, got %s", rec.State)
	}
	if rec.Patient.DoctorName != "Smith" {
		t.Fatalf("back must not erase the doctor name")
	}
}

func TestLanguageSelection(t *testing.T) {
	e := newTestEngine(nil, nil)

	rec, _ := drive(t, e, "hi", "हिंदी")
	if rec.Language != i18n.LocaleHindi {
		t.Fatalf("native-script selection failed, got %q", rec.Language)
	}
	if rec.State != StateDoctorCode {
		t.Fatalf("expected DOCTOR_CODE after selection, got %s", rec.State)
	}

	rec, out := drive(t, e, "hi", "klingon")
	if rec.State != StateLanguageSelection {
		t.Fatalf("unrecognized language should soft-retry, got %s", rec.State)
	}
	if !strings.Contains(out.Message, "Welcome") {
		t.Fatalf("soft retry should re-show the menu: %q", out.Message)
	}
}

func TestLocalizedPromptsAfterSelection(t *testing.T) {
	e := newTestEngine(nil, nil)
	_, out := drive(t, e, "hi", "2")
	if out.Message != i18n.Resolve(i18n.PromptDoctorCode, i18n.LocaleHindi) {
		t.Fatalf("expected Hindi doctor-code prompt, got %q", out.Message)
	}
}

func TestBackThroughDemographics(t *testing.T) {
	e := newTestEngine(nil, nil)

	rec, _ := drive(t, e, "hi", "1", "DOC001", "yes", "back")
	if rec.State != StateConfirmDoctor {
		t.Fatalf("name back: expected CONFIRM_DOCTOR, got %s", rec.State)
	}

	rec, _ = drive(t, e, "hi", "1", "DOC001", "yes", "Asha", "back")
	if rec.State != StatePatientName {
		t.Fatalf("age back: expected PATIENT_NAME, got %s", rec.State)
	}

	rec, _ = drive(t, e, "hi", "1", "DOC001", "yes", "Asha", "34", "back")
	if rec.State != StatePatientAge {
		t.Fatalf("gender back: expected PATIENT_AGE, got %s", rec.State)
	}
}

func TestUnknownStateResetsPrompt(t *testing.T) {
	e := newTestEngine(nil, nil)
	rec := NewRecord("15551234567")
	rec.State = State("WEIRD")
	rec.Patient.Name = "Asha"

	out := e.Advance(context.Background(), rec, "hello")
	if out.Message != i18n.Resolve(i18n.PromptLanguageSelect, i18n.LocaleEnglish) {
		t.Fatalf("expected opening prompt, got %q", out.Message)
	}
	if rec.State != StateLanguageSelection {
		t.Fatalf("expected reset to LANGUAGE_SELECTION, got %s", rec.State)
	}
	if rec.Patient.Name != "Asha" {
		t.Fatalf("reset must not clear collected data")
	}
}

func TestEmptyUtteranceNeverCrashes(t *testing.T) {
	e := newTestEngine(nil, nil)
	rec := NewRecord("15551234567")

	// Walk the happy path sending an empty utterance at every state first.
	for _, u := range []string{"", "1", "", "DOC001", "", "yes", "", "Asha", "", "34", "", "f", "", "fever", "", "1", "1", "1", "", "25/03", "", "confirm"} {
		e.Advance(context.Background(), rec, u)
	}
	if rec.State != StateCompleted {
		t.Fatalf("expected COMPLETED, got %s", rec.State)
	}
}

func TestHistoryRecordsBothSpeakers(t *testing.T) {
	e := newTestEngine(nil, nil)
	rec, _ := drive(t, e, "hi", "1")

	if len(rec.History) != 4 {
		t.Fatalf("expected 4 history turns, got %d", len(rec.History))
	}
	if rec.History[0].Speaker != "user" || rec.History[1].Speaker != "bot" {
		t.Fatalf("history speaker order wrong: %+v", rec.History[:2])
	}
}
