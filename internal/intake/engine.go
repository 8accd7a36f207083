package intake

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/oppd-health/whatsapp-intake/internal/directory"
	"github.com/oppd-health/whatsapp-intake/internal/i18n"
	"github.com/oppd-health/whatsapp-intake/internal/observability/metrics"
	"github.com/oppd-health/whatsapp-intake/internal/scheduling"
	"github.com/oppd-health/whatsapp-intake/internal/triage"
	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

// Outbound is the engine's reply for one turn. QuickReplies mirror the
// numbered options already present in Message; rendering them as buttons is
// a transport concern.
type Outbound struct {
	Message      string
	QuickReplies []string
	State        State
}

// Engine is the dialogue state machine. Advance is the only entry point;
// handlers never perform blocking I/O except the clinician lookup and the
// question generator call.
type Engine struct {
	directory   directory.Lookup
	generator   triage.Generator
	sink        scheduling.Sink
	metrics     *metrics.IntakeMetrics
	logger      *logging.Logger
	questionCap int
}

func NewEngine(dir directory.Lookup, gen triage.Generator, sink scheduling.Sink, m *metrics.IntakeMetrics, logger *logging.Logger, questionCap int) *Engine {
	if questionCap <= 0 {
		questionCap = 3
	}
	return &Engine{
		directory:   dir,
		generator:   gen,
		sink:        sink,
		metrics:     m,
		logger:      logger,
		questionCap: questionCap,
	}
}

// Advance routes the utterance to the handler for the record's current
// state, mutates the record, and returns the next outbound message. It never
// returns an error: user mistakes re-prompt in place and collaborator
// failures degrade per the completion rules.
func (e *Engine) Advance(ctx context.Context, rec *Record, utterance string) Outbound {
	from := rec.State

	// Terminal state short-circuits before any history append so repeated
	// pings cannot grow a completed record.
	if rec.State == StateCompleted {
		return Outbound{
			Message: i18n.Resolve(i18n.PromptAlreadyScheduled, rec.Locale()),
			State:   StateCompleted,
		}
	}

	out := e.dispatch(ctx, rec, utterance)
	if out.State == "" {
		// A handler left the next state unset. Treat like an unknown state.
		e.logger.Error("handler returned empty state", "identity", rec.Identity, "state", string(from))
		out.State = from
	}

	rec.appendHistory("user", utterance)
	rec.appendHistory("bot", out.Message)
	rec.State = out.State

	if from != out.State {
		e.metrics.ObserveTransition(string(from), string(out.State))
	}
	return out
}

func (e *Engine) dispatch(ctx context.Context, rec *Record, utterance string) Outbound {
	switch rec.State {
	case StateInitial:
		return e.handleInitial(rec)
	case StateLanguageSelection:
		return e.handleLanguageSelection(rec, utterance)
	case StateDoctorCode:
		return e.handleDoctorCode(ctx, rec, utterance)
	case StateConfirmDoctor:
		return e.handleConfirmDoctor(rec, utterance)
	case StatePatientName:
		return e.handlePatientName(rec, utterance)
	case StatePatientAge:
		return e.handlePatientAge(rec, utterance)
	case StatePatientGender:
		return e.handlePatientGender(rec, utterance)
	case StateReasonForVisit:
		return e.handleReasonForVisit(ctx, rec, utterance)
	case StateAnsweringQuestions:
		return e.handleAnsweringQuestions(ctx, rec, utterance)
	case StateConsultationDate:
		return e.handleConsultationDate(rec, utterance)
	case StateAppointmentConfirm:
		return e.handleAppointmentConfirmation(ctx, rec, utterance)
	default:
		// Unknown state on a loaded record. Reset to the opening prompt
		// without clearing anything the user already entered.
		e.logger.Warn("unknown conversation state, resetting prompt",
			"identity", rec.Identity, "state", string(rec.State))
		return e.handleInitial(rec)
	}
}

func (e *Engine) handleInitial(rec *Record) Outbound {
	return Outbound{
		Message:      i18n.Resolve(i18n.PromptLanguageSelect, rec.Locale()),
		QuickReplies: languageChoices(),
		State:        StateLanguageSelection,
	}
}

func (e *Engine) handleLanguageSelection(rec *Record, utterance string) Outbound {
	loc, ok := i18n.Match(utterance)
	if !ok {
		// Soft retry: show the menu again.
		return Outbound{
			Message:      i18n.Resolve(i18n.PromptLanguageSelect, rec.Locale()),
			QuickReplies: languageChoices(),
			State:        StateLanguageSelection,
		}
	}
	rec.Language = loc
	return Outbound{
		Message: i18n.Resolve(i18n.PromptDoctorCode, loc),
		State:   StateDoctorCode,
	}
}

func (e *Engine) handleDoctorCode(ctx context.Context, rec *Record, utterance string) Outbound {
	code := strings.ToUpper(strings.TrimSpace(utterance))
	if code == "" {
		return Outbound{
			Message: i18n.Resolve(i18n.PromptDoctorCode, rec.Locale()),
			State:   StateDoctorCode,
		}
	}

	doc, err := e.directory.LookupByCode(ctx, code)
	if errors.Is(err, directory.ErrNotFound) {
		return Outbound{
			Message: i18n.Resolve(i18n.PromptDoctorNotFound, rec.Locale()),
			State:   StateDoctorCode,
		}
	}
	if err != nil {
		e.metrics.ObserveCollaboratorFailure("directory")
		e.logger.Error("doctor lookup failed", "identity", rec.Identity, "code", code, "error", err)
		return Outbound{
			Message: i18n.Resolve(i18n.PromptDoctorLookupError, rec.Locale()),
			State:   StateDoctorCode,
		}
	}

	rec.Patient.DoctorCode = doc.Code
	rec.Patient.DoctorName = doc.Name
	return Outbound{
		Message:      i18n.Resolve(i18n.PromptConfirmDoctor, rec.Locale(), doc.Name),
		QuickReplies: []string{"Yes", "No"},
		State:        StateConfirmDoctor,
	}
}

func (e *Engine) handleConfirmDoctor(rec *Record, utterance string) Outbound {
	loc := rec.Locale()
	switch {
	case i18n.IsBack(utterance):
		return Outbound{
			Message: i18n.Resolve(i18n.PromptDoctorCode, loc),
			State:   StateDoctorCode,
		}
	case i18n.IsAffirmative(loc, utterance):
		return Outbound{
			Message: i18n.Resolve(i18n.PromptPatientName, loc),
			State:   StatePatientName,
		}
	case i18n.IsNegative(loc, utterance):
		rec.Patient.DoctorCode = ""
		rec.Patient.DoctorName = ""
		return Outbound{
			Message: i18n.Resolve(i18n.PromptDoctorRetry, loc),
			State:   StateDoctorCode,
		}
	default:
		return Outbound{
			Message:      i18n.Resolve(i18n.PromptConfirmDoctor, loc, rec.Patient.DoctorName),
			QuickReplies: []string{"Yes", "No"},
			State:        StateConfirmDoctor,
		}
	}
}

func (e *Engine) handlePatientName(rec *Record, utterance string) Outbound {
	loc := rec.Locale()
	if i18n.IsBack(utterance) {
		return Outbound{
			Message:      i18n.Resolve(i18n.PromptConfirmDoctor, loc, rec.Patient.DoctorName),
			QuickReplies: []string{"Yes", "No"},
			State:        StateConfirmDoctor,
		}
	}
	name := strings.TrimSpace(utterance)
	if name == "" {
		return Outbound{
			Message: i18n.Resolve(i18n.PromptPatientName, loc),
			State:   StatePatientName,
		}
	}
	rec.Patient.Name = name
	return Outbound{
		Message: i18n.Resolve(i18n.PromptPatientAge, loc),
		State:   StatePatientAge,
	}
}

func (e *Engine) handlePatientAge(rec *Record, utterance string) Outbound {
	loc := rec.Locale()
	if i18n.IsBack(utterance) {
		return Outbound{
			Message: i18n.Resolve(i18n.PromptPatientName, loc),
			State:   StatePatientName,
		}
	}
	age, err := strconv.Atoi(strings.TrimSpace(utterance))
	if err != nil || age < 1 || age > 120 {
		return Outbound{
			Message: i18n.Resolve(i18n.PromptAgeInvalid, loc),
			State:   StatePatientAge,
		}
	}
	rec.Patient.Age = age
	return Outbound{
		Message:      i18n.Resolve(i18n.PromptPatientGender, loc),
		QuickReplies: []string{"Male", "Female", "Other"},
		State:        StatePatientGender,
	}
}

func normalizeGender(input string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "male", "m":
		return "Male", true
	case "female", "f":
		return "Female", true
	case "other", "o":
		return "Other", true
	}
	return "", false
}

func (e *Engine) handlePatientGender(rec *Record, utterance string) Outbound {
	loc := rec.Locale()
	if i18n.IsBack(utterance) {
		return Outbound{
			Message: i18n.Resolve(i18n.PromptPatientAge, loc),
			State:   StatePatientAge,
		}
	}
	gender, ok := normalizeGender(utterance)
	if !ok {
		return Outbound{
			Message:      i18n.Resolve(i18n.PromptGenderInvalid, loc),
			QuickReplies: []string{"Male", "Female", "Other"},
			State:        StatePatientGender,
		}
	}
	rec.Patient.Gender = gender
	return Outbound{
		Message: i18n.Resolve(i18n.PromptReasonForVisit, loc),
		State:   StateReasonForVisit,
	}
}

func (e *Engine) handleReasonForVisit(ctx context.Context, rec *Record, utterance string) Outbound {
	loc := rec.Locale()
	reason := strings.TrimSpace(utterance)
	if reason == "" {
		return Outbound{
			Message: i18n.Resolve(i18n.PromptReasonForVisit, loc),
			State:   StateReasonForVisit,
		}
	}

	rec.Patient.ReasonForVisit = utterance
	rec.TriageResponses = []QA{}
	rec.QuestionPlan = nil

	q, err := e.questionAt(ctx, rec, 0)
	if err != nil {
		return e.completeDegraded(ctx, rec, "generator", err)
	}
	rec.CurrentQuestion = q.Text
	rec.CurrentOptions = append([]string(nil), q.Options...)
	return Outbound{
		Message:      formatQuestion(loc, q),
		QuickReplies: q.Options,
		State:        StateAnsweringQuestions,
	}
}

func (e *Engine) handleAnsweringQuestions(ctx context.Context, rec *Record, utterance string) Outbound {
	loc := rec.Locale()

	if i18n.IsBack(utterance) {
		if len(rec.TriageResponses) == 0 {
			rec.CurrentQuestion = ""
			rec.CurrentOptions = nil
			return Outbound{
				Message: i18n.Resolve(i18n.PromptRestateReason, loc),
				State:   StateReasonForVisit,
			}
		}
		// Pop the newest answer and re-ask the question at that index.
		rec.TriageResponses = rec.TriageResponses[:len(rec.TriageResponses)-1]
		q, err := e.questionAt(ctx, rec, len(rec.TriageResponses))
		if err != nil {
			return e.completeDegraded(ctx, rec, "generator", err)
		}
		rec.CurrentQuestion = q.Text
		rec.CurrentOptions = append([]string(nil), q.Options...)
		return Outbound{
			Message:      i18n.Resolve(i18n.PromptAnswerAgain, loc) + "\n\n" + formatQuestion(loc, q),
			QuickReplies: q.Options,
			State:        StateAnsweringQuestions,
		}
	}

	answer := resolveAnswer(utterance, rec.CurrentOptions)
	rec.TriageResponses = append(rec.TriageResponses, QA{
		Question: rec.CurrentQuestion,
		Answer:   answer,
	})

	if len(rec.TriageResponses) >= e.questionCap {
		rec.CurrentQuestion = ""
		rec.CurrentOptions = nil
		return Outbound{
			Message: i18n.Resolve(i18n.PromptConsultationDate, loc),
			State:   StateConsultationDate,
		}
	}

	q, err := e.questionAt(ctx, rec, len(rec.TriageResponses))
	if err != nil {
		return e.completeDegraded(ctx, rec, "generator", err)
	}
	rec.CurrentQuestion = q.Text
	rec.CurrentOptions = append([]string(nil), q.Options...)
	return Outbound{
		Message:      formatQuestion(loc, q),
		QuickReplies: q.Options,
		State:        StateAnsweringQuestions,
	}
}

// datePattern accepts 1-2 digit day and month separated by / or -. Range
// checks are day 1-31 and month 1-12 only; "31/02" passes. Tightening this
// would reject dates the scheduling backend is known to renegotiate anyway.
var datePattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})$`)

func (e *Engine) handleConsultationDate(rec *Record, utterance string) Outbound {
	loc := rec.Locale()

	if i18n.IsBack(utterance) {
		if len(rec.TriageResponses) == 0 {
			return Outbound{
				Message: i18n.Resolve(i18n.PromptRestateReason, loc),
				State:   StateReasonForVisit,
			}
		}
		rec.TriageResponses = rec.TriageResponses[:len(rec.TriageResponses)-1]
		idx := len(rec.TriageResponses)
		if idx < len(rec.QuestionPlan) {
			q := rec.QuestionPlan[idx]
			rec.CurrentQuestion = q.Text
			rec.CurrentOptions = append([]string(nil), q.Options...)
			return Outbound{
				Message:      i18n.Resolve(i18n.PromptAnswerAgain, loc) + "\n\n" + formatQuestion(loc, q),
				QuickReplies: q.Options,
				State:        StateAnsweringQuestions,
			}
		}
		return Outbound{
			Message: i18n.Resolve(i18n.PromptAnswerAgain, loc),
			State:   StateAnsweringQuestions,
		}
	}

	input := strings.TrimSpace(utterance)
	m := datePattern.FindStringSubmatch(input)
	if m == nil {
		return Outbound{
			Message: i18n.Resolve(i18n.PromptDateFormatInvalid, loc),
			State:   StateConsultationDate,
		}
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return Outbound{
			Message: i18n.Resolve(i18n.PromptDateRangeInvalid, loc),
			State:   StateConsultationDate,
		}
	}

	rec.Patient.ConsultationDate = input
	return Outbound{
		Message: i18n.Resolve(i18n.PromptAppointmentSum, loc,
			rec.Patient.Name,
			strconv.Itoa(rec.Patient.Age),
			rec.Patient.Gender,
			rec.Patient.DoctorName,
			rec.Patient.ConsultationDate,
		),
		QuickReplies: []string{"Confirm", "Back"},
		State:        StateAppointmentConfirm,
	}
}

// confirmTokens is the appointment confirmation keyword set. Locale-native
// yes tokens are accepted on top of it.
var confirmTokens = map[string]struct{}{
	"yes": {}, "confirm": {}, "y": {}, "ok": {}, "sure": {}, "confirmed": {},
}

func (e *Engine) handleAppointmentConfirmation(ctx context.Context, rec *Record, utterance string) Outbound {
	loc := rec.Locale()

	if i18n.IsBack(utterance) {
		return Outbound{
			Message: i18n.Resolve(i18n.PromptConsultationDate, loc),
			State:   StateConsultationDate,
		}
	}

	token := strings.ToLower(strings.TrimSpace(utterance))
	_, confirmed := confirmTokens[token]
	if !confirmed && !i18n.IsAffirmative(loc, utterance) {
		return Outbound{
			Message:      i18n.Resolve(i18n.PromptConfirmRetry, loc),
			QuickReplies: []string{"Confirm", "Back"},
			State:        StateAppointmentConfirm,
		}
	}

	if _, err := e.sink.Save(ctx, sinkRecord(rec)); err != nil {
		e.metrics.ObserveCollaboratorFailure("sink")
		e.metrics.ObserveCompletion("degraded")
		e.logger.Error("record sink save failed, completing degraded",
			"identity", rec.Identity, "error", err)
		return Outbound{
			Message: i18n.Resolve(i18n.PromptScheduledPartial, loc),
			State:   StateCompleted,
		}
	}

	e.metrics.ObserveCompletion("confirmed")
	return Outbound{
		Message: i18n.Resolve(i18n.PromptScheduled, loc,
			rec.Patient.DoctorName, rec.Patient.ConsultationDate),
		State: StateCompleted,
	}
}

// completeDegraded finishes the conversation early with whatever has been
// collected. Generator failures land here; the user sees a normal completion
// message, never an error.
func (e *Engine) completeDegraded(ctx context.Context, rec *Record, collaborator string, cause error) Outbound {
	e.metrics.ObserveCollaboratorFailure(collaborator)
	e.logger.Error("collaborator failed, completing with partial data",
		"identity", rec.Identity, "collaborator", collaborator, "error", cause)

	rec.CurrentQuestion = ""
	rec.CurrentOptions = nil

	if _, err := e.sink.Save(ctx, sinkRecord(rec)); err != nil {
		e.metrics.ObserveCollaboratorFailure("sink")
		e.logger.Error("record sink save failed during degraded completion",
			"identity", rec.Identity, "error", err)
	}

	e.metrics.ObserveCompletion("degraded")
	return Outbound{
		Message: i18n.Resolve(i18n.PromptScheduledPartial, rec.Locale()),
		State:   StateCompleted,
	}
}

// questionAt returns the triage question for a 0-based index, serving from
// the record's cached plan when possible. Caching makes back-navigation
// re-ask the identical question even if the generator is not deterministic.
func (e *Engine) questionAt(ctx context.Context, rec *Record, index int) (triage.Question, error) {
	if index < len(rec.QuestionPlan) {
		return rec.QuestionPlan[index], nil
	}

	pc := triage.PatientContext{
		Name:           rec.Patient.Name,
		Age:            rec.Patient.Age,
		Gender:         rec.Patient.Gender,
		ReasonForVisit: rec.Patient.ReasonForVisit,
		Language:       string(rec.Locale()),
	}
	q, err := e.generator.GetQuestion(ctx, pc, index)
	if err != nil {
		return triage.Question{}, fmt.Errorf("intake: question %d: %w", index, err)
	}
	if len(q.Options) == 0 {
		return triage.Question{}, fmt.Errorf("intake: question %d has no options", index)
	}
	rec.QuestionPlan = append(rec.QuestionPlan, q)
	return q, nil
}

// resolveAnswer maps an utterance to an option: 1-based numeric index, then
// case-insensitive exact match, then the raw utterance as free text.
func resolveAnswer(utterance string, options []string) string {
	input := strings.TrimSpace(utterance)
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	for _, opt := range options {
		if strings.EqualFold(input, opt) {
			return opt
		}
	}
	return utterance
}

func formatQuestion(loc i18n.Locale, q triage.Question) string {
	var b strings.Builder
	b.WriteString(q.Text)
	b.WriteString("\n\n")
	b.WriteString(i18n.Resolve(i18n.PromptChooseOption, loc))
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "\n%d. %s", i+1, opt)
	}
	return b.String()
}

func languageChoices() []string {
	locales := i18n.Supported()
	out := make([]string, len(locales))
	for i, loc := range locales {
		out[i] = i18n.NativeName(loc)
	}
	return out
}

func sinkRecord(rec *Record) scheduling.Record {
	answers := make([]scheduling.QA, len(rec.TriageResponses))
	for i, qa := range rec.TriageResponses {
		answers[i] = scheduling.QA{Question: qa.Question, Answer: qa.Answer}
	}
	return scheduling.Record{
		Identity:         rec.Identity,
		Name:             rec.Patient.Name,
		Age:              rec.Patient.Age,
		Gender:           rec.Patient.Gender,
		ReasonForVisit:   rec.Patient.ReasonForVisit,
		DoctorCode:       rec.Patient.DoctorCode,
		DoctorName:       rec.Patient.DoctorName,
		ConsultationDate: rec.Patient.ConsultationDate,
		TriageResponses:  answers,
	}
}
