package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"coffee-assistant/internal/calculator"
	calculatorUC "coffee-assistant/internal/calculator/usecase"
	"coffee-assistant/internal/chat"
	"coffee-assistant/internal/conversation"
	"coffee-assistant/internal/conversation/repository/memory"
	"coffee-assistant/internal/outlet"
	outletSqlite "coffee-assistant/internal/outlet/repository/sqlite"
	outletUC "coffee-assistant/internal/outlet/usecase"
	"coffee-assistant/internal/planner"
	"coffee-assistant/pkg/llmprovider"
	"coffee-assistant/pkg/log"
	pkgSqlite "coffee-assistant/pkg/sqlite"
)

// Mock implementations

type mockCalculator struct {
	result float64
	err    error
	block  bool
	panics bool
}

func (m *mockCalculator) Calculate(ctx context.Context, num1 float64, operator string, num2 float64) (float64, error) {
	if m.panics {
		panic("calculator exploded")
	}
	if m.block {
		<-ctx.Done()
		return 0, ctx.Err()
	}
	return m.result, m.err
}

type mockOutlet struct {
	reply string
	err   error
}

func (m *mockOutlet) Lookup(ctx context.Context, location, infoType string) (string, error) {
	return m.reply, m.err
}

func (m *mockOutlet) Query(ctx context.Context, query string) (outlet.QueryOutput, error) {
	return outlet.QueryOutput{}, nil
}

func (m *mockOutlet) Seed(ctx context.Context) error { return nil }

type mockLLM struct {
	reply   string
	err     error
	lastReq *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Content: llmprovider.TextMessage(llmprovider.RoleAssistant, m.reply)}, nil
}

type failingRepo struct{}

func (failingRepo) GetOrCreate(ctx context.Context, sessionID string) (conversation.Transcript, error) {
	return conversation.Transcript{}, errors.New("store down")
}

func (failingRepo) Get(ctx context.Context, sessionID string) (conversation.Transcript, error) {
	return conversation.Transcript{}, errors.New("store down")
}

func (failingRepo) Append(ctx context.Context, sessionID string, turns ...conversation.Turn) error {
	return errors.New("store down")
}

// Helpers

func newOutletUseCase(t *testing.T) outlet.UseCase {
	t.Helper()

	db, err := pkgSqlite.Open(context.Background(), filepath.Join(t.TempDir(), "outlets.db"), pkgSqlite.DefaultConfig())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	uc := outletUC.New(log.NewNop(), outletSqlite.New(db, log.NewNop()), nil)
	if err := uc.Seed(context.Background()); err != nil {
		t.Fatalf("seed outlets: %v", err)
	}
	return uc
}

func newTestUseCase(t *testing.T, deps Deps, opts Options) *implUseCase {
	t.Helper()

	if deps.Planner == nil {
		deps.Planner = planner.New()
	}
	if deps.Repo == nil {
		deps.Repo = memory.New(memory.Options{})
	}
	if deps.Calculator == nil {
		deps.Calculator = calculatorUC.New(log.NewNop())
	}
	if deps.Outlet == nil {
		deps.Outlet = newOutletUseCase(t)
	}
	return New(log.NewNop(), deps, opts)
}

func transcriptOf(t *testing.T, uc *implUseCase, sessionID string) conversation.Transcript {
	t.Helper()
	tr, err := uc.History(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("History(%q) error = %v", sessionID, err)
	}
	return tr
}

// Tests

func TestHandleTurn_Scenarios(t *testing.T) {
	uc := newTestUseCase(t, Deps{LLM: &mockLLM{reply: "Hello!"}}, Options{CarryOverSlots: true})

	tests := []struct {
		name       string
		text       string
		wantAction planner.Action
		contains   []string
	}{
		{
			name:       "city-level outlet question asks for a specific outlet",
			text:       "Is there an outlet in Petaling Jaya?",
			wantAction: planner.ActionAskForInfo,
			contains:   []string{"Petaling Jaya", "Which specific outlet"},
		},
		{
			name:       "word operator calculation",
			text:       "What is 10 plus 5?",
			wantAction: planner.ActionUseCalculator,
			contains:   []string{"15"},
		},
		{
			name:       "division by zero is relayed",
			text:       "What is 10 / 0?",
			wantAction: planner.ActionUseCalculator,
			contains:   []string{"Calculation Error", "Division by zero"},
		},
		{
			name:       "calculation without numbers asks for them",
			text:       "I need a calculation.",
			wantAction: planner.ActionAskForInfo,
			contains:   []string{"What numbers and operation"},
		},
		{
			name:       "specific outlet closing time",
			text:       "Tell me about the Damansara outlet's closing time.",
			wantAction: planner.ActionUseOutletLookup,
			contains:   []string{"Damansara", "11:00 PM"},
		},
		{
			name:       "general chat goes to the model",
			text:       "Hi there!",
			wantAction: planner.ActionRespondDirectly,
			contains:   []string{"Hello!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionID := "scenario-" + tt.name
			out := uc.Turn(context.Background(), chat.TurnInput{Message: tt.text, SessionID: sessionID})

			if out.Plan.Action != tt.wantAction {
				t.Errorf("action = %s, want %s", out.Plan.Action, tt.wantAction)
			}
			for _, s := range tt.contains {
				if !strings.Contains(out.Reply, s) {
					t.Errorf("reply %q does not contain %q", out.Reply, s)
				}
			}
			if got := len(transcriptOf(t, uc, sessionID).Turns); got != 2 {
				t.Errorf("transcript length = %d, want 2", got)
			}
		})
	}
}

func TestHandleTurn_CalculationFormatting(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, Options{})

	tests := map[string]string{
		"10 + 5":               "10 + 5 = 15",
		"7 / 2":                "7 / 2 = 3.5",
		"What is 3 times 4?":   "3 * 4 = 12",
		"2.5 * 4":              "2.5 * 4 = 10",
		"what is 100 - 250":    "100 - 250 = -150",
		"12 divided by 4 pls":  "12 / 4 = 3",
		"What's 6 multiply 7?": "6 * 7 = 42",
	}

	for text, want := range tests {
		if got := uc.HandleTurn(context.Background(), text, "fmt"); got != want {
			t.Errorf("HandleTurn(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestHandleTurn_TranscriptIsAppendOnly(t *testing.T) {
	uc := newTestUseCase(t, Deps{LLM: &mockLLM{reply: "ok"}}, Options{})
	inputs := []string{"Hi", "What is 1 + 1?", "SS15 hours", "I need a calculation.", "Tell me a joke"}

	for _, text := range inputs {
		uc.HandleTurn(context.Background(), text, "append")
	}

	tr := transcriptOf(t, uc, "append")
	if len(tr.Turns) != 2*len(inputs) {
		t.Fatalf("transcript length = %d, want %d", len(tr.Turns), 2*len(inputs))
	}
	for i, turn := range tr.Turns {
		wantRole := conversation.RoleUser
		if i%2 == 1 {
			wantRole = conversation.RoleAssistant
		}
		if turn.Role != wantRole {
			t.Errorf("turn %d role = %s, want %s", i, turn.Role, wantRole)
		}
		if i%2 == 0 && turn.Content != inputs[i/2] {
			t.Errorf("turn %d content = %q, want %q", i, turn.Content, inputs[i/2])
		}
	}
}

func TestHandleTurn_SessionIsolation(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, Options{})

	uc.HandleTurn(context.Background(), "What is 10 plus 5?", "session-a")
	uc.HandleTurn(context.Background(), "What is 10 plus 5?", "session-b")

	a := transcriptOf(t, uc, "session-a")
	b := transcriptOf(t, uc, "session-b")
	if len(a.Turns) != 2 || len(b.Turns) != 2 {
		t.Fatalf("transcript lengths = %d, %d, want 2, 2", len(a.Turns), len(b.Turns))
	}

	uc.HandleTurn(context.Background(), "SS2 opening", "session-a")
	if got := len(transcriptOf(t, uc, "session-b").Turns); got != 2 {
		t.Errorf("session-b grew to %d turns after writing session-a", got)
	}
}

func TestHandleTurn_SlotCarryOver(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		uc := newTestUseCase(t, Deps{}, Options{CarryOverSlots: true})
		ctx := context.Background()

		first := uc.Turn(ctx, chat.TurnInput{Message: "Is there an outlet in Petaling Jaya?", SessionID: "carry"})
		if first.Plan.Action != planner.ActionAskForInfo || !strings.Contains(first.Reply, "Petaling Jaya") {
			t.Fatalf("turn 1 = %s %q", first.Plan.Action, first.Reply)
		}

		second := uc.HandleTurn(ctx, "SS 2, what's the opening time?", "carry")
		if second != "The SS2 outlet opens at 9:00 AM." {
			t.Fatalf("turn 2 = %q", second)
		}

		third := uc.Turn(ctx, chat.TurnInput{Message: "What about the closing time?", SessionID: "carry"})
		if third.Reply != "The SS2 outlet closes at 10:00 PM." {
			t.Errorf("turn 3 = %q", third.Reply)
		}
		if !third.Plan.CarriedOver {
			t.Error("turn 3 should be marked as carried over")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		uc := newTestUseCase(t, Deps{}, Options{CarryOverSlots: false})
		ctx := context.Background()

		uc.HandleTurn(ctx, "SS 2, what's the opening time?", "no-carry")
		out := uc.Turn(ctx, chat.TurnInput{Message: "What about the closing time?", SessionID: "no-carry"})
		if out.Plan.Action != planner.ActionAskForInfo {
			t.Errorf("action = %s, want ask_for_info", out.Plan.Action)
		}
	})

	t.Run("sessions do not share slots", func(t *testing.T) {
		uc := newTestUseCase(t, Deps{}, Options{CarryOverSlots: true})
		ctx := context.Background()

		uc.HandleTurn(ctx, "SS2 opening time", "first")
		out := uc.Turn(ctx, chat.TurnInput{Message: "What about the closing time?", SessionID: "second"})
		if out.Plan.Action != planner.ActionAskForInfo {
			t.Errorf("action = %s, want ask_for_info", out.Plan.Action)
		}
	})
}

func TestHandleTurn_CollaboratorFailures(t *testing.T) {
	tests := []struct {
		name string
		deps Deps
		opts Options
		text string
		want string
	}{
		{
			name: "calculator unreachable",
			deps: Deps{Calculator: &mockCalculator{err: calculator.ErrUnreachable}},
			text: "5 + 3",
			want: chat.MsgCalculatorDown,
		},
		{
			name: "calculator timeout",
			deps: Deps{Calculator: &mockCalculator{block: true}},
			opts: Options{CalculatorTimeout: 10 * time.Millisecond},
			text: "5 + 3",
			want: chat.MsgCalculatorDown,
		},
		{
			name: "calculator rejection",
			deps: Deps{Calculator: &mockCalculator{err: &calculator.RejectedError{Detail: "Invalid input for calculation."}}},
			text: "5 + 3",
			want: "Calculation Error: Invalid input for calculation.",
		},
		{
			name: "calculator unknown failure",
			deps: Deps{Calculator: &mockCalculator{err: errors.New("malformed response")}},
			text: "5 + 3",
			want: chat.MsgUnknownFailure,
		},
		{
			name: "calculator panic",
			deps: Deps{Calculator: &mockCalculator{panics: true}},
			text: "5 + 3",
			want: chat.MsgUnknownFailure,
		},
		{
			name: "outlet store unavailable",
			deps: Deps{Outlet: &mockOutlet{err: outlet.ErrUnavailable}},
			text: "SS15 opening hours",
			want: chat.MsgOutletDown,
		},
		{
			name: "chat model down",
			deps: Deps{LLM: &mockLLM{err: llmprovider.ErrAllProvidersFailed}},
			text: "How are you?",
			want: chat.MsgChatDown,
		},
		{
			name: "no chat model configured",
			deps: Deps{},
			text: "How are you?",
			want: chat.MsgChatDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, tt.deps, tt.opts)

			got := uc.HandleTurn(context.Background(), tt.text, "failures")
			if got != tt.want {
				t.Errorf("reply = %q, want %q", got, tt.want)
			}

			tr := transcriptOf(t, uc, "failures")
			if len(tr.Turns) != 2 || tr.Turns[1].Content != tt.want {
				t.Errorf("transcript = %+v", tr.Turns)
			}
		})
	}
}

func TestHandleTurn_RespondDirectlyUsesHistory(t *testing.T) {
	llm := &mockLLM{reply: "  Sure thing.  "}
	uc := newTestUseCase(t, Deps{LLM: llm}, Options{SystemPrompt: "Be brief."})
	ctx := context.Background()

	uc.HandleTurn(ctx, "What is 2 + 2?", "history")
	reply := uc.HandleTurn(ctx, "Thanks, can you say that again?", "history")

	if reply != "Sure thing." {
		t.Errorf("reply = %q", reply)
	}
	if llm.lastReq.SystemInstruction.Text() != "Be brief." {
		t.Errorf("system prompt = %q", llm.lastReq.SystemInstruction.Text())
	}

	msgs := llm.lastReq.Messages
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want 3", len(msgs))
	}
	if msgs[0].Role != llmprovider.RoleUser || msgs[0].Text() != "What is 2 + 2?" {
		t.Errorf("msgs[0] = %+v", msgs[0])
	}
	if msgs[1].Role != llmprovider.RoleAssistant || msgs[1].Text() != "2 + 2 = 4" {
		t.Errorf("msgs[1] = %+v", msgs[1])
	}
	if msgs[2].Text() != "Thanks, can you say that again?" {
		t.Errorf("msgs[2] = %+v", msgs[2])
	}
}

func TestHandleTurn_StoreFailureStillReplies(t *testing.T) {
	uc := newTestUseCase(t, Deps{Repo: failingRepo{}}, Options{})

	if got := uc.HandleTurn(context.Background(), "1 + 2", "down"); got != "1 + 2 = 3" {
		t.Errorf("reply = %q", got)
	}
}

func TestTurn_MintsSessionID(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, Options{})
	uc.newID = func() string { return "minted" }

	out := uc.Turn(context.Background(), chat.TurnInput{Message: "1 + 1"})
	if out.SessionID != "minted" {
		t.Fatalf("SessionID = %q, want minted", out.SessionID)
	}
	if got := len(transcriptOf(t, uc, "minted").Turns); got != 2 {
		t.Errorf("transcript length = %d, want 2", got)
	}
}

func TestHistory_UnknownSession(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, Options{})

	if _, err := uc.History(context.Background(), "nobody"); !errors.Is(err, conversation.ErrSessionNotFound) {
		t.Errorf("History() error = %v, want ErrSessionNotFound", err)
	}
}

func TestDispatcher_FallbacksWithoutSlots(t *testing.T) {
	d := &dispatcher{uc: newTestUseCase(t, Deps{}, Options{})}
	ctx := context.Background()

	tests := []struct {
		name   string
		action planner.Action
		want   string
	}{
		{"ask without prompt", planner.ActionAskForInfo, chat.MsgNeedMoreInfo},
		{"calculator without data", planner.ActionUseCalculator, chat.MsgRephraseCalc},
		{"outlet without data", planner.ActionUseOutletLookup, chat.MsgNeedOutletDetails},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := planner.PlanningResult{Action: tt.action}.Dispatch(ctx, d)
			if err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Dispatch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		15:    "15",
		2.5:   "2.5",
		-0.25: "-0.25",
		0:     "0",
		1e6:   "1000000",
	}
	for in, want := range tests {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
